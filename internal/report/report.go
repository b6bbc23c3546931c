package report

import "strings"

// Header is the first line of every notification.
const Header = "ikuuu签到"

// Report collects status lines in execution order.
type Report struct {
	lines  []string
	failed bool
}

func (r *Report) LoggedIn(msg string) {
	r.lines = append(r.lines, "ikuuu登录: "+msg)
}

func (r *Report) CheckedIn(msg string) {
	r.lines = append(r.lines, "签到结果: "+msg)
}

func (r *Report) Failed(err error) {
	r.failed = true
	r.lines = append(r.lines, "操作失败: "+err.Error())
}

// OK reports whether no step has failed.
func (r Report) OK() bool { return !r.failed }

func (r Report) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Text is the notification body: the header followed by one line per step.
func (r Report) Text() string {
	return Header + "\n" + strings.Join(r.lines, "\n")
}
