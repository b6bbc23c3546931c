// Package cookie converts the portal's login Set-Cookie header into a Jar and
// back into a Cookie request header.
package cookie

import (
	"net/url"
	"regexp"
	"strings"
)

// segmentSeparator is how the portal's joined Set-Cookie header separates
// cookies. It is a server convention, not a general cookie grammar.
const segmentSeparator = "path=/,"

var pairPattern = regexp.MustCompile(`([^=;,\s]+)=([^;]*);`)

// Jar is an ordered name to value mapping. The first value seen for a name wins.
type Jar struct {
	names  []string
	values map[string]string
}

// Set adds name=value unless name is already present. It reports whether the
// value was stored.
func (j *Jar) Set(name, value string) bool {
	if j.values == nil {
		j.values = map[string]string{}
	}
	if _, ok := j.values[name]; ok {
		return false
	}
	j.values[name] = value
	j.names = append(j.names, name)
	return true
}

func (j Jar) Get(name string) (string, bool) {
	v, ok := j.values[name]
	return v, ok
}

func (j Jar) Len() int { return len(j.names) }

// Names returns cookie names in insertion order.
func (j Jar) Names() []string {
	out := make([]string, len(j.names))
	copy(out, j.names)
	return out
}

// String renders the jar as a Cookie header value.
func (j Jar) String() string {
	parts := make([]string, 0, len(j.names))
	for _, name := range j.names {
		parts = append(parts, name+"="+encodeValue(j.values[name]))
	}
	return strings.Join(parts, "; ")
}

// Parse extracts the first name=value pair of every segment in raw.
// Segments without a pair are skipped.
func Parse(raw string) Jar {
	var jar Jar
	if strings.TrimSpace(raw) == "" {
		return jar
	}
	for _, segment := range strings.Split(raw, segmentSeparator) {
		m := pairPattern.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		jar.Set(name, decodeValue(strings.TrimSpace(m[2])))
	}
	return jar
}

func decodeValue(v string) string {
	out, err := url.PathUnescape(v)
	if err != nil {
		return v
	}
	return out
}

func encodeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
