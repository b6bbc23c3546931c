package orchestrator

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"ikuuu-checkin/internal/config"
	"ikuuu-checkin/internal/cookie"
	"ikuuu-checkin/internal/model"
	"ikuuu-checkin/internal/portal"
	"ikuuu-checkin/internal/report"
	"ikuuu-checkin/internal/telegram"
)

type sessionClient interface {
	LogIn(ctx context.Context, creds model.Credentials) (portal.Session, error)
	CheckIn(ctx context.Context, jar cookie.Jar) (string, error)
}

type notifier interface {
	Enabled() bool
	Send(ctx context.Context, text string)
}

type App struct {
	creds    model.Credentials
	portal   sessionClient
	notifier notifier
	log      *log.Logger
}

func New(cfg config.Runtime) *App {
	return &App{
		creds:    cfg.Credentials,
		portal:   portal.NewClient(cfg.Host, cfg.HTTPTimeout),
		notifier: telegram.NewNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, cfg.HTTPTimeout),
		log:      newRunLogger(),
	}
}

func newRunLogger() *log.Logger {
	return log.New(os.Stderr, "run "+uuid.NewString()[:8]+" ", log.LstdFlags|log.Lmsgprefix)
}

// Run logs in, checks in and reports the outcome. The notification is
// attempted whatever happened before it.
func (a *App) Run(ctx context.Context) report.Report {
	var rep report.Report
	defer func() {
		if !a.notifier.Enabled() {
			a.log.Println("Skipping Telegram notification: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set")
			return
		}
		a.notifier.Send(ctx, rep.Text())
	}()

	a.log.Println("logging in")
	sess, err := a.portal.LogIn(ctx, a.creds)
	if err != nil {
		a.log.Printf("operation failed: %v", err)
		rep.Failed(err)
		return rep
	}
	a.log.Printf("login: %s (%d cookies)", sess.Message, sess.Cookies.Len())
	rep.LoggedIn(sess.Message)

	msg, err := a.portal.CheckIn(ctx, sess.Cookies)
	if err != nil {
		a.log.Printf("operation failed: %v", err)
		rep.Failed(err)
		return rep
	}
	a.log.Printf("checkin: %s", msg)
	rep.CheckedIn(msg)
	return rep
}
