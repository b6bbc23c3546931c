package telegram

import (
	"context"
	"log"
	"time"
)

// Notifier delivers run reports to a single chat. Delivery is best effort:
// failures are logged and never returned.
type Notifier struct {
	client *Client
	chatID string
}

func NewNotifier(token, chatID string, timeout time.Duration) *Notifier {
	n := &Notifier{chatID: chatID}
	if token != "" {
		n.client = NewClient(token, timeout)
	}
	return n
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.client != nil && n.chatID != ""
}

func (n *Notifier) Send(ctx context.Context, text string) {
	if !n.Enabled() {
		log.Println("Telegram bot token or chat ID not set, notification skipped")
		return
	}
	if err := n.client.SendMessage(ctx, n.chatID, text); err != nil {
		log.Printf("telegram notification failed: %v", err)
		return
	}
	log.Println("telegram notification sent")
}
