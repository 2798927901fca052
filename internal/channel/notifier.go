package channel

import (
	"context"
	"errors"
)

var ErrNotifierDisabled = errors.New("whatsapp notifier disabled")

// TextSender is satisfied by the WhatsApp Cloud API client.
type TextSender interface {
	SendMessage(ctx context.Context, to, body string) error
}

// Notifier mirrors a rendered submission to the business number through the
// WhatsApp Cloud API.
type Notifier struct {
	Sender TextSender
	To     string
}

func NewNotifier(sender TextSender, to string) *Notifier {
	return &Notifier{Sender: sender, To: to}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.Sender != nil && n.To != ""
}

func (n *Notifier) Notify(ctx context.Context, text string) error {
	if !n.Enabled() {
		return ErrNotifierDisabled
	}
	return n.Sender.SendMessage(ctx, digits(n.To), text)
}
