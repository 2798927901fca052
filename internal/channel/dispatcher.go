package channel

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultStagger keeps the mail open far enough behind the WhatsApp open
// that popup blockers treat them as two separate opens.
const DefaultStagger = 500 * time.Millisecond

// WhatsAppMessage is a chat-ready text addressed to a WhatsApp number.
type WhatsAppMessage struct {
	Phone string
	Text  string
}

// Plan names the channels a submission goes out on. A nil field is skipped.
type Plan struct {
	WhatsApp *WhatsAppMessage
	Mail     *MailMessage
}

// Outcome reports per-channel results. Attempted is false for channels the
// plan did not include.
type Outcome struct {
	WhatsAppAttempted bool `json:"whatsapp_attempted"`
	WhatsAppOK        bool `json:"whatsapp_ok"`
	MailAttempted     bool `json:"mail_attempted"`
	MailOK            bool `json:"mail_ok"`
}

// OK is false when any attempted channel failed.
func (o Outcome) OK() bool {
	if o.WhatsAppAttempted && !o.WhatsAppOK {
		return false
	}
	if o.MailAttempted && !o.MailOK {
		return false
	}
	return true
}

type Dispatcher struct {
	Stagger time.Duration
}

func NewDispatcher(stagger time.Duration) *Dispatcher {
	if stagger < 0 {
		stagger = DefaultStagger
	}
	return &Dispatcher{Stagger: stagger}
}

// Deliver opens WhatsApp first, then mail. When both are planned the mail
// open waits Stagger; a context cancelled during the wait skips the mail
// open and reports it as failed.
func (d *Dispatcher) Deliver(ctx context.Context, o Opener, p Plan) Outcome {
	var out Outcome

	if p.WhatsApp != nil {
		out.WhatsAppAttempted = true
		out.WhatsAppOK = OpenWhatsApp(ctx, o, p.WhatsApp.Phone, p.WhatsApp.Text)
	}

	if p.Mail == nil {
		return out
	}
	out.MailAttempted = true

	if p.WhatsApp != nil && d.Stagger > 0 {
		t := time.NewTimer(d.Stagger)
		select {
		case <-ctx.Done():
			t.Stop()
			logrus.WithError(ctx.Err()).Warn("[CHANNEL] mail open cancelled during stagger")
			return out
		case <-t.C:
		}
	}

	out.MailOK = OpenMail(ctx, o, *p.Mail)
	return out
}
