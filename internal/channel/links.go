package channel

import (
	"context"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"visacrony-gateway/internal/sanitize"
)

const gmailCompose = "https://mail.google.com/mail/?"

// MailMessage is the derived {to, subject, body} handed to the webmail composer.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// ComposeURL builds the Gmail compose link. Parameters keep the order the
// compose view expects: view, fs, to, su, body, tf.
func ComposeURL(m MailMessage) string {
	params := [][2]string{
		{"view", "cm"},
		{"fs", "1"},
		{"to", sanitize.Email(m.To)},
		{"su", m.Subject},
		{"body", m.Body},
		{"tf", "cm"},
	}
	var b strings.Builder
	b.WriteString(gmailCompose)
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// OpenMail opens the compose link. A failed open is logged and reported as
// false; callers show a retry notice instead of propagating an error.
func OpenMail(ctx context.Context, o Opener, m MailMessage) bool {
	if err := o.Open(ctx, ComposeURL(m)); err != nil {
		logrus.WithError(err).Error("[CHANNEL] failed to open mail compose")
		return false
	}
	return true
}

// WhatsAppURL builds https://wa.me/<digits>?text=<encoded>. Spaces encode
// as %20 so the chat client shows them verbatim.
func WhatsAppURL(phone, text string) string {
	return "https://wa.me/" + digits(phone) + "?text=" + escapeComponent(text)
}

// OpenWhatsApp reports true once the open was issued; there is no way to
// confirm the chat client actually took focus.
func OpenWhatsApp(ctx context.Context, o Opener, phone, text string) bool {
	if err := o.Open(ctx, WhatsAppURL(phone, text)); err != nil {
		logrus.WithError(err).Warn("[CHANNEL] whatsapp open reported an error")
	}
	return true
}

// MailtoURL builds a mailto: link with an optional subject.
func MailtoURL(to, subject string) string {
	u := "mailto:" + sanitize.Email(to)
	if subject != "" {
		u += "?subject=" + escapeComponent(subject)
	}
	return u
}

// TelURL builds a tel: link, keeping only the dialable characters.
func TelURL(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
