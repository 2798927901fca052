package chatbot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Responder generates a free-text reply from a single prompt.
type Responder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

// ContactInfo is what the bot hands out for the contact actions.
type ContactInfo struct {
	Email    string
	Phone    string
	WhatsApp string
}

// RandomTyping returns a typing delay between one and three seconds.
func RandomTyping() time.Duration {
	return time.Second + time.Duration(rand.Int64N(int64(2*time.Second)))
}

const historyWindow = 10

// BuildPrompt assembles the single prompt sent to the responder: business
// context, a compact catalog, the recent conversation, then the question.
func BuildPrompt(cat *Catalog, contact ContactInfo, history []Message, input string) string {
	var b strings.Builder

	b.WriteString("You are the virtual assistant of VisaCrony, a visa and passport consultancy in India. ")
	b.WriteString("Answer briefly and politely in plain text without HTML. Only use the facts below; ")
	b.WriteString("for anything else suggest booking a free consultation.\n\n")

	b.WriteString("Services: tourist and business visas, fresh passport applications, passport renewals and urgent processing. ")
	b.WriteString("Processing usually takes 3-21 days with a 95% success rate.\n")
	fmt.Fprintf(&b, "Contact: email %s, phone %s, WhatsApp +%s.\n\n", contact.Email, contact.Phone, contact.WhatsApp)

	if cat != nil {
		b.WriteString("Visa catalog (country: processing time, visa fee, service fee):\n")
		for _, t := range cat.Types() {
			fmt.Fprintf(&b, "%s\n", t.Title)
			for _, c := range t.Countries {
				fmt.Fprintf(&b, "- %s: %s, %s, %s\n", c.Name, c.ProcessingDays, c.VisaFees, c.ServiceFees)
			}
		}
		b.WriteString("\n")
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, m := range history {
			who := "User"
			if m.IsBot {
				who = "Assistant"
			}
			fmt.Fprintf(&b, "%s: %s\n", who, m.Text)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "User: %s\nAssistant:", input)
	return b.String()
}
