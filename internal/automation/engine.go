// Package automation answers inbound WhatsApp text messages with the
// chatbot's canned replies.
package automation

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"visacrony-gateway/internal/channel"
	"visacrony-gateway/internal/chatbot"
)

type Engine struct {
	Sender channel.TextSender
}

func NewEngine(sender channel.TextSender) *Engine {
	return &Engine{Sender: sender}
}

// ProcessIncomingMessage classifies the text and sends the matching reply
// back to the sender. Blank messages are ignored.
func (e *Engine) ProcessIncomingMessage(ctx context.Context, waID, messageContent string) error {
	if strings.TrimSpace(messageContent) == "" {
		return nil
	}

	intent, reply := chatbot.Classify(messageContent)
	log := logrus.WithFields(logrus.Fields{"wa_id": waID, "intent": intent})

	if e == nil || e.Sender == nil {
		log.Debug("[AUTOMATION] no sender configured, reply dropped")
		return nil
	}

	if err := e.Sender.SendMessage(ctx, waID, reply); err != nil {
		log.WithError(err).Error("[AUTOMATION] failed to send auto-reply")
		return err
	}
	log.Info("[AUTOMATION] auto-reply sent")
	return nil
}
