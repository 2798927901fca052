package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"visacrony-gateway/internal/config"
	ledger "visacrony-gateway/internal/models"
	"visacrony-gateway/pkg/models"
)

// MessageRecorder stores inbound messages.
type MessageRecorder interface {
	RecordMessage(ctx context.Context, msg *ledger.Message) error
}

// AutoResponder answers inbound text messages.
type AutoResponder interface {
	ProcessIncomingMessage(ctx context.Context, waID, messageContent string) error
}

type Handler struct {
	Config           *config.Config
	Recorder         MessageRecorder
	AutomationEngine AutoResponder
}

func NewHandler(cfg *config.Config, rec MessageRecorder, automationEngine AutoResponder) *Handler {
	return &Handler{
		Config:           cfg,
		Recorder:         rec,
		AutomationEngine: automationEngine,
	}
}

func (h *Handler) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode != "" && token != "" {
		if mode == "subscribe" && h.Config.VerifyToken != "" && token == h.Config.VerifyToken {
			logrus.Info("[WEBHOOK] verified successfully")
			c.String(http.StatusOK, challenge)
		} else {
			c.Status(http.StatusForbidden)
		}
	} else {
		c.Status(http.StatusBadRequest)
	}
}

// SignatureHeader carries "sha256=<hex HMAC of the body keyed by the app secret>".
const SignatureHeader = "X-Hub-Signature-256"

// Sign returns the SignatureHeader value for body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func validSignature(secret, header string, body []byte) bool {
	if secret == "" || !strings.HasPrefix(header, "sha256=") {
		return false
	}
	return hmac.Equal([]byte(header), []byte(Sign(secret, body)))
}

func (h *Handler) HandleMessage(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if !validSignature(h.Config.AppSecret, c.GetHeader(SignatureHeader), body) {
		logrus.Warn("[WEBHOOK] rejected delivery with missing or invalid signature")
		c.Status(http.StatusUnauthorized)
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logrus.WithError(err).Warn("[WEBHOOK] error binding JSON")
		c.Status(http.StatusBadRequest)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, st := range change.Value.Statuses {
				logrus.WithFields(logrus.Fields{
					"wa_id":     st.ID,
					"status":    st.Status,
					"recipient": st.RecipientID,
				}).Debug("[WEBHOOK] status update")
			}

			for _, message := range change.Value.Messages {
				content, text := describe(message)

				logrus.WithFields(logrus.Fields{
					"from": message.From,
					"type": message.Type,
				}).Info("[WEBHOOK] message received")

				if h.Recorder != nil {
					err := h.Recorder.RecordMessage(c.Request.Context(), &ledger.Message{
						WaID:    message.ID,
						Sender:  message.From,
						Content: content,
						Type:    message.Type,
						Status:  "received",
					})
					if err != nil {
						logrus.WithError(err).Error("[WEBHOOK] failed to store message")
					}
				}

				if h.AutomationEngine != nil && text != "" {
					go h.AutomationEngine.ProcessIncomingMessage(context.Background(), message.From, text)
				}
			}
		}
	}

	c.Status(http.StatusOK)
}

// describe flattens a message into the stored content string and, for text
// and button or list replies, the text the auto-responder should answer.
func describe(m models.InboundMessage) (content, text string) {
	switch m.Type {
	case "text":
		return m.Text.Body, m.Text.Body
	case "image":
		return media("image", m.Image, captionOf(m.Image)), ""
	case "video":
		return media("video", m.Video, captionOf(m.Video)), ""
	case "audio":
		return media("audio", m.Audio, ""), ""
	case "document":
		name := ""
		if m.Document != nil {
			name = m.Document.Filename
		}
		return media("document", m.Document, name), ""
	case "interactive":
		if m.Interactive != nil {
			if r := m.Interactive.ButtonReply; r != nil {
				return "[button]:" + r.Title, r.Title
			}
			if r := m.Interactive.ListReply; r != nil {
				return "[list]:" + r.Title, r.Title
			}
		}
	}
	return "[" + m.Type + "]", ""
}

// media renders "[kind]:id" with an optional ":suffix".
func media(kind string, m *models.MediaMessage, suffix string) string {
	if m == nil {
		return "[" + kind + "]"
	}
	content := "[" + kind + "]:" + m.ID
	if suffix != "" {
		content += ":" + suffix
	}
	return content
}

func captionOf(m *models.MediaMessage) string {
	if m == nil {
		return ""
	}
	return m.Caption
}
