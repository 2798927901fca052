package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"visacrony-gateway/internal/config"
	"visacrony-gateway/internal/models"

	"github.com/sirupsen/logrus"
)

// Recorder persists outbound messages. The store satisfies it.
type Recorder interface {
	RecordMessage(ctx context.Context, msg *models.Message) error
}

type Client struct {
	Config   *config.Config
	HTTP     *http.Client
	Recorder Recorder
}

func NewClient(cfg *config.Config, rec Recorder) *Client {
	return &Client{Config: cfg, HTTP: &http.Client{}, Recorder: rec}
}

// --- Message Structures ---

type GenericMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	RecipientType    string   `json:"recipient_type,omitempty"`
	Text             *TextObj `json:"text,omitempty"`
}

type TextObj struct {
	Body       string `json:"body"`
	PreviewUrl bool   `json:"preview_url,omitempty"`
}

type SendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.Config.WhatsAppAPIBase, "/") + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) sendRequest(ctx context.Context, method, url string, body interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Config.WhatsAppToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return respBody, fmt.Errorf("API error: %s - %s", resp.Status, string(respBody))
	}

	return respBody, nil
}

// --- Messaging Methods ---

// SendRawMessage posts msg and records it in the ledger whatever the outcome.
func (c *Client) SendRawMessage(ctx context.Context, msg GenericMessage) (string, error) {
	resp, err := c.sendRequest(ctx, http.MethodPost, c.endpoint(c.Config.PhoneNumberID+"/messages"), msg)

	var waID string
	if err == nil {
		var sr SendResponse
		if jerr := json.Unmarshal(resp, &sr); jerr == nil && len(sr.Messages) > 0 {
			waID = sr.Messages[0].ID
		}
	}

	content := fmt.Sprintf("%s message", msg.Type)
	if msg.Text != nil {
		content = msg.Text.Body
	}
	c.record(ctx, waID, msg, content, err)

	return waID, err
}

func (c *Client) SendMessage(ctx context.Context, to, body string) error {
	msg := GenericMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text: &TextObj{
			Body: body,
		},
	}
	_, err := c.SendRawMessage(ctx, msg)
	return err
}

// the recipient goes into Sender so a conversation groups under one number
func (c *Client) record(ctx context.Context, waID string, msg GenericMessage, content string, sendErr error) {
	if c.Recorder == nil {
		return
	}
	if waID == "" {
		waID = "outgoing-" + msg.To
	}
	status := "sent"
	if sendErr != nil {
		status = "failed"
	}
	err := c.Recorder.RecordMessage(ctx, &models.Message{
		WaID:    waID,
		Sender:  msg.To,
		Content: content,
		Type:    msg.Type,
		Status:  status,
	})
	if err != nil {
		logrus.WithError(err).Warn("[WHATSAPP] failed to record outbound message")
	}
}
