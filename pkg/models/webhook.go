package models

// WebhookPayload is the part of a Cloud API webhook delivery the gateway reads.
type WebhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value ChangeValue `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type ChangeValue struct {
	Messages []InboundMessage `json:"messages,omitempty"`
	Statuses []StatusUpdate   `json:"statuses,omitempty"`
}

// StatusUpdate reports delivery progress of an outbound message.
type StatusUpdate struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	RecipientID string `json:"recipient_id"`
}

type InboundMessage struct {
	ID   string `json:"id"`
	From string `json:"from"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text,omitempty"`
	Image       *MediaMessage `json:"image,omitempty"`
	Video       *MediaMessage `json:"video,omitempty"`
	Audio       *MediaMessage `json:"audio,omitempty"`
	Document    *MediaMessage `json:"document,omitempty"`
	Interactive *struct {
		ButtonReply *Reply `json:"button_reply,omitempty"`
		ListReply   *Reply `json:"list_reply,omitempty"`
	} `json:"interactive,omitempty"`
}

type MediaMessage struct {
	ID       string `json:"id"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Reply is the chosen button or list row; only its title is used.
type Reply struct {
	Title string `json:"title"`
}
