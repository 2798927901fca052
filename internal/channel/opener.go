// Package channel hands composed messages to the outbound surfaces: a
// webmail compose window, a WhatsApp deep link, an optional record-keeping
// endpoint and an optional WhatsApp Cloud API mirror.
package channel

import (
	"context"
	"sync"
	"time"
)

const (
	ChannelWhatsApp = "whatsapp"
	ChannelMail     = "mail"
	ChannelEndpoint = "endpoint"
	ChannelNotify   = "notify"
)

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// Link is a URL the browser should open DelayMS after the first link.
type Link struct {
	URL     string `json:"url"`
	DelayMS int64  `json:"delay_ms"`
}

// LinkCollector is the server-side Opener: it records every URL with its
// offset from the first Open so the front end can replay the opens.
type LinkCollector struct {
	mu    sync.Mutex
	now   func() time.Time
	start time.Time
	links []Link
}

func NewLinkCollector() *LinkCollector {
	return &LinkCollector{now: time.Now}
}

func (c *LinkCollector) Open(_ context.Context, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now()
	if c.start.IsZero() {
		c.start = t
	}
	c.links = append(c.links, Link{URL: url, DelayMS: t.Sub(c.start).Milliseconds()})
	return nil
}

// Links returns a copy of the recorded links in open order.
func (c *LinkCollector) Links() []Link {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Link, len(c.links))
	copy(out, c.links)
	return out
}
