package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

var ErrEndpointNotConfigured = errors.New("submission endpoint not configured")

// Submitter posts the flat submission record to an external record-keeping
// endpoint. The endpoint is secondary: callers log its errors and carry on.
type Submitter struct {
	URL  string
	HTTP *http.Client
}

func NewSubmitter(url string) *Submitter {
	return &Submitter{URL: url, HTTP: &http.Client{}}
}

// Submit returns ErrEndpointNotConfigured, after logging a warning, when no
// URL is set. Any non-2xx response is an error.
func (s *Submitter) Submit(ctx context.Context, record interface{}) error {
	if s == nil || s.URL == "" {
		logrus.Warn("[SUBMITTER] SUBMISSION_ENDPOINT not configured, skipping POST")
		return ErrEndpointNotConfigured
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("post submission: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint responded with status %d", resp.StatusCode)
	}
	return nil
}
