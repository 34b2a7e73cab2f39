package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ibrahimkeyboad/atmsim/internal/core/domain"
)

// WebhookSink pushes every outcome as JSON to an external observer URL.
// Delivery is fire-and-forget from the run's point of view: a failed POST is
// logged and that's it. A slow or broken observer must never change which
// withdrawals succeed.
type WebhookSink struct {
	url    string
	client *http.Client
	log    *slog.Logger
}

func NewWebhookSink(url string, log *slog.Logger) *WebhookSink {
	return &WebhookSink{
		url: url,
		// Don't let a slow observer block the run for long
		client: &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

func (s *WebhookSink) Report(o domain.Outcome) {
	if err := s.send(o); err != nil {
		s.log.Warn("webhook delivery failed", "url", s.url, "outcome_id", o.ID, "error", err)
	}
}

func (s *WebhookSink) send(o domain.Outcome) error {
	// 1. Convert the outcome to JSON
	jsonData, err := json.Marshal(o)
	if err != nil {
		return err
	}

	// 2. Prepare Request
	req, err := http.NewRequest("POST", s.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ATMSim-Webhook/1.0")

	// 3. Send
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 4. Check Response
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return fmt.Errorf("observer returned error: %d", resp.StatusCode)
}
