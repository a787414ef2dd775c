package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Sender delivers one SMS. It is the only piece of this package that
// performs outbound I/O.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// GatewaySender posts to the SMS gateway's bulk endpoint. With DryRun set
// it only logs the message, which is the development-mode behavior.
type GatewaySender struct {
	APIURL string
	APIKey string
	From   string
	DryRun bool

	Client *http.Client
	Log    zerolog.Logger
}

type gatewayPayload struct {
	To      []string `json:"to"`
	Message string   `json:"message"`
	From    string   `json:"from"`
}

func (s *GatewaySender) Send(ctx context.Context, phone, message string) error {
	if s.DryRun {
		s.Log.Info().
			Str("to", phone).
			Str("message", message).
			Msg("sms (test mode)")
		return nil
	}

	body, err := json.Marshal(gatewayPayload{
		To:      []string{phone},
		Message: message,
		From:    s.From,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}

	return nil
}
