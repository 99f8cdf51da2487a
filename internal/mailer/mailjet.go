package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const mailjetSendURL = "https://api.mailjet.com/v3.1/send"

type MailjetConfig struct {
	APIKey    string
	SecretKey string
	FromEmail string
	FromName  string
	BCCEmail  string // optional blind-copy on every send
	APIURL    string // override for tests; defaults to the v3.1 send endpoint
}

// MailjetClient sends through the Mailjet v3.1 send API.
type MailjetClient struct {
	cfg    MailjetConfig
	apiURL string
	client *http.Client
}

func NewMailjetClient(cfg MailjetConfig) *MailjetClient {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = mailjetSendURL
	}
	return &MailjetClient{
		cfg:    cfg,
		apiURL: apiURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type mailjetRecipient struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type mailjetMessage struct {
	From     mailjetRecipient   `json:"From"`
	To       []mailjetRecipient `json:"To"`
	Bcc      []mailjetRecipient `json:"Bcc,omitempty"`
	Subject  string             `json:"Subject"`
	HTMLPart string             `json:"HTMLPart"`
}

type mailjetPayload struct {
	Messages []mailjetMessage `json:"Messages"`
}

func (m *MailjetClient) Send(ctx context.Context, msg Message) error {
	payload := mailjetPayload{
		Messages: []mailjetMessage{
			{
				From:     mailjetRecipient{Email: m.cfg.FromEmail, Name: m.cfg.FromName},
				To:       []mailjetRecipient{{Email: msg.ToEmail, Name: msg.ToName}},
				Subject:  msg.Subject,
				HTMLPart: msg.HTMLBody,
			},
		},
	}
	if m.cfg.BCCEmail != "" {
		payload.Messages[0].Bcc = []mailjetRecipient{{Email: m.cfg.BCCEmail, Name: m.cfg.FromName}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mailjet payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mailjet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(m.cfg.APIKey, m.cfg.SecretKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call mailjet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(resp.Body)
		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Detail:     string(detail),
		}
	}

	return nil
}
