package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/canfinancialsolutions/can-registration-app/internal/registration"
)

const submitPath = "/api/v1/registrations"

// Client posts submissions to the intake endpoint and decodes its envelope.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type submitEnvelope struct {
	Ok     bool   `json:"ok"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// Submit makes exactly one attempt. Any failure comes back as an error whose
// message is safe to show the user verbatim.
func (c *Client) Submit(ctx context.Context, req registration.SubmitRegistrationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build submission request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach registration service: %w", err)
	}
	defer resp.Body.Close()

	var env submitEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("unexpected response (status %d)", resp.StatusCode)
	}

	if !env.Ok {
		if env.Error != "" {
			return errors.New(env.Error)
		}
		return errors.New("Submission failed.")
	}

	return nil
}
