package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const sendPath = "/api/v1.0/email/send"

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("emailjs: unexpected status %d: %s", e.Code, e.Body)
}

// EmailJS is a thin client for the EmailJS REST API. It makes exactly one
// request per Send and applies no client-side timeout; cancellation comes
// from the caller's context only.
type EmailJS struct {
	endpoint   string
	httpClient *http.Client
}

// NewEmailJS creates a client for the given API origin, e.g.
// https://api.emailjs.com.
func NewEmailJS(endpoint string) *EmailJS {
	return &EmailJS{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{},
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts msg to the service.
func (c *EmailJS) Send(ctx context.Context, creds Credentials, msg Message) error {
	data, err := json.Marshal(sendRequest{
		ServiceID:      creds.ServiceID,
		TemplateID:     creds.TemplateID,
		UserID:         creds.PublicKey,
		TemplateParams: msg.TemplateParams(),
	})
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint+sendPath, bytes.NewReader(data),
	)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request POST %s: %w", sendPath, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return nil
}
