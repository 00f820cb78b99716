package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/msdharani1/portfolio-api/internal/contact/domain"
)

const sendEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Relay delivers a submission as an email. Satisfied by the EmailJS client
// in production and by fakes in tests.
type Relay interface {
	Send(ctx context.Context, msg domain.Message) error
}

// EmailJSClient submits messages against a fixed service/template/public-key
// triple. No response payload is consumed beyond success or failure.
type EmailJSClient struct {
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

func NewEmailJSClient(serviceID, templateID, publicKey string) *EmailJSClient {
	return &EmailJSClient{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *EmailJSClient) Send(ctx context.Context, msg domain.Message) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.publicKey,
		TemplateParams: map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"message": msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail relay returned status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
