package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/devfolio/portfolio-backend/config"
	"github.com/devfolio/portfolio-backend/internal/contact/domain"
)

const defaultTimeout = 10 * time.Second

// Client forwards contact messages to the hosted mail delivery API. The API
// is opaque to the rest of the system: callers only see delivered-or-error.
type Client struct {
	endpoint string
	apiKey   string
	from     string
	to       string

	httpClient *http.Client
	// The delivery provider throttles aggressively; keep outbound calls
	// under one per second with a small burst.
	limiter *rate.Limiter
}

// NewClient creates a mail client from config.
func NewClient(cfg *config.MailerConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		from:     cfg.From,
		to:       cfg.To,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

type deliveryRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Send forwards a validated contact message. A non-2xx response from the
// provider is an error; the caller surfaces it as a generic failure.
func (c *Client) Send(ctx context.Context, msg domain.Message) error {
	if c.endpoint == "" {
		return fmt.Errorf("mail delivery is not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mail rate limit: %w", err)
	}

	body, err := json.Marshal(deliveryRequest{
		From:    c.from,
		To:      c.to,
		ReplyTo: msg.Email,
		Subject: msg.Subject,
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message),
	})
	if err != nil {
		return fmt.Errorf("marshal delivery request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}
	return nil
}
