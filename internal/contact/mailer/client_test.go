package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/config"
	contactdomain "github.com/devfolio/portfolio-backend/internal/contact/domain"
	"github.com/devfolio/portfolio-backend/internal/contact/mailer"
)

func sampleMessage() contactdomain.Message {
	return contactdomain.Message{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a project.",
	}
}

func TestClient_Send(t *testing.T) {
	var got struct {
		From    string `json:"from"`
		To      string `json:"to"`
		ReplyTo string `json:"reply_to"`
		Subject string `json:"subject"`
		Text    string `json:"text"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token, got: %s", r.Header.Get("Authorization"))
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := mailer.NewClient(&config.MailerConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
		From:     "noreply@portfolio.local",
		To:       "me@portfolio.local",
	})

	err := client.Send(context.Background(), sampleMessage())
	require.NoError(t, err)

	assert.Equal(t, "noreply@portfolio.local", got.From)
	assert.Equal(t, "me@portfolio.local", got.To)
	assert.Equal(t, "jane@example.com", got.ReplyTo)
	assert.Equal(t, "Project inquiry", got.Subject)
	assert.Contains(t, got.Text, "Jane")
}

func TestClient_Send_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := mailer.NewClient(&config.MailerConfig{Endpoint: server.URL})

	err := client.Send(context.Background(), sampleMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_Send_Unconfigured(t *testing.T) {
	client := mailer.NewClient(&config.MailerConfig{})

	err := client.Send(context.Background(), sampleMessage())
	assert.Error(t, err)
}

func TestClient_Send_Unreachable(t *testing.T) {
	client := mailer.NewClient(&config.MailerConfig{Endpoint: "http://127.0.0.1:1"})

	err := client.Send(context.Background(), sampleMessage())
	assert.Error(t, err)
}
