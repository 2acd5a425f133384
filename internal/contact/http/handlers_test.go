package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/contact/domain"
	contacthttp "github.com/devfolio/portfolio-backend/internal/contact/http"
)

type fakeSender struct {
	sent []domain.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg domain.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func setupRouter(sender *fakeSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	contacthttp.New(sender).Register(r.Group("/api/v1/contact"))
	return r
}

func postContact(t *testing.T, r *gin.Engine, msg domain.Message) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validMessage() domain.Message {
	return domain.Message{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a project.",
	}
}

func TestSendContact_Success(t *testing.T) {
	sender := &fakeSender{}
	w := postContact(t, setupRouter(sender), validMessage())

	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "jane@example.com", sender.sent[0].Email)
}

func TestSendContact_InvalidMessage(t *testing.T) {
	sender := &fakeSender{}
	msg := validMessage()
	msg.Subject = "Hey"

	w := postContact(t, setupRouter(sender), msg)

	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	assert.Contains(t, w.Body.String(), `"subject"`)
	assert.Empty(t, sender.sent)
}

func TestSendContact_DeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	w := postContact(t, setupRouter(sender), validMessage())

	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send message")
	// Provider detail never leaks to the caller.
	assert.NotContains(t, w.Body.String(), "provider down")
}
