package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/contact/domain"
)

func validMessage() domain.Message {
	return domain.Message{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a project.",
	}
}

func TestMessageValidate_Accepts(t *testing.T) {
	assert.Empty(t, validMessage().Validate())
}

func TestMessageValidate_Thresholds(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*domain.Message)
	}{
		{"name", func(m *domain.Message) { m.Name = "J" }},
		{"subject", func(m *domain.Message) { m.Subject = "Hey" }},
		{"message", func(m *domain.Message) { m.Message = "too short" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			m := validMessage()
			tc.mutate(&m)

			violations := m.Validate()
			require.Len(t, violations, 1)
			assert.Equal(t, tc.field, violations[0].Field)
		})
	}
}

func TestMessageValidate_Email(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "@example.com", "jane@"} {
		m := validMessage()
		m.Email = email

		violations := m.Validate()
		require.NotEmpty(t, violations, "email %q should be rejected", email)
		assert.Equal(t, "email", violations[0].Field)
	}
}

func TestMessageValidate_WhitespaceNotCounted(t *testing.T) {
	m := validMessage()
	m.Subject = "  ab  "

	violations := m.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "subject", violations[0].Field)
}
