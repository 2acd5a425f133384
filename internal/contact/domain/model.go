package domain

import (
	"net/mail"
	"strings"
)

// Message is a contact-form submission. It is transient: validated, forwarded
// to the mail delivery collaborator, and never persisted.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FieldViolation names a single invalid field and why it was rejected.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks a contact submission. Deterministic, never panics; any
// violation rejects the whole message.
func (m Message) Validate() []FieldViolation {
	var out []FieldViolation

	if len(strings.TrimSpace(m.Name)) < 2 {
		out = append(out, FieldViolation{Field: "name", Message: "Name must be at least 2 characters."})
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		out = append(out, FieldViolation{Field: "email", Message: "Invalid email address."})
	}
	if len(strings.TrimSpace(m.Subject)) < 5 {
		out = append(out, FieldViolation{Field: "subject", Message: "Subject must be at least 5 characters."})
	}
	if len(strings.TrimSpace(m.Message)) < 10 {
		out = append(out, FieldViolation{Field: "message", Message: "Message must be at least 10 characters."})
	}

	return out
}
