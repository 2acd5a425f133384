package service

import "github.com/devfolio/portfolio-backend/internal/projects/validator"

// Result statuses. Callers branch only on Status; no implementation error
// ever crosses the action boundary.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the uniform outcome returned by every mutation action.
type Result struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Fields  []validator.FieldViolation `json:"fields,omitempty"`
}

func success(message string) Result {
	return Result{Status: StatusSuccess, Message: message}
}

func failure(message string) Result {
	return Result{Status: StatusError, Message: message}
}
