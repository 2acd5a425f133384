package validator

import (
	"net/url"
	"strings"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// FieldViolation names a single invalid field and why it was rejected.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks an admin-submitted project payload against the schema.
// It never panics and is deterministic: the same input always yields the same
// violations. An empty result means the payload is acceptable as a whole;
// any single violation rejects the entire payload.
func Validate(in domain.ProjectInput) []FieldViolation {
	var out []FieldViolation

	if strings.TrimSpace(in.Title) == "" {
		out = append(out, FieldViolation{Field: "title", Message: "Title is required"})
	}
	if strings.TrimSpace(in.Description) == "" {
		out = append(out, FieldViolation{Field: "description", Message: "Description is required"})
	}
	if strings.TrimSpace(in.LongDescription) == "" {
		out = append(out, FieldViolation{Field: "long_description", Message: "Long description is required"})
	}
	if strings.TrimSpace(in.Image) == "" {
		out = append(out, FieldViolation{Field: "image", Message: "Image is required"})
	}

	if len(in.Technologies) == 0 {
		out = append(out, FieldViolation{Field: "technologies", Message: "At least one technology is required"})
	} else {
		for _, tech := range in.Technologies {
			if strings.TrimSpace(tech) == "" {
				out = append(out, FieldViolation{Field: "technologies", Message: "Technology entries must not be empty"})
				break
			}
		}
	}

	// Optional URLs: empty string means absent, anything else must parse.
	if !validOptionalURL(in.LiveURL) {
		out = append(out, FieldViolation{Field: "live_url", Message: "Must be a valid URL"})
	}
	if !validOptionalURL(in.GithubURL) {
		out = append(out, FieldViolation{Field: "github_url", Message: "Must be a valid URL"})
	}

	if !validCategory(in.Category) {
		out = append(out, FieldViolation{Field: "category", Message: "Category must be one of: " + strings.Join(domain.Categories, ", ")})
	}

	if in.Featured == nil {
		out = append(out, FieldViolation{Field: "featured", Message: "Featured flag is required"})
	}

	return out
}

func validOptionalURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func validCategory(category string) bool {
	for _, c := range domain.Categories {
		if category == c {
			return true
		}
	}
	return false
}
