package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/projects/validator"
)

func validInput() domain.ProjectInput {
	featured := false
	return domain.ProjectInput{
		Title:           "X",
		Description:     "d",
		LongDescription: "ld",
		Image:           "http://i/1.png",
		Technologies:    []string{"Go"},
		Category:        domain.CategoryBackend,
		Featured:        &featured,
	}
}

func violatedFields(violations []validator.FieldViolation) []string {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestValidate_AcceptsValidPayload(t *testing.T) {
	assert.Empty(t, validator.Validate(validInput()))
}

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*domain.ProjectInput)
	}{
		{"title", func(in *domain.ProjectInput) { in.Title = "" }},
		{"description", func(in *domain.ProjectInput) { in.Description = "   " }},
		{"long_description", func(in *domain.ProjectInput) { in.LongDescription = "" }},
		{"image", func(in *domain.ProjectInput) { in.Image = "" }},
		{"featured", func(in *domain.ProjectInput) { in.Featured = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			violations := validator.Validate(in)
			require.Len(t, violations, 1)
			assert.Equal(t, tc.field, violations[0].Field)
		})
	}
}

func TestValidate_Technologies(t *testing.T) {
	t.Run("empty list fails", func(t *testing.T) {
		in := validInput()
		in.Technologies = []string{}

		violations := validator.Validate(in)
		require.Len(t, violations, 1)
		assert.Equal(t, "technologies", violations[0].Field)
	})

	t.Run("nil list fails", func(t *testing.T) {
		in := validInput()
		in.Technologies = nil

		assert.Contains(t, violatedFields(validator.Validate(in)), "technologies")
	})

	t.Run("blank entry fails", func(t *testing.T) {
		in := validInput()
		in.Technologies = []string{"Go", "  "}

		assert.Contains(t, violatedFields(validator.Validate(in)), "technologies")
	})

	t.Run("any non-empty list passes", func(t *testing.T) {
		in := validInput()
		in.Technologies = []string{"Go", "PostgreSQL", "Redis"}

		assert.Empty(t, validator.Validate(in))
	})
}

func TestValidate_Category(t *testing.T) {
	for _, category := range domain.Categories {
		in := validInput()
		in.Category = category
		assert.Empty(t, validator.Validate(in), "category %q should be accepted", category)
	}

	for _, category := range []string{"", "fullstack", "mobile", "Backend"} {
		in := validInput()
		in.Category = category

		violations := validator.Validate(in)
		require.Len(t, violations, 1, "category %q should be rejected", category)
		assert.Equal(t, "category", violations[0].Field)
	}
}

func TestValidate_OptionalURLs(t *testing.T) {
	t.Run("empty string means absent", func(t *testing.T) {
		in := validInput()
		in.LiveURL = ""
		in.GithubURL = ""

		assert.Empty(t, validator.Validate(in))
	})

	t.Run("well-formed URLs pass", func(t *testing.T) {
		in := validInput()
		in.LiveURL = "https://example.com"
		in.GithubURL = "https://github.com/devfolio/portfolio-backend"

		assert.Empty(t, validator.Validate(in))
	})

	t.Run("malformed URLs fail", func(t *testing.T) {
		in := validInput()
		in.LiveURL = "not a url"
		in.GithubURL = "github.com/missing-scheme"

		fields := violatedFields(validator.Validate(in))
		assert.Contains(t, fields, "live_url")
		assert.Contains(t, fields, "github_url")
	})
}

func TestValidate_AllViolationsReported(t *testing.T) {
	violations := validator.Validate(domain.ProjectInput{})
	fields := violatedFields(violations)

	for _, expected := range []string{"title", "description", "long_description", "image", "technologies", "category", "featured"} {
		assert.Contains(t, fields, expected)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	in := validInput()
	in.Title = ""
	in.Category = "mobile"

	first := validator.Validate(in)
	second := validator.Validate(in)
	assert.Equal(t, first, second)
}
