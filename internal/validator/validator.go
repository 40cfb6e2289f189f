package validator

import (
	"sort"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-comments/internal/domain"
)

const (
	// MinBodyLength is the minimum number of characters in a comment body.
	MinBodyLength = 10
	// MaxFieldLength bounds name and mail to the column width.
	MaxFieldLength = 255
)

// FieldError describes a single invalid field of a request body.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validator provides validation methods for request bodies.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateComment validates a CommentDTO received from a client.
func (v *Validator) ValidateComment(c *domain.CommentDTO) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
			validation.By(notBlank("name_required")),
			validation.RuneLength(0, MaxFieldLength).Error("name_too_long"),
		),
		validation.Field(&c.Mail,
			validation.Required.Error("mail_required"),
			is.EmailFormat.Error("invalid_mail_format"),
			validation.RuneLength(0, MaxFieldLength).Error("mail_too_long"),
		),
		validation.Field(&c.Body,
			validation.Required.Error("body_required"),
			validation.By(minTrimmedLength(MinBodyLength)),
		),
	)
}

// notBlank rejects strings made only of whitespace with the given code.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if ok && strings.TrimSpace(s) == "" {
			return validation.NewError(code, code)
		}
		return nil
	}
}

// minTrimmedLength creates a rule requiring at least n non-blank-padded characters.
func minTrimmedLength(n int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if utf8.RuneCountInString(strings.TrimSpace(s)) < n {
			return validation.NewError("body_too_short", "body must have at least 10 characters")
		}
		return nil
	}
}

// ConvertValidationErrors converts ozzo validation errors to FieldErrors sorted by field.
func ConvertValidationErrors(err error) []FieldError {
	var errors []FieldError

	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			errors = append(errors, FieldError{
				Field:  field,
				Reason: fieldErr.Error(),
			})
		}
		sort.Slice(errors, func(i, j int) bool { return errors[i].Field < errors[j].Field })
	} else if err != nil {
		errors = append(errors, FieldError{
			Field:  "unknown",
			Reason: err.Error(),
		})
	}

	return errors
}
