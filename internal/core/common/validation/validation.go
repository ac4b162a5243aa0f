package validation

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/itparc/asset-management/internal"
)

// Builder accumulates field-level validation failures and renders them as a
// single 422 AppError with a field to messages map.
type Builder struct {
	fields internal.FieldErrors
}

func New() *Builder {
	return &Builder{fields: internal.FieldErrors{}}
}

func (b *Builder) Add(field, message string) *Builder {
	b.fields.Add(field, message)
	return b
}

func (b *Builder) Require(field, value string) *Builder {
	if value == "" {
		b.fields.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
	return b
}

// RequireIfSet validates a partial-update field: a nil pointer means the field
// was absent from the payload and is skipped, an empty string fails.
func (b *Builder) RequireIfSet(field string, value *string) *Builder {
	if value != nil && *value == "" {
		b.fields.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
	return b
}

func (b *Builder) MaxLen(field, value string, max int) *Builder {
	if len(value) > max {
		b.fields.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, max))
	}
	return b
}

func (b *Builder) Email(field, value string) *Builder {
	if value == "" {
		return b
	}
	if _, err := mail.ParseAddress(value); err != nil {
		b.fields.Add(field, fmt.Sprintf("The %s must be a valid email address.", field))
	}
	return b
}

func (b *Builder) OneOf(field, value string, allowed []string) *Builder {
	if value == "" {
		return b
	}
	for _, a := range allowed {
		if value == a {
			return b
		}
	}
	b.fields.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
	return b
}

func (b *Builder) PositiveID(field string, value int64) *Builder {
	if value <= 0 {
		b.fields.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
	return b
}

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func (b *Builder) Date(field, value string) *Builder {
	if value == "" {
		return b
	}
	if _, err := ParseDate(value); err != nil {
		b.fields.Add(field, fmt.Sprintf("The %s field must be a valid date.", field))
	}
	return b
}

func (b *Builder) HasErrors() bool {
	return len(b.fields) > 0
}

// Err returns the accumulated 422 error, or nil when every check passed.
func (b *Builder) Err() *internal.AppError {
	if len(b.fields) == 0 {
		return nil
	}
	return internal.NewValidationError(b.fields)
}
