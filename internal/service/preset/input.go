package preset

import (
	"strings"

	"github.com/folioview/backend/internal/domain"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

// SaveInput carries the user-supplied fields of a preset save.
type SaveInput struct {
	Name        string
	Description *string
}

func (in SaveInput) Validate() error {
	var fields []domain.FieldError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "must not be empty"})
	} else if len(name) > maxNameLen {
		fields = append(fields, domain.FieldError{Field: "name", Message: "must be at most 100 characters"})
	}

	if in.Description != nil && len(*in.Description) > maxDescriptionLen {
		fields = append(fields, domain.FieldError{Field: "description", Message: "must be at most 500 characters"})
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Errors: fields}
	}
	return nil
}

func (in SaveInput) name() string {
	return strings.TrimSpace(in.Name)
}

func (in SaveInput) description() *string {
	if in.Description == nil {
		return nil
	}
	d := strings.TrimSpace(*in.Description)
	if d == "" {
		return nil
	}
	return &d
}
