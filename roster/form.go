package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hrmslite.com/hrms/hrms/v1/common"
)

const (
	FieldFullName   = "full_name"
	FieldEmail      = "email"
	FieldEmployeeID = "employee_id"
	FieldDepartment = "department"
)

var ErrFormIncomplete = errors.New("form incomplete")

// Form is the in-progress new-employee form.
type Form struct {
	FullName   string
	Email      string
	EmployeeID string
	Department string
}

// DTO returns the create request with surrounding whitespace trimmed.
func (f Form) DTO() common.EmployeeCreateDTO {
	return common.EmployeeCreateDTO{
		FullName:   strings.TrimSpace(f.FullName),
		Email:      strings.TrimSpace(f.Email),
		EmployeeID: strings.TrimSpace(f.EmployeeID),
		Department: strings.TrimSpace(f.Department),
	}
}

// Set writes one field by its wire name.
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldFullName:
		f.FullName = value
	case FieldEmail:
		f.Email = value
	case FieldEmployeeID:
		f.EmployeeID = value
	case FieldDepartment:
		f.Department = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// formValidator reads the same `binding` tags gin uses on the server.
var formValidator = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// Validate mirrors the input-level constraints: every field present and an email
// of plausible shape. Whitespace-only values count as empty.
func (f Form) Validate() error {
	if err := formValidator.Struct(f.DTO()); err != nil {
		return fmt.Errorf("%w: %v", ErrFormIncomplete, err)
	}
	return nil
}
