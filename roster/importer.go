package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"hrmslite.com/hrms/utils"
)

var ErrBadHeader = errors.New("csv header must name full_name, email, employee_id and department")

// ImportFailure is one row that could not be created. Row counts data rows
// from 1.
type ImportFailure struct {
	Row        int
	EmployeeID string
	Err        error
}

type ImportResult struct {
	Created  int
	Failures []ImportFailure
}

// ParseEmployeeCSV reads a header row naming the form fields in any order,
// then one employee per row.
func ParseEmployeeCSV(r io.Reader) ([]Form, error) {
	rows, err := utils.ParseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrBadHeader
	}

	header := map[string]int{}
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	// only the form fields are read; other columns are ignored
	columns := map[string]int{}
	for _, field := range []string{FieldFullName, FieldEmail, FieldEmployeeID, FieldDepartment} {
		col, ok := header[field]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrBadHeader, field)
		}
		columns[field] = col
	}

	forms := make([]Form, 0, len(rows)-1)
	for i, row := range rows[1:] {
		var f Form
		for field, col := range columns {
			if col >= len(row) {
				return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+1, len(rows[0]), len(row))
			}
			if err := f.Set(field, row[col]); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		forms = append(forms, f)
	}
	return forms, nil
}

// Import creates each form in order. Invalid rows never reach the backend.
func Import(ctx context.Context, service Service, forms []Form) ImportResult {
	var result ImportResult
	for i, f := range forms {
		if err := f.Validate(); err != nil {
			result.Failures = append(result.Failures, ImportFailure{Row: i + 1, EmployeeID: f.EmployeeID, Err: err})
			continue
		}
		if _, err := service.CreateEmployee(ctx, f.DTO()); err != nil {
			result.Failures = append(result.Failures, ImportFailure{Row: i + 1, EmployeeID: f.EmployeeID, Err: err})
			continue
		}
		result.Created++
	}
	return result
}
