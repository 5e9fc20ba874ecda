package views

import "fmt"

const (
	PathMount      = "/"
	PathRoster     = "/roster"
	PathToggleForm = "/roster/form/toggle"
	PathEmployees  = "/roster/employees"
	PathCloseModal = "/roster/history/close"
	PathExport     = "/roster/export.xlsx"
	PathImport     = "/roster/import"

	ActionDelete  = "delete"
	ActionMark    = "attendance"
	ActionHistory = "history"

	FieldStatus = "status"
	FieldDate   = "date"
	FieldFile   = "file"
)

// EmployeePath returns the form action for a per-employee roster action.
func EmployeePath(id int, action string) string {
	return fmt.Sprintf("%s/%d/%s", PathEmployees, id, action)
}
