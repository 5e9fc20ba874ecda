package roster

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hrmslite.com/hrms/hrms/v1/common"
)

const (
	RosterSheet     = "Roster"
	AttendanceSheet = "Attendance"
)

// WriteWorkbook writes the already loaded roster as an XLSX workbook: one row per
// employee on RosterSheet and one row per attendance record, newest first, on
// AttendanceSheet.
func WriteWorkbook(w io.Writer, employees []common.EmployeeDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RosterSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(AttendanceSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := setRow(f, RosterSheet, 1, []any{"ID", "Employee ID", "Full Name", "Email", "Department", "Total Present"}); err != nil {
		return err
	}
	if err := setRow(f, AttendanceSheet, 1, []any{"Employee ID", "Full Name", "Date", "Status"}); err != nil {
		return err
	}

	attendanceRow := 2
	for i, e := range employees {
		if err := setRow(f, RosterSheet, i+2, []any{e.ID, e.EmployeeID, e.FullName, e.Email, e.Department, e.TotalPresent}); err != nil {
			return err
		}
		for _, r := range SortHistory(e.AttendanceRecords) {
			if err := setRow(f, AttendanceSheet, attendanceRow, []any{e.EmployeeID, e.FullName, r.Date.String(), string(r.Status)}); err != nil {
				return err
			}
			attendanceRow++
		}
	}

	if err := f.SetColWidth(RosterSheet, "B", "E", 24); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
