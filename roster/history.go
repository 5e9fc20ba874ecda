package roster

import (
	"slices"

	"hrmslite.com/hrms/hrms/v1/common"
)

// History is the captured projection shown in the attendance modal.
type History struct {
	Employee common.EmployeeDTO
	Records  []common.AttendanceRecordDTO
}

func NewHistory(emp common.EmployeeDTO) *History {
	return &History{
		Employee: emp,
		Records:  SortHistory(emp.AttendanceRecords),
	}
}

func (h *History) Empty() bool {
	return h == nil || len(h.Records) == 0
}

// SortHistory returns a copy of records ordered newest first. A nil input yields
// an empty, non-nil slice.
func SortHistory(records []common.AttendanceRecordDTO) []common.AttendanceRecordDTO {
	sorted := make([]common.AttendanceRecordDTO, len(records))
	copy(sorted, records)
	slices.SortStableFunc(sorted, func(a, b common.AttendanceRecordDTO) int {
		return b.Date.Compare(a.Date.Time)
	})
	return sorted
}
