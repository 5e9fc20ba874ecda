package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hrmslite.com/hrms/hrms/v1/common"
	"hrmslite.com/hrms/hrms/v1/common/status"
)

func TestSortHistory(t *testing.T) {
	mk := func(date string, st status.AttendanceStatus) common.AttendanceRecordDTO {
		d, err := common.ParseDateOnly(date)
		if err != nil {
			t.Fatalf("parse %s: %v", date, err)
		}
		return common.AttendanceRecordDTO{Date: d, Status: st}
	}

	tests := []struct {
		name     string
		input    []common.AttendanceRecordDTO
		expected []string
	}{
		{
			name:     "nil",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "already sorted",
			input:    []common.AttendanceRecordDTO{mk("2024-02-01", status.Present), mk("2024-01-31", status.Absent)},
			expected: []string{"2024-02-01", "2024-01-31"},
		},
		{
			name:     "reverse order",
			input:    []common.AttendanceRecordDTO{mk("2023-12-31", status.Present), mk("2024-01-01", status.Present), mk("2024-01-02", status.Absent)},
			expected: []string{"2024-01-02", "2024-01-01", "2023-12-31"},
		},
		{
			name:     "mixed",
			input:    []common.AttendanceRecordDTO{mk("2024-01-01", status.Present), mk("2024-01-03", status.Absent), mk("2024-01-02", status.Present)},
			expected: []string{"2024-01-03", "2024-01-02", "2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input []common.AttendanceRecordDTO
			if tt.input != nil {
				input = append(input, tt.input...)
			}
			sorted := SortHistory(tt.input)

			got := make([]string, 0, len(sorted))
			for _, r := range sorted {
				got = append(got, r.Date.String())
			}
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, input, tt.input, "input is not reordered")
		})
	}
}
