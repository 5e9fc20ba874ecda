package common

import "hrmslite.com/hrms/hrms/v1/common/status"

type EmployeeDTO struct {
	ID                int                   `json:"id"`
	EmployeeID        string                `json:"employee_id"`
	FullName          string                `json:"full_name"`
	Email             string                `json:"email"`
	Department        string                `json:"department"`
	TotalPresent      int                   `json:"total_present"`
	AttendanceRecords []AttendanceRecordDTO `json:"attendance_records"` // nil when the endpoint omits it
}

// EmployeeCreateDTO is the POST /employees/ body. The binding tags are shared by
// gin on the server and by the roster form validator.
type EmployeeCreateDTO struct {
	FullName   string `json:"full_name" form:"full_name" binding:"required"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	EmployeeID string `json:"employee_id" form:"employee_id" binding:"required"`
	Department string `json:"department" form:"department" binding:"required"`
}

type AttendanceDTO struct {
	EmployeeID int                     `json:"employee_id" binding:"required"`
	Date       DateOnly                `json:"date"`
	Status     status.AttendanceStatus `json:"status" binding:"required,oneof=Present Absent"`
}

type AttendanceRecordDTO struct {
	Date   DateOnly                `json:"date"`
	Status status.AttendanceStatus `json:"status"`
}

type MessageDTO struct {
	Message string `json:"message"`
}
