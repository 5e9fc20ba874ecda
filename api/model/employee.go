package model

import "hrmslite.com/hrms/utils"

type Employee struct {
	ID         int          `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID string       `gorm:"size:64;not null;uniqueIndex" json:"employee_id"`
	FullName   string       `gorm:"size:255;not null" json:"full_name"`
	Email      string       `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Department string       `gorm:"size:255;not null" json:"department"`
	Attendance []Attendance `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"attendance_records"`
}

func (Employee) TableName() string {
	return "employees"
}

// TotalPresent counts the loaded Present records.
func (e Employee) TotalPresent() int {
	return utils.Count(e.Attendance, func(a Attendance) bool { return a.Status == StatusPresent })
}
