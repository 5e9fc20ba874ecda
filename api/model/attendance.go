package model

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance is one day's status for an employee. Date is yyyy-MM-dd.
type Attendance struct {
	ID         int    `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID int    `gorm:"not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       string `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	Status     string `gorm:"type:varchar(16);not null" json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// All lists the models to migrate.
func All() []any {
	return []any{&Employee{}, &Attendance{}}
}
