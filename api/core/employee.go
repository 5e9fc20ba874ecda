package core

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrmslite.com/hrms/api/model"
)

var (
	ErrEmployeeExists   = errors.New("employee exists")
	ErrEmployeeNotFound = errors.New("employee not found")
)

// ListEmployees returns every employee ordered by id with attendance ordered by date.
func ListEmployees(db *gorm.DB) ([]model.Employee, error) {
	var employees []model.Employee
	err := db.
		Preload("Attendance", func(db *gorm.DB) *gorm.DB {
			return db.Order("date")
		}).
		Order("id").
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// CreateEmployee inserts emp unless its employee code or email is taken.
func CreateEmployee(db *gorm.DB, emp *model.Employee) error {
	var count int64
	err := db.Model(&model.Employee{}).
		Where("employee_id = ? OR email = ?", emp.EmployeeID, emp.Email).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check employee: %w", err)
	}
	if count > 0 {
		return ErrEmployeeExists
	}
	return insertEmployee(db, emp)
}

// insertEmployee maps a unique index violation to ErrEmployeeExists. A
// concurrent insert can pass the pre-check and still hit one.
func insertEmployee(db *gorm.DB, emp *model.Employee) error {
	if err := db.Create(emp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmployeeExists
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// DeleteEmployee removes employee id and its attendance. tx should be a
// transaction.
func DeleteEmployee(tx *gorm.DB, id int) error {
	var emp model.Employee
	if err := tx.Take(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("find employee: %w", err)
	}
	if err := tx.Where("employee_id = ?", id).Delete(&model.Attendance{}).Error; err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	if err := tx.Delete(&emp).Error; err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// MarkAttendance upserts the status for (employee, date). The existence check
// and the upsert belong in one transaction.
func MarkAttendance(db *gorm.DB, record *model.Attendance) error {
	var count int64
	if err := db.Model(&model.Employee{}).Where("id = ?", record.EmployeeID).Count(&count).Error; err != nil {
		return fmt.Errorf("find employee: %w", err)
	}
	if count == 0 {
		return ErrEmployeeNotFound
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("mark attendance: %w", err)
	}
	return nil
}
