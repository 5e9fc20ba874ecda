package roster

import (
	"context"
	"errors"

	v1 "hrmslite.com/hrms/hrms/v1"
	"hrmslite.com/hrms/hrms/v1/common"
	"hrmslite.com/hrms/hrms/v1/common/status"
)

var errUnreachable = &v1.NetworkError{Method: "GET", Path: "/employees/", Err: errors.New("connection refused")}

// fakeService is an in-memory backend that upserts attendance per (employee, date).
type fakeService struct {
	nextID    int
	employees []common.EmployeeDTO
	calls     []string

	listErr   error
	createErr error
	deleteErr error
	recordErr error
}

func newFakeService(employees ...common.EmployeeDTO) *fakeService {
	s := &fakeService{nextID: 1}
	for _, e := range employees {
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
		s.employees = append(s.employees, e)
	}
	return s
}

func (s *fakeService) ListEmployees(ctx context.Context) ([]common.EmployeeDTO, error) {
	s.calls = append(s.calls, "list")
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]common.EmployeeDTO, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *fakeService) CreateEmployee(ctx context.Context, dto common.EmployeeCreateDTO) (*common.EmployeeDTO, error) {
	s.calls = append(s.calls, "create")
	if s.createErr != nil {
		return nil, s.createErr
	}
	for _, e := range s.employees {
		if e.Email == dto.Email || e.EmployeeID == dto.EmployeeID {
			return nil, &v1.StatusError{Method: "POST", Path: "/employees/", StatusCode: 409, Message: "Employee exists."}
		}
	}
	e := common.EmployeeDTO{
		ID:                s.nextID,
		EmployeeID:        dto.EmployeeID,
		FullName:          dto.FullName,
		Email:             dto.Email,
		Department:        dto.Department,
		AttendanceRecords: []common.AttendanceRecordDTO{},
	}
	s.nextID++
	s.employees = append(s.employees, e)
	return &e, nil
}

func (s *fakeService) DeleteEmployee(ctx context.Context, id int) error {
	s.calls = append(s.calls, "delete")
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, e := range s.employees {
		if e.ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return &v1.StatusError{Method: "DELETE", Path: "/employees/", StatusCode: 404, Message: "Not found"}
}

func (s *fakeService) RecordAttendance(ctx context.Context, dto common.AttendanceDTO) error {
	s.calls = append(s.calls, "record")
	if s.recordErr != nil {
		return s.recordErr
	}
	for i := range s.employees {
		e := &s.employees[i]
		if e.ID != dto.EmployeeID {
			continue
		}
		records := make([]common.AttendanceRecordDTO, 0, len(e.AttendanceRecords)+1)
		replaced := false
		for _, r := range e.AttendanceRecords {
			if r.Date.Equal(dto.Date.Time) {
				r.Status = dto.Status
				replaced = true
			}
			records = append(records, r)
		}
		if !replaced {
			records = append(records, common.AttendanceRecordDTO{Date: dto.Date, Status: dto.Status})
		}
		e.AttendanceRecords = records
		e.TotalPresent = 0
		for _, r := range records {
			if r.Status == status.Present {
				e.TotalPresent++
			}
		}
		return nil
	}
	return &v1.StatusError{Method: "POST", Path: "/attendance/", StatusCode: 404, Message: "Not found"}
}
