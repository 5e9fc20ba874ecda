package roster

import (
	"context"

	v1 "hrmslite.com/hrms/hrms/v1"
	"hrmslite.com/hrms/hrms/v1/common"
)

// Service is the backend surface the roster talks to.
type Service interface {
	ListEmployees(ctx context.Context) ([]common.EmployeeDTO, error)
	CreateEmployee(ctx context.Context, dto common.EmployeeCreateDTO) (*common.EmployeeDTO, error)
	DeleteEmployee(ctx context.Context, id int) error
	RecordAttendance(ctx context.Context, dto common.AttendanceDTO) error
}

// ClientService adapts the REST client to Service.
type ClientService struct {
	Client *v1.HrmsClient
}

func NewClientService(client *v1.HrmsClient) *ClientService {
	return &ClientService{Client: client}
}

func (s *ClientService) ListEmployees(ctx context.Context) ([]common.EmployeeDTO, error) {
	return s.Client.Employees.List(ctx)
}

func (s *ClientService) CreateEmployee(ctx context.Context, dto common.EmployeeCreateDTO) (*common.EmployeeDTO, error) {
	return s.Client.Employees.Create(ctx, &dto)
}

func (s *ClientService) DeleteEmployee(ctx context.Context, id int) error {
	return s.Client.Employees.Delete(ctx, id)
}

func (s *ClientService) RecordAttendance(ctx context.Context, dto common.AttendanceDTO) error {
	_, err := s.Client.Attendance.Record(ctx, &dto)
	return err
}
