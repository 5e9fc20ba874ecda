package v1

import (
	"context"
	"fmt"

	"hrmslite.com/hrms/hrms/v1/common"
)

type EmployeeEndpoint struct {
	transport *Transport
}

// List returns the full roster. There is no pagination.
func (ep *EmployeeEndpoint) List(ctx context.Context) ([]common.EmployeeDTO, error) {
	resp, err := ep.transport.Get(ctx, "/employees/", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]common.EmployeeDTO](resp)
}

// Create fails with ErrConflict when the employee code or email is taken.
func (ep *EmployeeEndpoint) Create(ctx context.Context, dto *common.EmployeeCreateDTO) (*common.EmployeeDTO, error) {
	resp, err := ep.transport.Post(ctx, "/employees/", dto, nil)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	created, err := decode[common.EmployeeDTO](resp)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (ep *EmployeeEndpoint) Delete(ctx context.Context, id int) error {
	_, err := ep.transport.Delete(ctx, fmt.Sprintf("/employees/%d", id))
	return err
}
