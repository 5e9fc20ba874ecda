package v1

import (
	"context"

	"hrmslite.com/hrms/hrms/v1/common"
)

type AttendanceEndpoint struct {
	transport *Transport
}

// Record upserts or appends the record for dto.Date, depending on the backend.
func (ep *AttendanceEndpoint) Record(ctx context.Context, dto *common.AttendanceDTO) (*common.MessageDTO, error) {
	resp, err := ep.transport.Post(ctx, "/attendance/", dto, nil)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return &common.MessageDTO{}, nil
	}
	msg, err := decode[common.MessageDTO](resp)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
