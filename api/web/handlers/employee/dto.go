package employee

import (
	"log"

	"hrmslite.com/hrms/api/model"
	"hrmslite.com/hrms/hrms/v1/common"
	"hrmslite.com/hrms/hrms/v1/common/status"
	"hrmslite.com/hrms/utils"
)

func toEmployeeDTO(e model.Employee) common.EmployeeDTO {
	records := make([]common.AttendanceRecordDTO, 0, len(e.Attendance))
	for _, a := range e.Attendance {
		date, err := common.ParseDateOnly(a.Date)
		if err != nil {
			log.Printf("attendance %d: %v", a.ID, err)
			continue
		}
		records = append(records, common.AttendanceRecordDTO{Date: date, Status: status.AttendanceStatus(a.Status)})
	}
	return common.EmployeeDTO{
		ID:                e.ID,
		EmployeeID:        e.EmployeeID,
		FullName:          e.FullName,
		Email:             e.Email,
		Department:        e.Department,
		TotalPresent:      e.TotalPresent(),
		AttendanceRecords: records,
	}
}

func toEmployeeDTOs(employees []model.Employee) []common.EmployeeDTO {
	return utils.Map(employees, toEmployeeDTO)
}
