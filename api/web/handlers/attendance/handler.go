package attendance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	core "hrmslite.com/hrms/api/core"
	"hrmslite.com/hrms/api/model"
	common "hrmslite.com/hrms/api/web/common"
	dto "hrmslite.com/hrms/hrms/v1/common"
	web "hrmslite.com/hrms/web/common"
)

const MsgAttendanceUpdated = "Attendance updated"

type Endpoint struct {
	base common.Handler
}

func Register(r gin.IRouter, base common.Handler) {
	endpoint := &Endpoint{base: base}
	r.POST("/attendance/", endpoint.Mark)
}

// Mark records the status for (employee, date), replacing an earlier one.
func (ep *Endpoint) Mark(c *gin.Context) {
	var body dto.AttendanceDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	if body.Date.IsZero() {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Field 'date' is required"))
		return
	}

	record := model.Attendance{
		EmployeeID: body.EmployeeID,
		Date:       body.Date.String(),
		Status:     string(body.Status),
	}
	err := ep.base.Dm.Transaction(c.Request.Context(), func(tx *gorm.DB) error {
		return core.MarkAttendance(tx, &record)
	})
	if err != nil {
		if errors.Is(err, core.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Employee not found"))
			return
		}
		ep.base.Error(c, err)
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.MessageDTO{Message: MsgAttendanceUpdated})
}
