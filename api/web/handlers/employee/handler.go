package employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	core "hrmslite.com/hrms/api/core"
	"hrmslite.com/hrms/api/model"
	common "hrmslite.com/hrms/api/web/common"
	dto "hrmslite.com/hrms/hrms/v1/common"
	web "hrmslite.com/hrms/web/common"
)

const MsgEmployeeExists = "Employee exists."

type Endpoint struct {
	base common.Handler
}

func Register(r gin.IRouter, base common.Handler) {
	endpoint := &Endpoint{base: base}
	r.GET("/employees/", endpoint.List)
	r.POST("/employees/", endpoint.Create)
	r.DELETE("/employees/:id", endpoint.Delete)
}

func (ep *Endpoint) List(c *gin.Context) {
	employees, err := core.ListEmployees(ep.base.GetDB(c))
	if err != nil {
		ep.base.Error(c, err)
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, toEmployeeDTOs(employees))
}

func (ep *Endpoint) Create(c *gin.Context) {
	var body dto.EmployeeCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	emp := model.Employee{
		EmployeeID: body.EmployeeID,
		FullName:   body.FullName,
		Email:      body.Email,
		Department: body.Department,
	}
	if err := core.CreateEmployee(ep.base.GetDB(c), &emp); err != nil {
		if errors.Is(err, core.ErrEmployeeExists) {
			c.JSON(http.StatusConflict, web.NewErrorResponse(MsgEmployeeExists))
			return
		}
		ep.base.Error(c, err)
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	ep.base.Info("Employee %s (%s) created in %s", emp.FullName, emp.EmployeeID, emp.Department)
	c.JSON(http.StatusCreated, toEmployeeDTO(emp))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	err = ep.base.Dm.Transaction(c.Request.Context(), func(tx *gorm.DB) error {
		return core.DeleteEmployee(tx, id)
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

	ep.base.Info("Employee %d deleted", id)
	c.Status(http.StatusNoContent)
}
