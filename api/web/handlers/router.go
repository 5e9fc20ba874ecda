package handlers

import (
	"github.com/gin-gonic/gin"

	common "hrmslite.com/hrms/api/web/common"
	"hrmslite.com/hrms/api/web/handlers/attendance"
	"hrmslite.com/hrms/api/web/handlers/employee"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/infrastructure/communication"
)

// NewRouter wires the REST surface over dm.
func NewRouter(dm *core.DatabaseManager, notifier communication.Notifier) *gin.Engine {
	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	base := common.Handler{Dm: dm, Notifier: notifier}
	employee.Register(r, base)
	attendance.Register(r, base)
	return r
}
