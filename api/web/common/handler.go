package common

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/infrastructure/communication"
)

type Handler struct {
	Dm       *core.DatabaseManager
	Notifier communication.Notifier
}

// GetDB returns a session bound to the request context.
func (h *Handler) GetDB(c *gin.Context) *gorm.DB {
	return h.Dm.DB.WithContext(c.Request.Context())
}

// Info posts to the info channel. Notification failures are only logged.
func (h *Handler) Info(format string, args ...any) {
	if h.Notifier == nil {
		return
	}
	if err := h.Notifier.Info(fmt.Sprintf(format, args...)); err != nil {
		log.Printf("notify: %v", err)
	}
}

// Error logs a storage failure and posts it to the error channel.
func (h *Handler) Error(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	if h.Notifier == nil {
		return
	}
	if nerr := h.Notifier.Error(fmt.Sprintf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)); nerr != nil {
		log.Printf("notify: %v", nerr)
	}
}
