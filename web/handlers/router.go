package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"hrmslite.com/hrms/roster"
	"hrmslite.com/hrms/web/middlewares"
)

const SessionTTL = 12 * time.Hour

// NewRouter serves the roster front end with one view per browser session.
func NewRouter(store *Store, service roster.Service, secret []byte, options ...roster.Option) *gin.Engine {
	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	app := r.Group("/")
	app.Use(middlewares.Session(secret, SessionTTL))
	Register(app, store, service, options...)
	return r
}
