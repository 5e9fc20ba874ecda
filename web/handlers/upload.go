package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"hrmslite.com/hrms/roster"
	"hrmslite.com/hrms/roster/views"
	"hrmslite.com/hrms/web/common"
)

const maxUploadSize = 5 << 20

// Import creates the employees of an uploaded CSV file and reloads the roster.
// Rejected uploads raise an alert and leave the roster as it was.
func (ep *RosterEndpoint) Import(c *gin.Context) {
	ep.withView(c, func(v *roster.View) error {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
		file, err := c.FormFile(views.FieldFile)
		if err != nil {
			v.Alert(roster.MsgImportRejected)
			return fmt.Errorf("read upload: %w", err)
		}
		if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".csv" {
			v.Alert(roster.MsgImportRejected)
			return fmt.Errorf("import: %s is not a csv file", file.Filename)
		}

		f, err := file.Open()
		if err != nil {
			return err
		}
		defer f.Close()

		forms, err := roster.ParseEmployeeCSV(f)
		if err != nil {
			v.Alert(roster.MsgImportUnreadable)
			return fmt.Errorf("import %s: %w", file.Filename, err)
		}
		result, err := v.Import(c.Request.Context(), forms)
		for _, failure := range result.Failures {
			log.Printf("import %s row %d (%s): %v", file.Filename, failure.Row, failure.EmployeeID, failure.Err)
		}
		return err
	})
}

// Export streams the loaded roster as a workbook. It issues no request.
func (ep *RosterEndpoint) Export(c *gin.Context) {
	sess := ep.store.Get(sessionID(c))
	sess.Lock()
	defer sess.Unlock()
	if sess.View == nil || sess.View.State().Phase != roster.Ready {
		common.SeeOther(c, views.PathMount)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="roster.xlsx"`)
	c.Status(http.StatusOK)
	if err := roster.WriteWorkbook(c.Writer, sess.View.State().Employees); err != nil {
		log.Printf("export: %v", err)
		_ = c.Error(err)
	}
}
