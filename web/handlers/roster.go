package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dto "hrmslite.com/hrms/hrms/v1/common"
	"hrmslite.com/hrms/hrms/v1/common/status"
	"hrmslite.com/hrms/roster"
	"hrmslite.com/hrms/roster/views"
	"hrmslite.com/hrms/web/common"
	"hrmslite.com/hrms/web/middlewares"
)

var errBadID = errors.New("invalid employee id")

type RosterEndpoint struct {
	store   *Store
	service roster.Service
	options []roster.Option
}

func Register(r gin.IRouter, store *Store, service roster.Service, options ...roster.Option) {
	ep := &RosterEndpoint{store: store, service: service, options: options}
	r.GET(views.PathMount, ep.Mount)
	r.GET(views.PathRoster, ep.Show)
	r.POST(views.PathToggleForm, ep.ToggleForm)
	r.POST(views.PathEmployees, ep.Create)
	r.POST(views.PathEmployees+"/:id/"+views.ActionDelete, ep.Delete)
	r.POST(views.PathEmployees+"/:id/"+views.ActionMark, ep.MarkAttendance)
	r.POST(views.PathEmployees+"/:id/"+views.ActionHistory, ep.OpenHistory)
	r.POST(views.PathCloseModal, ep.CloseHistory)
	r.POST(views.PathImport, ep.Import)
	r.GET(views.PathExport, ep.Export)
}

func sessionID(c *gin.Context) string {
	return middlewares.SessionID(c)
}

// Mount starts a fresh view for the session and loads the roster.
func (ep *RosterEndpoint) Mount(c *gin.Context) {
	sess := ep.store.Get(sessionID(c))
	sess.Lock()
	defer sess.Unlock()

	sess.View = roster.NewView(ep.service, ep.options...)
	_ = sess.View.Load(c.Request.Context())
	render(c, sess.View)
}

// Show renders the current state without contacting the backend.
func (ep *RosterEndpoint) Show(c *gin.Context) {
	sess := ep.store.Get(sessionID(c))
	sess.Lock()
	defer sess.Unlock()

	if sess.View == nil {
		common.SeeOther(c, views.PathMount)
		return
	}
	render(c, sess.View)
}

func render(c *gin.Context, v *roster.View) {
	common.RenderHTML(c, http.StatusOK, views.Page(v.TakeAlert(), views.View(v.State())))
}

// withView runs action on the session's view and redirects back to the roster.
// Errors are logged; what the user sees comes from the view state.
func (ep *RosterEndpoint) withView(c *gin.Context, action func(v *roster.View) error) {
	sess := ep.store.Get(sessionID(c))
	sess.Lock()
	defer sess.Unlock()

	if sess.View == nil {
		common.SeeOther(c, views.PathMount)
		return
	}
	if err := action(sess.View); err != nil && !errors.Is(err, roster.ErrFormIncomplete) {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	common.SeeOther(c, views.PathRoster)
}

func employeeID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errBadID
	}
	return id, nil
}

func (ep *RosterEndpoint) ToggleForm(c *gin.Context) {
	ep.withView(c, func(v *roster.View) error {
		v.ToggleForm()
		return nil
	})
}

func (ep *RosterEndpoint) Create(c *gin.Context) {
	ep.withView(c, func(v *roster.View) error {
		v.SetForm(roster.Form{
			FullName:   c.PostForm(roster.FieldFullName),
			Email:      c.PostForm(roster.FieldEmail),
			EmployeeID: c.PostForm(roster.FieldEmployeeID),
			Department: c.PostForm(roster.FieldDepartment),
		})
		return v.Submit(c.Request.Context())
	})
}

// Delete expects the browser to have asked for confirmation before posting.
func (ep *RosterEndpoint) Delete(c *gin.Context) {
	ep.withView(c, func(v *roster.View) error {
		id, err := employeeID(c)
		if err != nil {
			return err
		}
		return v.Delete(c.Request.Context(), id, roster.Confirmed)
	})
}

// MarkAttendance uses the browser's calendar date when the form carries one and
// the view clock otherwise.
func (ep *RosterEndpoint) MarkAttendance(c *gin.Context) {
	ep.withView(c, func(v *roster.View) error {
		id, err := employeeID(c)
		if err != nil {
			return err
		}
		st, ok := status.Parse(c.PostForm(views.FieldStatus))
		if !ok {
			return roster.ErrInvalidStatus
		}

		raw := c.PostForm(views.FieldDate)
		if raw == "" {
			return v.MarkAttendance(c.Request.Context(), id, st)
		}
		day, err := dto.ParseDateOnly(raw)
		if err != nil {
			v.Alert(roster.MsgAttendanceFailed)
			return fmt.Errorf("%w: %v", roster.ErrInvalidDate, err)
		}
		return v.MarkAttendanceOn(c.Request.Context(), id, st, day)
	})
}

func (ep *RosterEndpoint) OpenHistory(c *gin.Context) {
	ep.withView(c, func(v *roster.View) error {
		id, err := employeeID(c)
		if err != nil {
			return err
		}
		return v.OpenHistory(id)
	})
}

func (ep *RosterEndpoint) CloseHistory(c *gin.Context) {
	ep.withView(c, func(v *roster.View) error {
		v.CloseHistory()
		return nil
	})
}
