package roster

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"hrmslite.com/hrms/hrms/v1/common"
	"hrmslite.com/hrms/hrms/v1/common/status"
	"hrmslite.com/hrms/utils"
)

type Phase int

const (
	Loading Phase = iota
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

var (
	ErrNotReady          = errors.New("roster is not ready")
	ErrEmployeeNotLoaded = errors.New("employee is not in the loaded roster")
	ErrInvalidStatus     = errors.New("invalid attendance status")
	ErrInvalidDate       = errors.New("invalid attendance date")
)

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(message string) bool
}

type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

// Confirmed is used when the confirmation already happened elsewhere, e.g. in the
// browser before the form was posted.
var Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })

type Option func(*View)

// WithClock replaces time.Now. The returned time's location decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(v *View) {
		v.now = now
	}
}

// View owns the roster screen state. It is mutated only through its action
// methods and is not safe for concurrent use.
type View struct {
	service Service
	now     func() time.Time

	phase     Phase
	failure   string
	employees []common.EmployeeDTO
	form      Form
	showForm  bool
	history   *History
	alert     string
}

func NewView(service Service, opts ...Option) *View {
	v := &View{
		service: service,
		now:     time.Now,
		phase:   Loading,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// State is a render snapshot of the view.
type State struct {
	Phase     Phase
	Failure   string
	Employees []common.EmployeeDTO
	Form      Form
	ShowForm  bool
	History   *History
}

func (v *View) State() State {
	return State{
		Phase:     v.phase,
		Failure:   v.failure,
		Employees: slices.Clone(v.employees),
		Form:      v.form,
		ShowForm:  v.showForm,
		History:   v.history,
	}
}

// Alert queues message as the next blocking alert, replacing one not yet shown.
func (v *View) Alert(message string) {
	v.alert = message
}

// TakeAlert returns the pending blocking alert, if any, and clears it.
func (v *View) TakeAlert() string {
	alert := v.alert
	v.alert = ""
	return alert
}

// Load replaces the roster with the server's. Any failure moves the view to
// Failed, which only a new view leaves.
func (v *View) Load(ctx context.Context) error {
	employees, err := v.service.ListEmployees(ctx)
	if err != nil {
		log.Printf("roster: list employees: %v", err)
		v.phase = Failed
		v.failure = MsgConnectFailed
		v.employees = nil
		v.history = nil
		return fmt.Errorf("list employees: %w", err)
	}
	if employees == nil {
		employees = []common.EmployeeDTO{}
	}
	v.employees = employees
	v.phase = Ready
	v.failure = ""
	return nil
}

func (v *View) ToggleForm() {
	v.showForm = !v.showForm
	if !v.showForm {
		v.form = Form{}
	}
}

func (v *View) SetField(field, value string) error {
	return v.form.Set(field, value)
}

func (v *View) SetForm(f Form) {
	v.form = f
}

// Submit creates the employee described by the form. An incomplete form never
// reaches the backend and raises no alert.
func (v *View) Submit(ctx context.Context) error {
	if v.phase != Ready {
		return ErrNotReady
	}
	if err := v.form.Validate(); err != nil {
		return err
	}
	if _, err := v.service.CreateEmployee(ctx, v.form.DTO()); err != nil {
		v.alert = MsgCreateFailed
		return fmt.Errorf("create employee: %w", err)
	}
	v.showForm = false
	v.form = Form{}
	return v.Load(ctx)
}

// Delete removes employee id after confirmation. Declining is not an error.
func (v *View) Delete(ctx context.Context, id int, confirm Confirmer) error {
	if v.phase != Ready {
		return ErrNotReady
	}
	if !confirm.Confirm(MsgConfirmDelete) {
		return nil
	}
	if err := v.service.DeleteEmployee(ctx, id); err != nil {
		v.alert = MsgDeleteFailed
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	return v.Load(ctx)
}

// MarkAttendance records st for employee id on the local calendar day of the
// view's clock at call time.
func (v *View) MarkAttendance(ctx context.Context, id int, st status.AttendanceStatus) error {
	return v.MarkAttendanceOn(ctx, id, st, common.NewDateOnly(v.now()))
}

// MarkAttendanceOn records st for employee id on day, a calendar date already
// taken from the user's clock.
func (v *View) MarkAttendanceOn(ctx context.Context, id int, st status.AttendanceStatus, day common.DateOnly) error {
	if v.phase != Ready {
		return ErrNotReady
	}
	if !st.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, st)
	}
	if day.IsZero() {
		return ErrInvalidDate
	}
	dto := common.AttendanceDTO{
		EmployeeID: id,
		Date:       day,
		Status:     st,
	}
	if err := v.service.RecordAttendance(ctx, dto); err != nil {
		v.alert = MsgAttendanceFailed
		return fmt.Errorf("record attendance for %d: %w", id, err)
	}
	return v.Load(ctx)
}

// Import creates every form and reloads the roster once. Rows that fail are
// summarised in a single alert.
func (v *View) Import(ctx context.Context, forms []Form) (ImportResult, error) {
	if v.phase != Ready {
		return ImportResult{}, ErrNotReady
	}
	result := Import(ctx, v.service, forms)
	if len(result.Failures) > 0 {
		v.alert = fmt.Sprintf(MsgImportSummary, result.Created, len(result.Failures))
	}
	return result, v.Load(ctx)
}

// OpenHistory captures the loaded employee id for the history modal. No request
// is made; later reloads do not refresh the capture.
func (v *View) OpenHistory(id int) error {
	if v.phase != Ready {
		return ErrNotReady
	}
	emp := utils.Find(v.employees, func(e common.EmployeeDTO) bool { return e.ID == id })
	if emp == nil {
		return ErrEmployeeNotLoaded
	}
	v.history = NewHistory(*emp)
	return nil
}

func (v *View) CloseHistory() {
	v.history = nil
}
