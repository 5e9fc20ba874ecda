package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "hrmslite.com/hrms/hrms/v1"
	"hrmslite.com/hrms/hrms/v1/common"
	"hrmslite.com/hrms/hrms/v1/common/status"
)

var (
	ada  = common.EmployeeDTO{ID: 1, EmployeeID: "E-1", FullName: "Ada Lovelace", Email: "ada@example.com", Department: "Engineering"}
	alan = common.EmployeeDTO{ID: 2, EmployeeID: "E-2", FullName: "Alan Turing", Email: "alan@example.com", Department: "Research"}
)

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func loadedView(t *testing.T, svc *fakeService, opts ...Option) *View {
	t.Helper()
	v := NewView(svc, opts...)
	require.NoError(t, v.Load(context.Background()))
	require.Equal(t, Ready, v.State().Phase)
	return v
}

func TestLoad(t *testing.T) {
	t.Run("starts loading", func(t *testing.T) {
		v := NewView(newFakeService())
		assert.Equal(t, Loading, v.State().Phase)
	})

	t.Run("ready with roster", func(t *testing.T) {
		v := loadedView(t, newFakeService(ada, alan))
		st := v.State()
		assert.Len(t, st.Employees, 2)
		assert.Empty(t, st.Failure)
	})

	t.Run("empty roster is ready, not nil", func(t *testing.T) {
		v := loadedView(t, newFakeService())
		assert.NotNil(t, v.State().Employees)
		assert.Empty(t, v.State().Employees)
	})

	t.Run("unreachable backend fails the view", func(t *testing.T) {
		svc := newFakeService(ada)
		svc.listErr = errUnreachable
		v := NewView(svc)

		err := v.Load(context.Background())
		require.Error(t, err)
		assert.True(t, v1.IsNetworkError(err))

		st := v.State()
		assert.Equal(t, Failed, st.Phase)
		assert.Equal(t, MsgConnectFailed, st.Failure)
		assert.Empty(t, st.Employees)
		assert.Empty(t, v.TakeAlert())
	})
}

func TestToggleFormClearsOnClose(t *testing.T) {
	v := loadedView(t, newFakeService())

	v.ToggleForm()
	require.True(t, v.State().ShowForm)
	require.NoError(t, v.SetField(FieldFullName, "Grace Hopper"))
	require.NoError(t, v.SetField(FieldEmail, "grace@example.com"))
	assert.Equal(t, "Grace Hopper", v.State().Form.FullName)

	v.ToggleForm()
	assert.False(t, v.State().ShowForm)
	assert.Equal(t, Form{}, v.State().Form)

	assert.Error(t, v.SetField("nickname", "x"))
}

func TestSubmit(t *testing.T) {
	grace := Form{FullName: "Grace Hopper", Email: "grace@example.com", EmployeeID: "E-3", Department: "Navy"}

	t.Run("success adds exactly one entry and resets the form", func(t *testing.T) {
		svc := newFakeService(ada, alan)
		v := loadedView(t, svc)
		before := len(v.State().Employees)

		v.ToggleForm()
		v.SetForm(grace)
		require.NoError(t, v.Submit(context.Background()))

		st := v.State()
		require.Len(t, st.Employees, before+1)
		created := st.Employees[len(st.Employees)-1]
		assert.Equal(t, "Grace Hopper", created.FullName)
		assert.Equal(t, "grace@example.com", created.Email)
		assert.Equal(t, "E-3", created.EmployeeID)
		assert.Equal(t, "Navy", created.Department)
		assert.False(t, st.ShowForm)
		assert.Equal(t, Form{}, st.Form)
		assert.Empty(t, v.TakeAlert())
		assert.Equal(t, []string{"list", "create", "list"}, svc.calls)
	})

	dupes := []struct {
		name string
		form Form
	}{
		{name: "duplicate employee code", form: Form{FullName: "Other", Email: "other@example.com", EmployeeID: "E-1", Department: "Ops"}},
		{name: "duplicate email", form: Form{FullName: "Other", Email: "ada@example.com", EmployeeID: "E-9", Department: "Ops"}},
	}
	for _, tt := range dupes {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService(ada, alan)
			v := loadedView(t, svc)

			v.ToggleForm()
			v.SetForm(tt.form)
			err := v.Submit(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, v1.ErrConflict)

			st := v.State()
			assert.Len(t, st.Employees, 2)
			assert.True(t, st.ShowForm, "form stays open")
			assert.Equal(t, tt.form, st.Form)
			assert.Equal(t, MsgCreateFailed, v.TakeAlert())
			assert.Empty(t, v.TakeAlert(), "alert is delivered once")
		})
	}

	t.Run("incomplete form never reaches the backend", func(t *testing.T) {
		svc := newFakeService()
		v := loadedView(t, svc)
		v.SetForm(Form{FullName: "Grace Hopper", Email: "grace@example.com", EmployeeID: "  "})

		err := v.Submit(context.Background())
		assert.ErrorIs(t, err, ErrFormIncomplete)
		assert.Empty(t, v.TakeAlert())
		assert.Equal(t, []string{"list"}, svc.calls)
	})

	t.Run("not ready", func(t *testing.T) {
		v := NewView(newFakeService())
		v.SetForm(grace)
		assert.ErrorIs(t, v.Submit(context.Background()), ErrNotReady)
	})
}

func TestDelete(t *testing.T) {
	t.Run("confirmed delete removes the employee", func(t *testing.T) {
		svc := newFakeService(ada, alan)
		v := loadedView(t, svc)

		var asked string
		confirm := ConfirmFunc(func(msg string) bool { asked = msg; return true })
		require.NoError(t, v.Delete(context.Background(), ada.ID, confirm))

		assert.Equal(t, MsgConfirmDelete, asked)
		st := v.State()
		require.Len(t, st.Employees, 1)
		assert.Equal(t, alan.ID, st.Employees[0].ID)
	})

	t.Run("declined delete does nothing", func(t *testing.T) {
		svc := newFakeService(ada)
		v := loadedView(t, svc)

		require.NoError(t, v.Delete(context.Background(), ada.ID, ConfirmFunc(func(string) bool { return false })))
		assert.Len(t, v.State().Employees, 1)
		assert.Equal(t, []string{"list"}, svc.calls)
	})

	t.Run("missing id alerts and keeps the roster", func(t *testing.T) {
		svc := newFakeService(ada, alan)
		v := loadedView(t, svc)

		err := v.Delete(context.Background(), 99, Confirmed)
		assert.ErrorIs(t, err, v1.ErrNotFound)
		assert.Len(t, v.State().Employees, 2)
		assert.Equal(t, MsgDeleteFailed, v.TakeAlert())
	})
}

func TestMarkAttendance(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 21:00 local on March 4th is already March 5th in UTC; the local day wins.
	clock := fixedClock(time.Date(2024, 3, 4, 21, 0, 0, 0, loc))

	t.Run("present shows in history for today", func(t *testing.T) {
		svc := newFakeService(ada)
		v := loadedView(t, svc, clock)

		require.NoError(t, v.MarkAttendance(context.Background(), ada.ID, status.Present))
		assert.Equal(t, 1, v.State().Employees[0].TotalPresent)

		require.NoError(t, v.OpenHistory(ada.ID))
		h := v.State().History
		require.Len(t, h.Records, 1)
		assert.Equal(t, "2024-03-04", h.Records[0].Date.String())
		assert.Equal(t, status.Present, h.Records[0].Status)
	})

	t.Run("marking the same day again follows the backend upsert", func(t *testing.T) {
		svc := newFakeService(ada)
		v := loadedView(t, svc, clock)

		require.NoError(t, v.MarkAttendance(context.Background(), ada.ID, status.Present))
		require.NoError(t, v.MarkAttendance(context.Background(), ada.ID, status.Absent))

		emp := v.State().Employees[0]
		require.Len(t, emp.AttendanceRecords, 1)
		assert.Equal(t, status.Absent, emp.AttendanceRecords[0].Status)
		assert.Equal(t, 0, emp.TotalPresent)
	})

	t.Run("failure alerts", func(t *testing.T) {
		svc := newFakeService(ada)
		svc.recordErr = errors.New("boom")
		v := loadedView(t, svc, clock)

		assert.Error(t, v.MarkAttendance(context.Background(), ada.ID, status.Present))
		assert.Equal(t, MsgAttendanceFailed, v.TakeAlert())
		assert.Equal(t, Ready, v.State().Phase)
	})

	t.Run("explicit day overrides the clock", func(t *testing.T) {
		svc := newFakeService(ada)
		v := loadedView(t, svc, clock)

		day, err := common.ParseDateOnly("2024-03-05")
		require.NoError(t, err)
		require.NoError(t, v.MarkAttendanceOn(context.Background(), ada.ID, status.Present, day))
		records := v.State().Employees[0].AttendanceRecords
		require.Len(t, records, 1)
		assert.Equal(t, "2024-03-05", records[0].Date.String())
	})

	t.Run("zero day is rejected locally", func(t *testing.T) {
		svc := newFakeService(ada)
		v := loadedView(t, svc, clock)

		assert.ErrorIs(t, v.MarkAttendanceOn(context.Background(), ada.ID, status.Present, common.DateOnly{}), ErrInvalidDate)
		assert.Equal(t, []string{"list"}, svc.calls)
	})

	t.Run("invalid status is rejected locally", func(t *testing.T) {
		svc := newFakeService(ada)
		v := loadedView(t, svc, clock)

		assert.ErrorIs(t, v.MarkAttendance(context.Background(), ada.ID, "Late"), ErrInvalidStatus)
		assert.Equal(t, []string{"list"}, svc.calls)
	})
}

func TestAlertIsShownOnce(t *testing.T) {
	v := loadedView(t, newFakeService(ada))
	v.Alert(MsgImportRejected)
	assert.Equal(t, MsgImportRejected, v.TakeAlert())
	assert.Empty(t, v.TakeAlert())
}

func TestRefetchFailureAfterMutationFailsTheView(t *testing.T) {
	svc := newFakeService(ada)
	v := loadedView(t, svc)

	svc.listErr = errUnreachable
	err := v.MarkAttendance(context.Background(), ada.ID, status.Present)
	require.Error(t, err)
	assert.Equal(t, Failed, v.State().Phase)
	assert.ErrorIs(t, v.MarkAttendance(context.Background(), ada.ID, status.Present), ErrNotReady)
}

func TestHistoryModal(t *testing.T) {
	d := func(s string) common.DateOnly {
		date, err := common.ParseDateOnly(s)
		require.NoError(t, err)
		return date
	}
	withRecords := alan
	withRecords.AttendanceRecords = []common.AttendanceRecordDTO{
		{Date: d("2024-01-01"), Status: status.Present},
		{Date: d("2024-01-03"), Status: status.Absent},
		{Date: d("2024-01-02"), Status: status.Present},
	}

	svc := newFakeService(ada, withRecords)
	v := loadedView(t, svc)

	t.Run("sorted newest first without a request", func(t *testing.T) {
		require.NoError(t, v.OpenHistory(withRecords.ID))
		h := v.State().History
		require.NotNil(t, h)
		assert.Equal(t, "Alan Turing", h.Employee.FullName)

		var got []string
		for _, r := range h.Records {
			got = append(got, r.Date.String())
		}
		assert.Equal(t, []string{"2024-01-03", "2024-01-02", "2024-01-01"}, got)
		assert.Equal(t, []string{"list"}, svc.calls)
	})

	t.Run("missing records render as empty", func(t *testing.T) {
		require.NoError(t, v.OpenHistory(ada.ID))
		h := v.State().History
		assert.True(t, h.Empty())
		assert.NotNil(t, h.Records)
	})

	t.Run("close discards the capture", func(t *testing.T) {
		v.CloseHistory()
		assert.Nil(t, v.State().History)
	})

	t.Run("unknown employee", func(t *testing.T) {
		assert.ErrorIs(t, v.OpenHistory(404), ErrEmployeeNotLoaded)
	})
}
