package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrmslite.com/hrms/api/model"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/hrms/v1/common"
	"hrmslite.com/hrms/hrms/v1/common/status"
)

type recordingNotifier struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (n *recordingNotifier) Info(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, message)
	return nil
}

func (n *recordingNotifier) Error(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *recordingNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dm, err := core.Open("sqlite://"+filepath.Join(t.TempDir(), "hrms.db"), core.LogLevelSilent)
	require.NoError(t, err)
	t.Cleanup(func() { dm.Close() })
	require.NoError(t, dm.Migrate(model.All()...))

	notifier := &recordingNotifier{}
	return NewRouter(dm, notifier), notifier
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBody(code, email string) common.EmployeeCreateDTO {
	return common.EmployeeCreateDTO{FullName: "Name " + code, Email: email, EmployeeID: code, Department: "Ops"}
}

func listEmployees(t *testing.T, r http.Handler) []common.EmployeeDTO {
	t.Helper()
	w := do(t, r, http.MethodGet, "/employees/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out []common.EmployeeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestCreateEmployee(t *testing.T) {
	r, notifier := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/employees/", createBody("E-1", "a@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created common.EmployeeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "E-1", created.EmployeeID)
	assert.Equal(t, 0, created.TotalPresent)
	assert.Len(t, notifier.infos, 1)

	tests := []struct {
		name    string
		body    any
		code    int
		message string
	}{
		{name: "duplicate code", body: createBody("E-1", "b@example.com"), code: http.StatusConflict, message: "Employee exists."},
		{name: "duplicate email", body: createBody("E-2", "a@example.com"), code: http.StatusConflict, message: "Employee exists."},
		{name: "missing field", body: map[string]string{"full_name": "X", "email": "x@example.com", "employee_id": "E-9"}, code: http.StatusBadRequest, message: "Field 'department' is required"},
		{name: "bad email", body: createBody("E-3", "not-an-email"), code: http.StatusBadRequest, message: "Field 'email' must be a valid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/employees/", tt.body)
			assert.Equal(t, tt.code, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp["message"])
		})
	}

	assert.Len(t, listEmployees(t, r), 1)
}

func TestDeleteEmployee(t *testing.T) {
	r, _ := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/employees/", createBody("E-1", "a@example.com")).Code)
	id := listEmployees(t, r)[0].ID

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "existing", path: "/employees/" + strconv.Itoa(id), code: http.StatusNoContent},
		{name: "already gone", path: "/employees/" + strconv.Itoa(id), code: http.StatusNotFound},
		{name: "bad id", path: "/employees/abc", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, do(t, r, http.MethodDelete, tt.path, nil).Code)
		})
	}

	assert.Empty(t, listEmployees(t, r))
}

func TestMarkAttendance(t *testing.T) {
	r, _ := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/employees/", createBody("E-1", "a@example.com")).Code)
	id := listEmployees(t, r)[0].ID

	mark := func(date, st string) *httptest.ResponseRecorder {
		return do(t, r, http.MethodPost, "/attendance/", map[string]any{"employee_id": id, "date": date, "status": st})
	}

	w := mark("2024-01-01", "Present")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Attendance updated"}`, w.Body.String())
	require.Equal(t, http.StatusCreated, mark("2024-01-02", "Present").Code)
	require.Equal(t, http.StatusCreated, mark("2024-01-02", "Absent").Code)

	emp := listEmployees(t, r)[0]
	assert.Equal(t, 1, emp.TotalPresent)
	require.Len(t, emp.AttendanceRecords, 2)
	assert.Equal(t, "2024-01-02", emp.AttendanceRecords[1].Date.String())
	assert.Equal(t, status.Absent, emp.AttendanceRecords[1].Status)

	t.Run("rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, mark("2024-01-03", "Late").Code)
		assert.Equal(t, http.StatusBadRequest, mark("01/03/2024", "Present").Code)
		assert.Equal(t, http.StatusBadRequest, mark("", "Present").Code)
	})

	t.Run("unknown employee", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/attendance/", map[string]any{"employee_id": id + 100, "date": "2024-01-01", "status": "Present"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
