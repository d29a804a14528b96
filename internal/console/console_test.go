package console

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/app/page"
	"github.com/cmlabs-hris/hrms-lite/internal/app/session"
	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type fakeAPI struct {
	mu        sync.Mutex
	employees []employee.EmployeeResponse
	records   []attendance.AttendanceResponse
	created   []employee.CreateEmployeeRequest
	deleted   []string
	logins    int
	logouts   int
}

func (a *fakeAPI) counts() (logins, logouts int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.logins, a.logouts
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newFakeAPI(t *testing.T) (*fakeAPI, *client.Client) {
	t.Helper()
	api := &fakeAPI{
		employees: []employee.EmployeeResponse{
			{EmployeeID: "EMP001", FullName: "John Doe", Email: "john.doe@company.com", Department: "Engineering"},
		},
		records: []attendance.AttendanceResponse{
			{ID: 1, EmployeeID: "EMP001", Date: "2024-01-15", Status: "Present", FullName: "John Doe", Department: "Engineering"},
		},
	}

	empID := "EMP001"
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		api.mu.Lock()
		api.logins++
		api.mu.Unlock()
		switch {
		case req.Email == "admin@company.com" && req.Password == "admin123":
			writeJSON(w, http.StatusOK, auth.LoginResponse{
				UserResponse: user.UserResponse{ID: 1, Email: req.Email, FullName: "Admin User", Role: user.RoleAdmin},
				AccessToken:  "admin-token",
			})
		case req.Email == "john.doe@company.com" && req.Password == "john123":
			writeJSON(w, http.StatusOK, auth.LoginResponse{
				UserResponse: user.UserResponse{ID: 2, Email: req.Email, FullName: "John Doe", Role: user.RoleEmployee, EmployeeID: &empID},
				AccessToken:  "john-token",
			})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid email or password"})
		}
	})
	mux.HandleFunc("POST /api/logout", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.logouts++
		api.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	})
	mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		writeJSON(w, http.StatusOK, api.employees)
	})
	mux.HandleFunc("POST /api/employees", func(w http.ResponseWriter, r *http.Request) {
		var req employee.CreateEmployeeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		api.mu.Lock()
		defer api.mu.Unlock()
		api.created = append(api.created, req)
		api.employees = append([]employee.EmployeeResponse{{
			EmployeeID: req.EmployeeID, FullName: req.FullName, Email: req.Email, Department: req.Department,
		}}, api.employees...)
		writeJSON(w, http.StatusCreated, employee.CreateEmployeeResponse{Message: "Employee created successfully", EmployeeID: req.EmployeeID})
	})
	mux.HandleFunc("DELETE /api/employees/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		id := r.PathValue("id")
		api.deleted = append(api.deleted, id)
		kept := api.employees[:0]
		for _, e := range api.employees {
			if e.EmployeeID != id {
				kept = append(kept, e)
			}
		}
		api.employees = kept
		writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
	})
	mux.HandleFunc("GET /api/attendance", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		writeJSON(w, http.StatusOK, api.records)
	})
	mux.HandleFunc("GET /api/stats/employees", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})
	mux.HandleFunc("GET /api/leaves", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL)
	require.NoError(t, err)
	return api, c
}

func newConsole(t *testing.T, input string) (*Console, *fakeAPI, *bytes.Buffer) {
	t.Helper()
	api, c := newFakeAPI(t)
	var out bytes.Buffer
	con := New(c, strings.NewReader(input), &out, nil, page.WithBannerTimeout(time.Hour))
	return con, api, &out
}

func TestRun_AdminAddsEmployee(t *testing.T) {
	input := strings.Join([]string{
		"login admin@company.com",
		"admin123",
		"employee add",
		"EMP004",
		"Alice Brown",
		"alice@company.com",
		"HR",
		"quit",
	}, "\n") + "\n"
	con, api, out := newConsole(t, input)

	require.NoError(t, con.Run(context.Background()))

	require.Len(t, api.created, 1)
	assert.Equal(t, employee.CreateEmployeeRequest{
		EmployeeID: "EMP004", FullName: "Alice Brown", Email: "alice@company.com", Department: "HR",
	}, api.created[0])
	assert.Contains(t, out.String(), "Welcome, Admin User")
	assert.Contains(t, out.String(), "Employee added successfully!")
	assert.Contains(t, out.String(), "Alice Brown")
}

func TestRun_EndOfInputLogsOut(t *testing.T) {
	con, api, _ := newConsole(t, "login admin@company.com\nadmin123\n")

	require.NoError(t, con.Run(context.Background()))
	logins, logouts := api.counts()
	assert.Equal(t, 1, logins)
	assert.Equal(t, 1, logouts)
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	api, c := newFakeAPI(t)
	pr, pw := io.Pipe()
	defer pw.Close()
	con := New(c, pr, io.Discard, nil, page.WithBannerTimeout(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- con.Run(ctx) }()

	_, err := io.WriteString(pw, "login admin@company.com\nadmin123\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return con.session.View() == session.ViewAdmin
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	_, logouts := api.counts()
	assert.Equal(t, 1, logouts)
}

func TestExecute_RoleGating(t *testing.T) {
	ctx := context.Background()
	con, _, out := newConsole(t, "john123\n")

	_, err := con.Execute(ctx, "employees")
	assert.ErrorIs(t, err, ErrNotAllowed)

	_, err = con.Execute(ctx, "frobnicate")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = con.Execute(ctx, "login john.doe@company.com")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome, John Doe")
	assert.Contains(t, out.String(), "My attendance")

	_, err = con.Execute(ctx, "employees")
	assert.ErrorIs(t, err, ErrNotAllowed)
	_, err = con.Execute(ctx, "leave approve 1")
	assert.ErrorIs(t, err, ErrNotAllowed)
	_, err = con.Execute(ctx, "login")
	assert.ErrorIs(t, err, ErrNotAllowed)

	quit, err := con.Execute(ctx, "quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestExecute_LoginFailure(t *testing.T) {
	ctx := context.Background()
	con, _, out := newConsole(t, "wrong\n\n")

	_, err := con.Execute(ctx, "login admin@company.com")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = con.Execute(ctx, "login not-an-email")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "email: Please enter a valid email address")
}

func loginAdmin(t *testing.T, con *Console) {
	t.Helper()
	_, err := con.Execute(context.Background(), "login admin@company.com")
	require.NoError(t, err)
}

func TestExecute_DeleteEmployeeNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	con, api, out := newConsole(t, "admin123\n")
	loginAdmin(t, con)

	_, err := con.Execute(ctx, "employee delete EMP001")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "This will also delete all attendance records for this employee.")

	_, err = con.Execute(ctx, "cancel")
	require.NoError(t, err)
	assert.Empty(t, api.deleted)

	_, err = con.Execute(ctx, "employee delete EMP404")
	assert.ErrorIs(t, err, page.ErrRecordNotLoaded)

	_, err = con.Execute(ctx, "employee delete EMP001")
	require.NoError(t, err)
	_, err = con.Execute(ctx, "confirm")
	require.NoError(t, err)
	assert.Equal(t, []string{"EMP001"}, api.deleted)
	assert.Contains(t, out.String(), "Employee deleted successfully!")
}

func TestExecute_SetAndSubmit(t *testing.T) {
	ctx := context.Background()
	// Every prompt of "employee add" is left blank.
	con, api, out := newConsole(t, "admin123\n\n\n\n\n")
	loginAdmin(t, con)

	_, err := con.Execute(ctx, "employee add")
	require.NoError(t, err)
	assert.Empty(t, api.created)
	assert.Contains(t, out.String(), "Employee ID is required")

	_, err = con.Execute(ctx, "set employee_id=EMP005 full_name=Bob Lee email=bob@company.com department=Sales")
	require.NoError(t, err)
	_, err = con.Execute(ctx, "submit")
	require.NoError(t, err)

	require.Len(t, api.created, 1)
	assert.Equal(t, "Bob Lee", api.created[0].FullName)

	_, err = con.Execute(ctx, "set email=x@y.z")
	assert.ErrorIs(t, err, ErrNoForm)
}

func TestExecute_AttendanceFilterValidation(t *testing.T) {
	ctx := context.Background()
	con, _, out := newConsole(t, "admin123\n")
	loginAdmin(t, con)

	_, err := con.Execute(ctx, "attendance filter date=01-02-2024")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "date: Date must be in YYYY-MM-DD format")

	_, err = con.Execute(ctx, "attendance filter shift=night")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestExecute_AttendanceExport(t *testing.T) {
	ctx := context.Background()
	con, _, _ := newConsole(t, "admin123\n")
	loginAdmin(t, con)

	path := filepath.Join(t.TempDir(), "attendance.xlsx")
	_, err := con.Execute(ctx, "attendance export "+path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Date", "Employee ID", "Full Name", "Department", "Status"}, rows[0])
	assert.Equal(t, []string{"1", "2024-01-15", "EMP001", "John Doe", "Engineering", "Present"}, rows[1])

	_, err = con.Execute(ctx, "attendance export report.csv")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestParseAssignments(t *testing.T) {
	values, err := parseAssignments([]string{"full_name=Mary", "Ann", "Lee", "Email=mary@company.com"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"full_name": "Mary Ann Lee", "email": "mary@company.com"}, values)

	_, err = parseAssignments([]string{"oops"})
	assert.ErrorIs(t, err, ErrUsage)
}
