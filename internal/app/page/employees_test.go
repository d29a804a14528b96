package page

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/app/modal"
	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeesPage(t *testing.T) (*Employees, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	p := NewEmployees(fakeEmployees{store}, testOptions()...)
	t.Cleanup(p.Unmount)
	require.NoError(t, p.Mount(context.Background()))
	return p, store
}

func TestEmployees_Mount(t *testing.T) {
	p, _ := newEmployeesPage(t)

	snap := p.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.Len(t, snap.Employees, 1)
	assert.Equal(t, modal.Closed, snap.Modal.State)
}

func TestEmployees_BlankFieldsBlockSubmit(t *testing.T) {
	p, store := newEmployeesPage(t)

	p.OpenAdd()
	require.NoError(t, p.Modal().Update("full_name", func(f *employee.CreateEmployeeRequest) {
		f.FullName = "Jane Roe"
		f.Email = "   "
	}))

	err := p.Submit(context.Background())
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	assert.Equal(t, map[string]string{
		"employee_id": "Employee ID is required",
		"email":       "Email is required",
		"department":  "Department is required",
	}, p.Modal().Errors())
	assert.Equal(t, modal.Open, p.Modal().State())
	assert.Equal(t, 0, store.count("employees.create"))
	assert.Empty(t, p.Snapshot().Error)
}

func TestEmployees_CreateReloadsFromServer(t *testing.T) {
	p, store := newEmployeesPage(t)

	p.OpenAdd()
	require.NoError(t, p.Modal().Update("", func(f *employee.CreateEmployeeRequest) {
		*f = employee.CreateEmployeeRequest{
			EmployeeID: "EMP004",
			FullName:   "Jane Roe",
			Email:      "jane.roe@company.com",
			Department: "Finance",
		}
	}))
	require.NoError(t, p.Submit(context.Background()))

	snap := p.Snapshot()
	assert.Equal(t, 1, store.count("employees.create"))
	assert.Equal(t, 2, store.count("employees.list"))
	require.Len(t, snap.Employees, 2)
	assert.Equal(t, "EMP004", snap.Employees[0].EmployeeID)
	assert.Equal(t, "Employee added successfully!", snap.Success)
	assert.Equal(t, modal.Closed, snap.Modal.State)
}

func TestEmployees_ServerRejectionKeepsFormOpen(t *testing.T) {
	p, store := newEmployeesPage(t)
	store.setFail("employees.create", &client.RequestError{
		Message: "Employee ID already exists",
		Status:  409,
		Kind:    client.KindConflict,
	})

	p.OpenAdd()
	require.NoError(t, p.Modal().Update("", func(f *employee.CreateEmployeeRequest) {
		*f = employee.CreateEmployeeRequest{EmployeeID: "EMP001", FullName: "John", Email: "j@company.com", Department: "Eng"}
	}))

	assert.Error(t, p.Submit(context.Background()))
	snap := p.Snapshot()
	assert.Equal(t, "Employee ID already exists", snap.Error)
	assert.Equal(t, modal.Open, snap.Modal.State)
	assert.False(t, snap.Submitting)
	assert.Equal(t, 1, store.count("employees.list"))
}

func TestEmployees_CancelDeleteIssuesNoRequest(t *testing.T) {
	p, store := newEmployeesPage(t)

	require.NoError(t, p.RequestDelete("EMP001"))
	assert.Equal(t, modal.ConfirmingDelete, p.Modal().State())
	p.Cancel()

	assert.Equal(t, modal.Closed, p.Modal().State())
	assert.Equal(t, 0, store.count("employees.delete"))
	assert.Len(t, p.Items(), 1)
}

func TestEmployees_ConfirmDelete(t *testing.T) {
	p, store := newEmployeesPage(t)

	require.NoError(t, p.RequestDelete("EMP001"))
	require.NoError(t, p.ConfirmDelete(context.Background()))

	snap := p.Snapshot()
	assert.Equal(t, 1, store.count("employees.delete"))
	assert.Empty(t, snap.Employees)
	assert.Equal(t, "Employee deleted successfully!", snap.Success)
}

func TestEmployees_DeleteAlreadyGone(t *testing.T) {
	p, store := newEmployeesPage(t)
	store.mu.Lock()
	store.employees = nil
	store.mu.Unlock()

	require.NoError(t, p.RequestDelete("EMP001"))
	err := p.ConfirmDelete(context.Background())
	assert.True(t, client.IsKind(err, client.KindNotFound))

	snap := p.Snapshot()
	assert.Equal(t, "Employee not found", snap.Error)
	assert.Equal(t, modal.Closed, snap.Modal.State)
}

func TestEmployees_RequestDeleteUnknown(t *testing.T) {
	p, _ := newEmployeesPage(t)
	assert.ErrorIs(t, p.RequestDelete("EMP999"), ErrRecordNotLoaded)
	assert.ErrorIs(t, p.ConfirmDelete(context.Background()), modal.ErrNotConfirming)
}

func TestEmployees_SecondSubmitIsBusy(t *testing.T) {
	p, store := newEmployeesPage(t)
	p.OpenAdd()
	require.NoError(t, p.Modal().Update("", func(f *employee.CreateEmployeeRequest) {
		*f = employee.CreateEmployeeRequest{EmployeeID: "EMP004", FullName: "Jane", Email: "jane@company.com", Department: "Ops"}
	}))

	require.NoError(t, p.beginSubmit())
	assert.ErrorIs(t, p.Submit(context.Background()), ErrBusy)
	p.endSubmit()
	assert.Equal(t, 0, store.count("employees.create"))
}
