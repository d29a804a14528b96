package employee

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	created   []employee.Employee
	listErr   error
}

func newFakeEmployeeRepo(seed ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range seed {
		r.employees[e.EmployeeID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	e, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email *string) (bool, error) {
	for _, e := range r.employees {
		if employeeID != nil && e.EmployeeID == *employeeID {
			return true, nil
		}
		if email != nil && strings.EqualFold(e.Email, *email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.created = append(r.created, e)
	r.employees[e.EmployeeID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, employeeID string) error {
	if _, ok := r.employees[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, employeeID)
	return nil
}

var johnDoe = employee.Employee{EmployeeID: "EMP001", FullName: "John Doe", Email: "john.doe@company.com", Department: "Engineering"}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid request never reaches the repository", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		svc := NewEmployeeService(repo)

		_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{Email: "not-an-email"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("employee_id"))
		assert.True(t, verrs.Has("email"))
		assert.Empty(t, repo.created)
	})

	t.Run("duplicate employee ID", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepo(johnDoe))
		_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "EMP001", FullName: "Other", Email: "other@company.com", Department: "Sales",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
	})

	t.Run("duplicate email ignores case", func(t *testing.T) {
		svc := NewEmployeeService(newFakeEmployeeRepo(johnDoe))
		_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "EMP009", FullName: "Other", Email: "John.Doe@Company.com", Department: "Sales",
		})
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})

	t.Run("success stores trimmed values", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		svc := NewEmployeeService(repo)

		resp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			EmployeeID: " EMP004 ", FullName: " Alice Brown ", Email: "alice@company.com ", Department: "HR",
		})
		require.NoError(t, err)
		assert.Equal(t, "EMP004", resp.EmployeeID)
		assert.Equal(t, "Employee created successfully", resp.Message)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "Alice Brown", repo.created[0].FullName)
		assert.Equal(t, "alice@company.com", repo.created[0].Email)
	})
}

func TestGetAndDeleteEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo(johnDoe))

	got, err := svc.GetEmployee(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.FullName)

	_, err = svc.GetEmployee(ctx, "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, svc.DeleteEmployee(ctx, "EMP001"))
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, "EMP001"), employee.ErrEmployeeNotFound)
}

func TestListEmployees_WrapsRepositoryError(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.listErr = errors.New("connection reset")
	svc := NewEmployeeService(repo)

	_, err := svc.ListEmployees(context.Background())
	assert.ErrorContains(t, err, "failed to list employees")
	assert.ErrorIs(t, err, repo.listErr)
}
