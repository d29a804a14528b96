package postgresql_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestEmployeeRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	_, err := repo.Create(ctx, employee.Employee{EmployeeID: "EMP001", FullName: "John Doe", Email: "john.doe@company.com", Department: "Engineering"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP001", FullName: "Dup", Email: "dup@company.com", Department: "Ops"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP002", FullName: "Dup", Email: "john.doe@company.com", Department: "Ops"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	email := "JOHN.DOE@company.com"
	exists, err := repo.ExistsByEmployeeIDOrEmail(ctx, nil, &email)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.GetByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.FullName)

	require.NoError(t, repo.Delete(ctx, "EMP001"))
	assert.ErrorIs(t, repo.Delete(ctx, "EMP001"), employee.ErrEmployeeNotFound)
	_, err = repo.GetByEmployeeID(ctx, "EMP001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	for _, id := range []string{"EMP001", "EMP002"} {
		_, err := employees.Create(ctx, employee.Employee{EmployeeID: id, FullName: id, Email: id + "@company.com", Department: "Eng"})
		require.NoError(t, err)
	}

	_, err := repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP001", Date: mustDate(t, "2024-02-01"), Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP001", Date: mustDate(t, "2024-02-02"), Status: attendance.StatusAbsent})
	require.NoError(t, err)
	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP002", Date: mustDate(t, "2024-02-01"), Status: attendance.StatusPresent})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP001", Date: mustDate(t, "2024-02-01"), Status: attendance.StatusAbsent})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)
	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP404", Date: mustDate(t, "2024-02-01"), Status: attendance.StatusAbsent})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	all, err := repo.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-02-02", all[0].Date.Format("2006-01-02"))
	require.NotNil(t, all[0].FullName)

	byEmployee, err := repo.List(ctx, attendance.NewFilter("EMP001", ""))
	require.NoError(t, err)
	assert.Len(t, byEmployee, 2)

	byDate, err := repo.List(ctx, attendance.NewFilter("", "2024-02-01"))
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	require.NoError(t, employees.Delete(ctx, "EMP001"))
	remaining, err := repo.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)

	require.NoError(t, repo.Delete(ctx, remaining[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, remaining[0].ID), attendance.ErrAttendanceNotFound)
}

func TestLeaveRequestRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	_, err := postgresql.NewEmployeeRepository(setup.DB).Create(ctx, employee.Employee{EmployeeID: "EMP001", FullName: "John Doe", Email: "john.doe@company.com", Department: "Eng"})
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("john123"), bcrypt.MinCost)
	require.NoError(t, err)
	empID := "EMP001"
	u, err := postgresql.NewUserRepository(setup.DB).Upsert(ctx, user.User{
		Email: "john.doe@company.com", FullName: "John Doe", PasswordHash: string(hash), Role: user.RoleEmployee, EmployeeID: &empID,
	})
	require.NoError(t, err)

	repo := postgresql.NewLeaveRequestRepository(setup.DB)
	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: "EMP001",
		LeaveType:  "Annual",
		StartDate:  mustDate(t, "2024-02-05"),
		EndDate:    mustDate(t, "2024-02-06"),
		Status:     leave.LeaveRequestStatusPending,
	})
	require.NoError(t, err)
	require.NotNil(t, created.EmployeeName)
	assert.Equal(t, "John Doe", *created.EmployeeName)

	userID := strconv.FormatInt(u.ID, 10)
	mine, err := repo.List(ctx, leave.LeaveRequestFilter{UserID: &userID})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	other := "999"
	none, err := repo.List(ctx, leave.LeaveRequestFilter{UserID: &other})
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repo.UpdateStatus(ctx, created.ID, leave.LeaveRequestStatusPending, leave.LeaveRequestStatusApproved))
	err = repo.UpdateStatus(ctx, created.ID, leave.LeaveRequestStatusPending, leave.LeaveRequestStatusRejected)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	err = repo.UpdateStatus(ctx, 9999, leave.LeaveRequestStatusPending, leave.LeaveRequestStatusRejected)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestSeedDemoData(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, postgresql.SeedDemoData(ctx, setup.DB))
	require.NoError(t, postgresql.SeedDemoData(ctx, setup.DB))

	users := postgresql.NewUserRepository(setup.DB)
	admin, err := users.GetByEmail(ctx, "admin@company.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	stats, err := postgresql.NewDashboardRepository(setup.DB).GetEmployeeStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "Bob Johnson", stats[0].FullName)
	assert.Equal(t, int64(0), stats[0].Total)
	assert.Equal(t, "Jane Smith", stats[1].FullName)
	assert.Equal(t, int64(1), stats[1].Present)
	assert.Equal(t, int64(1), stats[1].Absent)
}
