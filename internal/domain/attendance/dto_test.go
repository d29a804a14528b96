package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAttendanceRequest_Validate(t *testing.T) {
	req := CreateAttendanceRequest{EmployeeID: "EMP001", Date: "2024-02-01", Status: "Present"}
	assert.NoError(t, req.Validate())
}

func TestCreateAttendanceRequest_Validate_BlankFields(t *testing.T) {
	req := CreateAttendanceRequest{Date: "2024-02-01"}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Equal(t, map[string]string{
		"employee_id": "Please select an employee",
		"status":      "Status is required",
	}, errs.ToMap())
}

func TestCreateAttendanceRequest_Validate_BadValues(t *testing.T) {
	req := CreateAttendanceRequest{EmployeeID: "EMP001", Date: "01/02/2024", Status: "Late"}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.True(t, errs.Has("date"))
	assert.True(t, errs.Has("status"))
	assert.False(t, errs.Has("employee_id"))
}

func TestNewCreateAttendanceRequest_Defaults(t *testing.T) {
	now := time.Date(2024, 2, 3, 15, 4, 5, 0, time.UTC)
	req := NewCreateAttendanceRequest(now)
	assert.Equal(t, "", req.EmployeeID)
	assert.Equal(t, "2024-02-03", req.Date)
	assert.Equal(t, "Present", req.Status)
}

func TestToResponse(t *testing.T) {
	name := "John Doe"
	a := Attendance{
		ID:         7,
		EmployeeID: "EMP001",
		Date:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:     StatusAbsent,
		FullName:   &name,
	}
	resp := ToResponse(a)
	assert.Equal(t, "2024-02-01", resp.Date)
	assert.Equal(t, "Absent", resp.Status)
	assert.Equal(t, "John Doe", resp.FullName)
	assert.Empty(t, resp.Department)
}

func TestNewFilter(t *testing.T) {
	f := NewFilter("EMP001", "  ")
	require.NotNil(t, f.EmployeeID)
	assert.Equal(t, "EMP001", *f.EmployeeID)
	assert.Nil(t, f.Date)
	assert.False(t, f.IsEmpty())

	assert.True(t, NewFilter("", "").IsEmpty())
}
