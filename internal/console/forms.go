package console

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/app/modal"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
)

// formField binds one form input to its field name in validation errors.
type formField[F any] struct {
	name  string
	label string
	get   func(F) string
	set   func(*F, string)
}

var employeeFields = []formField[employee.CreateEmployeeRequest]{
	{"employee_id", "Employee ID",
		func(f employee.CreateEmployeeRequest) string { return f.EmployeeID },
		func(f *employee.CreateEmployeeRequest, v string) { f.EmployeeID = v }},
	{"full_name", "Full Name",
		func(f employee.CreateEmployeeRequest) string { return f.FullName },
		func(f *employee.CreateEmployeeRequest, v string) { f.FullName = v }},
	{"email", "Email",
		func(f employee.CreateEmployeeRequest) string { return f.Email },
		func(f *employee.CreateEmployeeRequest, v string) { f.Email = v }},
	{"department", "Department",
		func(f employee.CreateEmployeeRequest) string { return f.Department },
		func(f *employee.CreateEmployeeRequest, v string) { f.Department = v }},
}

var attendanceFields = []formField[attendance.CreateAttendanceRequest]{
	{"employee_id", "Employee ID",
		func(f attendance.CreateAttendanceRequest) string { return f.EmployeeID },
		func(f *attendance.CreateAttendanceRequest, v string) { f.EmployeeID = v }},
	{"date", "Date (YYYY-MM-DD)",
		func(f attendance.CreateAttendanceRequest) string { return f.Date },
		func(f *attendance.CreateAttendanceRequest, v string) { f.Date = v }},
	{"status", "Status (Present/Absent)",
		func(f attendance.CreateAttendanceRequest) string { return f.Status },
		func(f *attendance.CreateAttendanceRequest, v string) { f.Status = v }},
}

var leaveFields = []formField[leave.CreateLeaveRequest]{
	{"leave_type", "Leave Type",
		func(f leave.CreateLeaveRequest) string { return f.LeaveType },
		func(f *leave.CreateLeaveRequest, v string) { f.LeaveType = v }},
	{"start_date", "Start Date (YYYY-MM-DD)",
		func(f leave.CreateLeaveRequest) string { return f.StartDate },
		func(f *leave.CreateLeaveRequest, v string) { f.StartDate = v }},
	{"end_date", "End Date (YYYY-MM-DD)",
		func(f leave.CreateLeaveRequest) string { return f.EndDate },
		func(f *leave.CreateLeaveRequest, v string) { f.EndDate = v }},
	{"reason", "Reason (optional)",
		func(f leave.CreateLeaveRequest) string {
			if f.Reason == nil {
				return ""
			}
			return *f.Reason
		},
		func(f *leave.CreateLeaveRequest, v string) {
			if v == "" {
				f.Reason = nil
				return
			}
			f.Reason = &v
		}},
}

// fillForm prompts for every field of the open form. An empty answer keeps
// the current value.
func fillForm[F, T any](ctx context.Context, c *Console, m *modal.Controller[F, T], fields []formField[F]) error {
	for _, field := range fields {
		form, err := m.Form()
		if err != nil {
			return err
		}
		label := field.label
		if current := field.get(form); current != "" {
			label = fmt.Sprintf("%s [%s]", label, current)
		}
		value, ok := c.prompt(ctx, label+": ")
		if !ok {
			m.Close()
			return nil
		}
		if value == "" {
			continue
		}
		if err := m.Update(field.name, func(f *F) { field.set(f, value) }); err != nil {
			return err
		}
	}
	return nil
}

func setFields[F, T any](m *modal.Controller[F, T], fields []formField[F], values map[string]string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: set <field>=<value>", ErrUsage)
	}
	byName := make(map[string]formField[F], len(fields))
	for _, f := range fields {
		byName[f.name] = f
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		field, ok := byName[k]
		if !ok {
			return fmt.Errorf("%w: unknown field %q (have %s)", ErrUsage, k, fieldNames(fields))
		}
		value := strings.TrimSpace(values[k])
		if err := m.Update(field.name, func(f *F) { field.set(f, value) }); err != nil {
			if errors.Is(err, modal.ErrNotOpen) {
				return ErrNoForm
			}
			return err
		}
	}
	return nil
}

func fieldNames[F any](fields []formField[F]) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return strings.Join(names, ", ")
}
