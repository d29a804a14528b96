package console

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/app/listview"
	"github.com/cmlabs-hris/hrms-lite/internal/app/modal"
	"github.com/cmlabs-hris/hrms-lite/internal/app/page"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	titleColor   = color.New(color.Bold)
	mutedColor   = color.New(color.Faint)
)

var employeeTable = listview.Table[employee.EmployeeResponse]{
	Columns: []listview.Column[employee.EmployeeResponse]{
		{Header: "EMPLOYEE ID", Cell: func(e employee.EmployeeResponse) string { return e.EmployeeID }},
		{Header: "NAME", Cell: func(e employee.EmployeeResponse) string { return e.FullName }},
		{Header: "EMAIL", Cell: func(e employee.EmployeeResponse) string { return e.Email }},
		{Header: "DEPARTMENT", Cell: func(e employee.EmployeeResponse) string { return e.Department }},
	},
	Empty: "No employees yet. Use 'employee add' to create one.",
}

var attendanceTable = listview.Table[attendance.AttendanceResponse]{
	Columns: []listview.Column[attendance.AttendanceResponse]{
		{Header: "ID", Cell: func(a attendance.AttendanceResponse) string { return strconv.FormatInt(a.ID, 10) }},
		{Header: "DATE", Cell: func(a attendance.AttendanceResponse) string { return a.Date }},
		{Header: "EMPLOYEE", Cell: func(a attendance.AttendanceResponse) string { return a.EmployeeID }},
		{Header: "NAME", Cell: func(a attendance.AttendanceResponse) string { return a.FullName }},
		{Header: "DEPARTMENT", Cell: func(a attendance.AttendanceResponse) string { return a.Department }},
		{Header: "STATUS", Cell: func(a attendance.AttendanceResponse) string { return a.Status }},
	},
	Empty: "No attendance records found.",
}

var statsTable = listview.Table[dashboard.EmployeeStatResponse]{
	Columns: []listview.Column[dashboard.EmployeeStatResponse]{
		{Header: "EMPLOYEE ID", Cell: func(s dashboard.EmployeeStatResponse) string { return s.EmployeeID }},
		{Header: "NAME", Cell: func(s dashboard.EmployeeStatResponse) string { return s.FullName }},
		{Header: "DEPARTMENT", Cell: func(s dashboard.EmployeeStatResponse) string { return s.Department }},
		{Header: "PRESENT", Cell: func(s dashboard.EmployeeStatResponse) string { return strconv.FormatInt(s.TotalPresent, 10) }},
		{Header: "ABSENT", Cell: func(s dashboard.EmployeeStatResponse) string { return strconv.FormatInt(s.TotalAbsent, 10) }},
		{Header: "TOTAL", Cell: func(s dashboard.EmployeeStatResponse) string { return strconv.FormatInt(s.TotalRecords, 10) }},
	},
	Empty: "No employees yet.",
}

var leaveTable = listview.Table[leave.LeaveRequestResponse]{
	Columns: []listview.Column[leave.LeaveRequestResponse]{
		{Header: "ID", Cell: func(l leave.LeaveRequestResponse) string { return strconv.FormatInt(l.ID, 10) }},
		{Header: "EMPLOYEE", Cell: func(l leave.LeaveRequestResponse) string { return l.EmployeeID }},
		{Header: "NAME", Cell: func(l leave.LeaveRequestResponse) string { return l.FullName }},
		{Header: "TYPE", Cell: func(l leave.LeaveRequestResponse) string { return l.LeaveType }},
		{Header: "FROM", Cell: func(l leave.LeaveRequestResponse) string { return l.StartDate }},
		{Header: "TO", Cell: func(l leave.LeaveRequestResponse) string { return l.EndDate }},
		{Header: "STATUS", Cell: func(l leave.LeaveRequestResponse) string { return l.Status }},
		{Header: "ACTIONS", Cell: func(l leave.LeaveRequestResponse) string { return actions(l.Transitions()) }},
	},
	Empty: "No leave requests.",
}

func actions(next []leave.LeaveRequestStatus) string {
	if len(next) == 0 {
		return "-"
	}
	verbs := make([]string, len(next))
	for i, s := range next {
		switch s {
		case leave.LeaveRequestStatusApproved:
			verbs[i] = "approve"
		case leave.LeaveRequestStatusRejected:
			verbs[i] = "reject"
		default:
			verbs[i] = string(s)
		}
	}
	return strings.Join(verbs, "/")
}

func (c *Console) render() {
	switch c.current {
	case screenDashboard:
		c.renderDashboard(c.dashboard.Snapshot())
	case screenEmployees:
		c.renderEmployees(c.employees.Snapshot())
	case screenAttendance:
		c.renderAttendance(c.attendance.Snapshot())
	case screenLeaves:
		c.renderLeaves(c.leaves.Snapshot())
	case screenHome:
		c.renderHome(c.home.Snapshot())
	}
}

// renderHeader prints the banners and reports whether the body should follow.
func (c *Console) renderHeader(title string, h page.Header) bool {
	fmt.Fprintln(c.out)
	titleColor.Fprintln(c.out, title)
	if h.Success != "" {
		successColor.Fprintf(c.out, "✓ %s\n", h.Success)
	}
	if h.Error != "" {
		errorColor.Fprintf(c.out, "✗ %s (dismiss to hide)\n", h.Error)
	}
	switch h.Status {
	case page.StatusLoading:
		mutedColor.Fprintln(c.out, "Loading...")
		return false
	case page.StatusError:
		return false
	}
	return true
}

func (c *Console) renderDashboard(s page.DashboardSnapshot) {
	if !c.renderHeader("Dashboard", s.Header) {
		return
	}
	fmt.Fprintf(c.out, "Employees: %d  Present: %d  Absent: %d  Records: %d\n\n",
		s.Summary.TotalEmployees, s.Summary.TotalPresent, s.Summary.TotalAbsent, s.Summary.TotalRecords)
	_ = statsTable.Render(c.out, s.Stats)
	fmt.Fprintln(c.out)
	titleColor.Fprintln(c.out, "Recent attendance")
	_ = attendanceTable.Render(c.out, s.Recent)
}

func (c *Console) renderEmployees(s page.EmployeesSnapshot) {
	if !c.renderHeader(fmt.Sprintf("Employees (%d)", len(s.Employees)), s.Header) {
		return
	}
	_ = employeeTable.Render(c.out, s.Employees)

	switch s.Modal.State {
	case modal.Open:
		renderForm(c, "Add employee", employeeFields, s.Modal.Form, s.Modal.Errors)
	case modal.ConfirmingDelete:
		t := s.Modal.Target
		fmt.Fprintf(c.out, "\nDelete %s (%s)? This will also delete all attendance records for this employee.\n", t.FullName, t.EmployeeID)
		fmt.Fprintln(c.out, "Type 'confirm' to delete or 'cancel' to keep.")
	}
}

func (c *Console) renderAttendance(s page.AttendanceSnapshot) {
	if !c.renderHeader(fmt.Sprintf("Attendance (%d)", len(s.Records)), s.Header) {
		return
	}
	if !s.Filter.IsEmpty() {
		var parts []string
		if s.Filter.EmployeeID != nil {
			parts = append(parts, "employee="+*s.Filter.EmployeeID)
		}
		if s.Filter.Date != nil {
			parts = append(parts, "date="+*s.Filter.Date)
		}
		mutedColor.Fprintf(c.out, "Filter: %s ('attendance clear' to reset)\n", strings.Join(parts, " "))
	}
	_ = attendanceTable.Render(c.out, s.Records)

	switch s.Modal.State {
	case modal.Open:
		renderForm(c, "Mark attendance", attendanceFields, s.Modal.Form, s.Modal.Errors)
	case modal.ConfirmingDelete:
		t := s.Modal.Target
		fmt.Fprintf(c.out, "\nDelete the %s record of %s on %s?\n", t.Status, t.EmployeeID, t.Date)
		fmt.Fprintln(c.out, "Type 'confirm' to delete or 'cancel' to keep.")
	}
}

func (c *Console) renderLeaves(s page.LeavesSnapshot) {
	if !c.renderHeader("Leave requests", s.Header) {
		return
	}
	fmt.Fprintf(c.out, "Users: %d  Pending: %d\n\n", s.TotalUsers, s.PendingCount)
	_ = leaveTable.Render(c.out, s.Leaves)
}

func (c *Console) renderHome(s page.MyHomeSnapshot) {
	if !c.renderHeader(fmt.Sprintf("Welcome, %s", s.User.FullName), s.Header) {
		return
	}
	fmt.Fprintf(c.out, "Leave requests: %d  Approved: %d  Days present: %d\n\n", s.LeaveRequests, s.Approved, s.DaysPresent)
	titleColor.Fprintln(c.out, "My leave requests")
	_ = leaveTable.Render(c.out, s.Leaves)
	fmt.Fprintln(c.out)
	titleColor.Fprintln(c.out, "My attendance")
	_ = attendanceTable.Render(c.out, s.Attendance)

	if s.Modal.State == modal.Open {
		renderForm(c, "Request leave", leaveFields, s.Modal.Form, s.Modal.Errors)
	}
}

func renderForm[F any](c *Console, title string, fields []formField[F], form F, errs map[string]string) {
	fmt.Fprintln(c.out)
	titleColor.Fprintln(c.out, title)
	for _, f := range fields {
		fmt.Fprintf(c.out, "  %-12s %s\n", f.name, f.get(form))
		if msg, ok := errs[f.name]; ok {
			errorColor.Fprintf(c.out, "  %-12s %s\n", "", msg)
		}
	}
	fmt.Fprintln(c.out, "Use 'set <field>=<value>' then 'submit', or 'cancel'.")
}

func (c *Console) formOpen() bool {
	switch c.current {
	case screenEmployees:
		return c.employees.Modal().State() == modal.Open
	case screenAttendance:
		return c.attendance.Modal().State() == modal.Open
	case screenHome:
		return c.home.Modal().State() == modal.Open
	}
	return false
}

func (c *Console) printEmployeeChoices() {
	choices := c.attendance.Employees()
	if len(choices) == 0 {
		return
	}
	names := make([]string, len(choices))
	for i, e := range choices {
		names[i] = fmt.Sprintf("%s (%s)", e.EmployeeID, e.FullName)
	}
	mutedColor.Fprintf(c.out, "Employees: %s\n", strings.Join(names, ", "))
}

func (c *Console) printFieldErrors(fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		errorColor.Fprintf(c.out, "%s: %s\n", k, fields[k])
	}
}

func (c *Console) successf(format string, args ...any) {
	successColor.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) printErr(err error) {
	errorColor.Fprintf(c.out, "error: %v\n", err)
}
