package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/app/session"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

func (c *Console) cmdLogin(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var ok bool
		if email, ok = c.prompt(ctx, "Email: "); !ok {
			return nil
		}
	}
	password, ok := c.prompt(ctx, "Password: ")
	if !ok {
		return nil
	}

	u, err := c.session.Login(ctx, email, password)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.printFieldErrors(verrs.ToMap())
			return nil
		}
		return err
	}

	if err := c.buildPages(); err != nil {
		return err
	}
	c.successf("Welcome, %s", u.FullName)
	if c.session.View() == session.ViewAdmin {
		return c.show(ctx, screenDashboard)
	}
	return c.show(ctx, screenHome)
}

func (c *Console) cmdLogout(ctx context.Context, args []string) error {
	c.dropPages()
	c.session.Logout(ctx)
	fmt.Fprintln(c.out, "Signed out.")
	return nil
}

func (c *Console) cmdDashboard(ctx context.Context, args []string) error {
	return c.show(ctx, screenDashboard)
}

func (c *Console) cmdEmployees(ctx context.Context, args []string) error {
	return c.show(ctx, screenEmployees)
}

func (c *Console) cmdEmployeeAdd(ctx context.Context, args []string) error {
	c.showQuiet(ctx, screenEmployees)
	c.employees.OpenAdd()
	if err := fillForm(ctx, c, c.employees.Modal(), employeeFields); err != nil {
		return err
	}
	return c.cmdSubmit(ctx, nil)
}

func (c *Console) cmdEmployeeDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: employee delete <employee_id>", ErrUsage)
	}
	c.showQuiet(ctx, screenEmployees)
	if err := c.employees.RequestDelete(args[0]); err != nil {
		return err
	}
	c.render()
	return nil
}

func (c *Console) cmdAttendance(ctx context.Context, args []string) error {
	return c.show(ctx, screenAttendance)
}

func (c *Console) cmdAttendanceFilter(ctx context.Context, args []string) error {
	values, err := parseAssignments(args)
	if err != nil {
		return err
	}
	for key := range values {
		if key != "employee" && key != "employee_id" && key != "date" {
			return fmt.Errorf("%w: unknown filter %q", ErrUsage, key)
		}
	}
	employeeID := values["employee"]
	if v, ok := values["employee_id"]; ok {
		employeeID = v
	}

	c.showQuiet(ctx, screenAttendance)
	if err := c.attendance.SetFilter(ctx, employeeID, values["date"]); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.printFieldErrors(verrs.ToMap())
			return nil
		}
		if err := c.report(err); err != nil {
			return err
		}
	}
	c.render()
	return nil
}

func (c *Console) cmdAttendanceClear(ctx context.Context, args []string) error {
	c.showQuiet(ctx, screenAttendance)
	if err := c.report(c.attendance.ClearFilter(ctx)); err != nil {
		return err
	}
	c.render()
	return nil
}

func (c *Console) cmdAttendanceAdd(ctx context.Context, args []string) error {
	c.showQuiet(ctx, screenAttendance)
	c.attendance.OpenAdd()
	c.printEmployeeChoices()
	if err := fillForm(ctx, c, c.attendance.Modal(), attendanceFields); err != nil {
		return err
	}
	return c.cmdSubmit(ctx, nil)
}

func (c *Console) cmdAttendanceDelete(ctx context.Context, args []string) error {
	id, err := parseID(args, "attendance delete <id>")
	if err != nil {
		return err
	}
	c.showQuiet(ctx, screenAttendance)
	if err := c.attendance.RequestDelete(id); err != nil {
		return err
	}
	c.render()
	return nil
}

func (c *Console) cmdAttendanceExport(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: attendance export <file.xlsx>", ErrUsage)
	}
	c.showQuiet(ctx, screenAttendance)
	records := c.attendance.Records()
	if err := ExportAttendance(records, args[0]); err != nil {
		return err
	}
	c.successf("Exported %d records to %s", len(records), args[0])
	return nil
}

func (c *Console) cmdLeaves(ctx context.Context, args []string) error {
	return c.show(ctx, screenLeaves)
}

func (c *Console) cmdLeaveApprove(ctx context.Context, args []string) error {
	id, err := parseID(args, "leave approve <id>")
	if err != nil {
		return err
	}
	c.showQuiet(ctx, screenLeaves)
	if err := c.report(c.leaves.Approve(ctx, id)); err != nil {
		return err
	}
	c.render()
	return nil
}

func (c *Console) cmdLeaveReject(ctx context.Context, args []string) error {
	id, err := parseID(args, "leave reject <id>")
	if err != nil {
		return err
	}
	c.showQuiet(ctx, screenLeaves)
	if err := c.report(c.leaves.Reject(ctx, id)); err != nil {
		return err
	}
	c.render()
	return nil
}

func (c *Console) cmdHome(ctx context.Context, args []string) error {
	return c.show(ctx, screenHome)
}

func (c *Console) cmdLeaveRequest(ctx context.Context, args []string) error {
	c.showQuiet(ctx, screenHome)
	if err := c.home.OpenLeaveRequest(); err != nil {
		return err
	}
	if err := fillForm(ctx, c, c.home.Modal(), leaveFields); err != nil {
		return err
	}
	return c.cmdSubmit(ctx, nil)
}

func (c *Console) cmdSet(ctx context.Context, args []string) error {
	values, err := parseAssignments(args)
	if err != nil {
		return err
	}
	switch c.current {
	case screenEmployees:
		err = setFields(c.employees.Modal(), employeeFields, values)
	case screenAttendance:
		err = setFields(c.attendance.Modal(), attendanceFields, values)
	case screenHome:
		err = setFields(c.home.Modal(), leaveFields, values)
	default:
		err = ErrNoForm
	}
	if err != nil {
		return err
	}
	c.render()
	return nil
}

func (c *Console) cmdSubmit(ctx context.Context, args []string) error {
	var err error
	switch c.current {
	case screenEmployees:
		err = c.employees.Submit(ctx)
	case screenAttendance:
		err = c.attendance.Submit(ctx)
	case screenHome:
		err = c.home.Submit(ctx)
	default:
		return ErrNoForm
	}
	c.render()
	return c.report(err)
}

func (c *Console) cmdConfirm(ctx context.Context, args []string) error {
	var err error
	switch c.current {
	case screenEmployees:
		err = c.employees.ConfirmDelete(ctx)
	case screenAttendance:
		err = c.attendance.ConfirmDelete(ctx)
	default:
		return ErrNoForm
	}
	c.render()
	return c.report(err)
}

func (c *Console) cmdCancel(ctx context.Context, args []string) error {
	switch c.current {
	case screenEmployees:
		c.employees.Cancel()
	case screenAttendance:
		c.attendance.Cancel()
	case screenHome:
		c.home.Cancel()
	default:
		return ErrNoForm
	}
	c.render()
	return nil
}

func (c *Console) cmdDismiss(ctx context.Context, args []string) error {
	if p := c.active(); p != nil {
		p.DismissError()
	}
	c.render()
	return nil
}

// showQuiet switches screens without rendering, for commands that render
// once after they act.
func (c *Console) showQuiet(ctx context.Context, s screen) {
	if c.current == s {
		return
	}
	c.unmount()
	c.current = s
	if err := c.active().Mount(ctx); err != nil {
		c.logger.Debug("mount failed", "screen", s, "error", err)
	}
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a record id", ErrUsage, args[0])
	}
	return id, nil
}

// parseAssignments reads key=value words. A value runs until the next word
// containing "=", so names with spaces need no quoting.
func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string)
	var key string
	for _, arg := range args {
		if k, v, ok := strings.Cut(arg, "="); ok {
			key = strings.ToLower(k)
			values[key] = v
			continue
		}
		if key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrUsage, arg)
		}
		values[key] += " " + arg
	}
	return values, nil
}
