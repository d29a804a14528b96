// Package console is a line-oriented front end over the page controllers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/app/listview"
	"github.com/cmlabs-hris/hrms-lite/internal/app/page"
	"github.com/cmlabs-hris/hrms-lite/internal/app/session"
	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNotAllowed     = errors.New("command not available in this view")
	ErrUsage          = errors.New("invalid arguments")
	ErrNoForm         = errors.New("no form is open on this screen")
)

type screen int

const (
	screenNone screen = iota
	screenDashboard
	screenEmployees
	screenAttendance
	screenLeaves
	screenHome
)

type mountable interface {
	Mount(ctx context.Context) error
	Unmount()
	DismissError()
}

// Console reads commands from in and renders the active screen to out.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	session *session.Session
	logger  *slog.Logger
	opts    []page.Option

	// lines is fed by a single reader goroutine so prompts can also wait
	// on ctx. readErr is set before lines is closed.
	lines     chan string
	readErr   error
	startRead sync.Once

	current    screen
	dashboard  *page.Dashboard
	employees  *page.Employees
	attendance *page.Attendance
	leaves     *page.Leaves
	home       *page.MyHome
}

func New(api *client.Client, in io.Reader, out io.Writer, logger *slog.Logger, opts ...page.Option) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	opts = append([]page.Option{page.WithLogger(logger)}, opts...)
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		session: session.New(api, logger),
		logger:  logger,
		opts:    opts,
		lines:   make(chan string),
	}
}

// Run executes commands until quit, end of input or cancellation of ctx.
// The session is logged out on every exit path.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "HRMS Lite. Type 'help' for commands.")
	for {
		if err := ctx.Err(); err != nil {
			c.shutdown(ctx)
			return err
		}
		line, ok := c.prompt(ctx, c.promptText())
		if !ok {
			c.shutdown(ctx)
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.readErr
		}
		quit, err := c.Execute(ctx, line)
		if err != nil {
			c.printErr(err)
		}
		if quit {
			c.shutdown(ctx)
			return nil
		}
	}
}

func (c *Console) promptText() string {
	switch c.session.View() {
	case session.ViewAdmin:
		return "hrms(admin)> "
	case session.ViewEmployee:
		return "hrms> "
	default:
		return "hrms(login)> "
	}
}

func (c *Console) readLines() {
	for c.in.Scan() {
		c.lines <- c.in.Text()
	}
	c.readErr = c.in.Err()
	close(c.lines)
}

// prompt reads one line. It reports false at end of input or when ctx is
// done.
func (c *Console) prompt(ctx context.Context, text string) (string, bool) {
	c.startRead.Do(func() { go c.readLines() })
	fmt.Fprint(c.out, text)
	select {
	case line, ok := <-c.lines:
		if !ok {
			fmt.Fprintln(c.out)
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", false
	}
}

// Execute runs one command line and reports whether the console should exit.
func (c *Console) Execute(ctx context.Context, line string) (bool, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false, nil
	}

	name, args := resolve(words)
	cmd, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, words[0])
	}
	if !cmd.allowed(c.session.View()) {
		return false, fmt.Errorf("%w: %s", ErrNotAllowed, name)
	}
	if name == "quit" {
		return true, nil
	}
	return false, cmd.run(c, ctx, args)
}

func resolve(words []string) (string, []string) {
	if len(words) > 1 {
		if _, ok := commands[words[0]+" "+words[1]]; ok {
			return words[0] + " " + words[1], words[2:]
		}
	}
	return words[0], words[1:]
}

const logoutTimeout = 5 * time.Second

// shutdown logs out even when ctx is already cancelled.
func (c *Console) shutdown(ctx context.Context) {
	c.unmount()
	if c.session.View() == session.ViewLogin {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
	defer cancel()
	c.session.Logout(ctx)
}

func (c *Console) active() mountable {
	switch c.current {
	case screenDashboard:
		return c.dashboard
	case screenEmployees:
		return c.employees
	case screenAttendance:
		return c.attendance
	case screenLeaves:
		return c.leaves
	case screenHome:
		return c.home
	}
	return nil
}

func (c *Console) unmount() {
	if p := c.active(); p != nil {
		p.Unmount()
	}
	c.current = screenNone
}

// show switches to s, loads it and renders it. Load failures land on the
// page banner.
func (c *Console) show(ctx context.Context, s screen) error {
	c.showQuiet(ctx, s)
	c.render()
	return nil
}

func (c *Console) buildPages() error {
	api, err := c.session.Client()
	if err != nil {
		return err
	}
	if c.session.IsAdmin() {
		c.dashboard = page.NewDashboard(api.Stats, api.Attendance, c.opts...)
		c.employees = page.NewEmployees(api.Employees, c.opts...)
		c.attendance = page.NewAttendance(api.Attendance, api.Employees, c.opts...)
		c.leaves = page.NewLeaves(api.Leaves, api.Users, c.opts...)
		return nil
	}
	u, _ := c.session.User()
	c.home = page.NewMyHome(u, api.Leaves, api.Attendance, c.opts...)
	return nil
}

func (c *Console) dropPages() {
	c.unmount()
	c.dashboard, c.employees, c.attendance, c.leaves, c.home = nil, nil, nil, nil, nil
}

// report prints errors that no banner or form already shows.
func (c *Console) report(err error) error {
	var reqErr *client.RequestError
	var verrs validator.ValidationErrors
	switch {
	case err == nil, errors.Is(err, listview.ErrSuperseded), errors.As(err, &reqErr):
		return nil
	case errors.As(err, &verrs) && c.formOpen():
		return nil
	}
	return err
}

type command struct {
	usage string
	help  string
	views []session.View
	run   func(c *Console, ctx context.Context, args []string) error
}

func (cmd command) allowed(v session.View) bool {
	for _, allowed := range cmd.views {
		if allowed == v {
			return true
		}
	}
	return false
}

var (
	anyone       = []session.View{session.ViewLogin, session.ViewAdmin, session.ViewEmployee}
	loggedIn     = []session.View{session.ViewAdmin, session.ViewEmployee}
	admin        = []session.View{session.ViewAdmin}
	employeeView = []session.View{session.ViewEmployee}
	guest        = []session.View{session.ViewLogin}
)

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":              {"help", "list available commands", anyone, (*Console).cmdHelp},
		"quit":              {"quit", "leave the console", anyone, nil},
		"login":             {"login [email]", "sign in", guest, (*Console).cmdLogin},
		"logout":            {"logout", "sign out", loggedIn, (*Console).cmdLogout},
		"dashboard":         {"dashboard", "attendance overview", admin, (*Console).cmdDashboard},
		"employees":         {"employees", "list employees", admin, (*Console).cmdEmployees},
		"employee add":      {"employee add", "add an employee", admin, (*Console).cmdEmployeeAdd},
		"employee delete":   {"employee delete <employee_id>", "delete an employee and its attendance", admin, (*Console).cmdEmployeeDelete},
		"attendance":        {"attendance", "list attendance records", admin, (*Console).cmdAttendance},
		"attendance filter": {"attendance filter [employee=<id>] [date=<YYYY-MM-DD>]", "narrow the attendance list", admin, (*Console).cmdAttendanceFilter},
		"attendance clear":  {"attendance clear", "remove the attendance filter", admin, (*Console).cmdAttendanceClear},
		"attendance add":    {"attendance add", "mark attendance", admin, (*Console).cmdAttendanceAdd},
		"attendance delete": {"attendance delete <id>", "delete an attendance record", admin, (*Console).cmdAttendanceDelete},
		"attendance export": {"attendance export <file.xlsx>", "save the listed records as a spreadsheet", admin, (*Console).cmdAttendanceExport},
		"leaves":            {"leaves", "list leave requests", admin, (*Console).cmdLeaves},
		"leave approve":     {"leave approve <id>", "approve a pending leave request", admin, (*Console).cmdLeaveApprove},
		"leave reject":      {"leave reject <id>", "reject a pending leave request", admin, (*Console).cmdLeaveReject},
		"home":              {"home", "your attendance and leave", employeeView, (*Console).cmdHome},
		"leave request":     {"leave request", "request leave", employeeView, (*Console).cmdLeaveRequest},
		"set":               {"set <field>=<value>...", "edit the open form", loggedIn, (*Console).cmdSet},
		"submit":            {"submit", "submit the open form", loggedIn, (*Console).cmdSubmit},
		"confirm":           {"confirm", "confirm the pending delete", admin, (*Console).cmdConfirm},
		"cancel":            {"cancel", "close the open form or confirmation", loggedIn, (*Console).cmdCancel},
		"dismiss":           {"dismiss", "hide the error banner", loggedIn, (*Console).cmdDismiss},
	}
}

func (c *Console) cmdHelp(ctx context.Context, args []string) error {
	view := c.session.View()
	var lines []string
	for _, cmd := range commands {
		if cmd.allowed(view) {
			lines = append(lines, fmt.Sprintf("  %-55s %s", cmd.usage, cmd.help))
		}
	}
	sort.Strings(lines)
	fmt.Fprintln(c.out, strings.Join(lines, "\n"))
	return nil
}
