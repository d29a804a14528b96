package page

import (
	"context"
	"errors"
	"strconv"

	"github.com/cmlabs-hris/hrms-lite/internal/app/listview"
	"github.com/cmlabs-hris/hrms-lite/internal/app/modal"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

var ErrNoEmployeeRecord = errors.New("your account is not linked to an employee record")

const DefaultLeaveType = "Annual"

// MyHome is the employee's own screen: their leave requests and attendance.
type MyHome struct {
	*base
	user       user.UserResponse
	api        LeaveAPI
	leaves     *listview.List[leave.LeaveRequestResponse, noFilter]
	attendance *listview.List[attendance.AttendanceResponse, noFilter]
	modal      *modal.Controller[leave.CreateLeaveRequest, struct{}]
}

type MyHomeSnapshot struct {
	Header
	User          user.UserResponse
	Leaves        []leave.LeaveRequestResponse
	Attendance    []attendance.AttendanceResponse
	LeaveRequests int
	Approved      int
	DaysPresent   int
	Modal         ModalView[leave.CreateLeaveRequest, struct{}]
}

// NewMyHome builds the screen for u. Leave requests are scoped by user id and
// attendance by the linked employee id; an unlinked account has none.
func NewMyHome(u user.UserResponse, leaves LeaveAPI, records AttendanceAPI, opts ...Option) *MyHome {
	userID := strconv.FormatInt(u.ID, 10)
	p := &MyHome{
		base: newBase("my_home", opts),
		user: u,
		api:  leaves,
		leaves: listview.New(func(ctx context.Context, _ noFilter) ([]leave.LeaveRequestResponse, error) {
			return leaves.List(ctx, leave.LeaveRequestFilter{UserID: &userID})
		}),
		attendance: listview.New(func(ctx context.Context, _ noFilter) ([]attendance.AttendanceResponse, error) {
			if u.EmployeeID == nil {
				return nil, nil
			}
			return records.List(ctx, attendance.NewFilter(*u.EmployeeID, ""))
		}),
	}
	p.modal = modal.New[leave.CreateLeaveRequest, struct{}](p.leaveDefaults)
	return p
}

func (p *MyHome) leaveDefaults() leave.CreateLeaveRequest {
	today := p.now().Format(validator.DateLayout)
	req := leave.CreateLeaveRequest{LeaveType: DefaultLeaveType, StartDate: today, EndDate: today}
	if p.user.EmployeeID != nil {
		req.EmployeeID = *p.user.EmployeeID
	}
	return req
}

func (p *MyHome) Mount(ctx context.Context) error {
	return p.Reload(ctx)
}

func (p *MyHome) Reload(ctx context.Context) error {
	return p.load(ctx, listStep(p.leaves), listStep(p.attendance))
}

func (p *MyHome) Modal() *modal.Controller[leave.CreateLeaveRequest, struct{}] {
	return p.modal
}

// OpenLeaveRequest opens the leave form for the linked employee.
func (p *MyHome) OpenLeaveRequest() error {
	if p.user.EmployeeID == nil {
		return ErrNoEmployeeRecord
	}
	p.modal.OpenAdd()
	return nil
}

func (p *MyHome) Submit(ctx context.Context) error {
	form, err := p.modal.Form()
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		failForm(p.modal, err)
		return err
	}

	if err := p.beginSubmit(); err != nil {
		return err
	}
	_, err = p.api.Create(ctx, form)
	p.endSubmit()
	if err != nil {
		failForm(p.modal, err)
		p.report(err)
		return err
	}

	p.modal.Close()
	p.banners.Success("Leave request submitted successfully!")
	return p.Reload(ctx)
}

func (p *MyHome) Cancel() {
	p.modal.Close()
}

func (p *MyHome) Snapshot() MyHomeSnapshot {
	leaves := p.leaves.Items()
	records := p.attendance.Items()

	approved := 0
	for _, l := range leaves {
		if leave.LeaveRequestStatus(l.Status) == leave.LeaveRequestStatusApproved {
			approved++
		}
	}
	present := 0
	for _, r := range records {
		if attendance.Status(r.Status) == attendance.StatusPresent {
			present++
		}
	}

	return MyHomeSnapshot{
		Header:        p.header(),
		User:          p.user,
		Leaves:        leaves,
		Attendance:    records,
		LeaveRequests: len(leaves),
		Approved:      approved,
		DaysPresent:   present,
		Modal:         viewModal(p.modal),
	}
}
