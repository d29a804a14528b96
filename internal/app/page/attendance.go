package page

import (
	"context"
	"slices"

	"github.com/cmlabs-hris/hrms-lite/internal/app/listview"
	"github.com/cmlabs-hris/hrms-lite/internal/app/modal"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type Attendance struct {
	*base
	api       AttendanceAPI
	records   *listview.List[attendance.AttendanceResponse, attendance.AttendanceFilter]
	employees *listview.List[employee.EmployeeResponse, noFilter]
	modal     *modal.Controller[attendance.CreateAttendanceRequest, attendance.AttendanceResponse]
}

type AttendanceSnapshot struct {
	Header
	Filter    attendance.AttendanceFilter
	Records   []attendance.AttendanceResponse
	Employees []employee.EmployeeResponse
	Modal     ModalView[attendance.CreateAttendanceRequest, attendance.AttendanceResponse]
}

func NewAttendance(api AttendanceAPI, employees EmployeeAPI, opts ...Option) *Attendance {
	p := &Attendance{
		base: newBase("attendance", opts),
		api:  api,
		records: listview.New(func(ctx context.Context, f attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
			return api.List(ctx, f)
		}),
		employees: listview.New(func(ctx context.Context, _ noFilter) ([]employee.EmployeeResponse, error) {
			return employees.List(ctx)
		}),
	}
	p.modal = modal.New[attendance.CreateAttendanceRequest, attendance.AttendanceResponse](func() attendance.CreateAttendanceRequest {
		return attendance.NewCreateAttendanceRequest(p.now())
	})
	return p
}

func (p *Attendance) Mount(ctx context.Context) error {
	return p.Reload(ctx)
}

// Reload fetches the records under the current filter together with the
// employee list.
func (p *Attendance) Reload(ctx context.Context) error {
	return p.load(ctx, listStep(p.records), listStep(p.employees))
}

// SetFilter narrows the records to an employee and/or a date. Blank values
// are not applied. The employee must be one of the loaded employees.
func (p *Attendance) SetFilter(ctx context.Context, employeeID, date string) error {
	filter := attendance.NewFilter(employeeID, date)

	var errs validator.ValidationErrors
	if filter.EmployeeID != nil && !p.hasEmployee(*filter.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Please select an employee"})
	}
	if filter.Date != nil {
		if _, ok := validator.IsValidDate(*filter.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	err := p.records.SetFilter(ctx, filter)
	p.report(err)
	return err
}

func (p *Attendance) ClearFilter(ctx context.Context) error {
	err := p.records.ClearFilter(ctx)
	p.report(err)
	return err
}

func (p *Attendance) Filter() attendance.AttendanceFilter {
	return p.records.Filter()
}

func (p *Attendance) Modal() *modal.Controller[attendance.CreateAttendanceRequest, attendance.AttendanceResponse] {
	return p.modal
}

// OpenAdd opens the form with today's date and Present preselected.
func (p *Attendance) OpenAdd() {
	p.modal.OpenAdd()
}

func (p *Attendance) Submit(ctx context.Context) error {
	form, err := p.modal.Form()
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		failForm(p.modal, err)
		return err
	}
	if !p.hasEmployee(form.EmployeeID) {
		err := validator.ValidationErrors{{Field: "employee_id", Message: "Please select an employee"}}
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
	p.banners.Success("Attendance marked successfully!")
	return p.Reload(ctx)
}

func (p *Attendance) RequestDelete(id int64) error {
	for _, r := range p.records.Items() {
		if r.ID == id {
			p.modal.ConfirmDelete(r)
			return nil
		}
	}
	return ErrRecordNotLoaded
}

func (p *Attendance) ConfirmDelete(ctx context.Context) error {
	target, err := p.modal.Target()
	if err != nil {
		return err
	}
	if err := p.beginSubmit(); err != nil {
		return err
	}
	err = p.api.Delete(ctx, target.ID)
	p.endSubmit()
	p.modal.Close()
	if err != nil {
		p.report(err)
		return err
	}

	p.banners.Success("Attendance record deleted successfully!")
	return p.Reload(ctx)
}

func (p *Attendance) Cancel() {
	p.modal.Close()
}

func (p *Attendance) Records() []attendance.AttendanceResponse {
	return p.records.Items()
}

func (p *Attendance) Employees() []employee.EmployeeResponse {
	return p.employees.Items()
}

func (p *Attendance) Snapshot() AttendanceSnapshot {
	return AttendanceSnapshot{
		Header:    p.header(),
		Filter:    p.records.Filter(),
		Records:   p.records.Items(),
		Employees: p.employees.Items(),
		Modal:     viewModal(p.modal),
	}
}

func (p *Attendance) hasEmployee(employeeID string) bool {
	return slices.ContainsFunc(p.employees.Items(), func(e employee.EmployeeResponse) bool {
		return e.EmployeeID == employeeID
	})
}
