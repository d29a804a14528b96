package page

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/app/listview"
	"github.com/cmlabs-hris/hrms-lite/internal/app/modal"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
)

type Employees struct {
	*base
	api       EmployeeAPI
	employees *listview.List[employee.EmployeeResponse, noFilter]
	modal     *modal.Controller[employee.CreateEmployeeRequest, employee.EmployeeResponse]
}

type EmployeesSnapshot struct {
	Header
	Employees []employee.EmployeeResponse
	Modal     ModalView[employee.CreateEmployeeRequest, employee.EmployeeResponse]
}

func NewEmployees(api EmployeeAPI, opts ...Option) *Employees {
	return &Employees{
		base: newBase("employees", opts),
		api:  api,
		employees: listview.New(func(ctx context.Context, _ noFilter) ([]employee.EmployeeResponse, error) {
			return api.List(ctx)
		}),
		modal: modal.New[employee.CreateEmployeeRequest, employee.EmployeeResponse](nil),
	}
}

func (p *Employees) Mount(ctx context.Context) error {
	return p.Reload(ctx)
}

func (p *Employees) Reload(ctx context.Context) error {
	return p.load(ctx, listStep(p.employees))
}

func (p *Employees) Modal() *modal.Controller[employee.CreateEmployeeRequest, employee.EmployeeResponse] {
	return p.modal
}

func (p *Employees) OpenAdd() {
	p.modal.OpenAdd()
}

// Submit validates the open form and creates the employee. The form stays
// open on any failure.
func (p *Employees) Submit(ctx context.Context) error {
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
	p.banners.Success("Employee added successfully!")
	return p.Reload(ctx)
}

// RequestDelete asks for confirmation before deleting a loaded employee.
func (p *Employees) RequestDelete(employeeID string) error {
	for _, e := range p.employees.Items() {
		if e.EmployeeID == employeeID {
			p.modal.ConfirmDelete(e)
			return nil
		}
	}
	return ErrRecordNotLoaded
}

func (p *Employees) ConfirmDelete(ctx context.Context) error {
	target, err := p.modal.Target()
	if err != nil {
		return err
	}
	if err := p.beginSubmit(); err != nil {
		return err
	}
	err = p.api.Delete(ctx, target.EmployeeID)
	p.endSubmit()
	p.modal.Close()
	if err != nil {
		p.report(err)
		return err
	}

	p.banners.Success("Employee deleted successfully!")
	return p.Reload(ctx)
}

// Cancel closes the form or the delete confirmation without any request.
func (p *Employees) Cancel() {
	p.modal.Close()
}

func (p *Employees) Items() []employee.EmployeeResponse {
	return p.employees.Items()
}

func (p *Employees) Snapshot() EmployeesSnapshot {
	return EmployeesSnapshot{
		Header:    p.header(),
		Employees: p.employees.Items(),
		Modal:     viewModal(p.modal),
	}
}
