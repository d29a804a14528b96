package page

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
)

var fixedNow = time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

func testOptions() []Option {
	return []Option{WithClock(func() time.Time { return fixedNow })}
}

// fakeStore is an in-memory record store standing in for the API.
type fakeStore struct {
	mu         sync.Mutex
	employees  []employee.EmployeeResponse
	records    []attendance.AttendanceResponse
	leaves     []leave.LeaveRequestResponse
	users      []user.UserResponse
	stats      []dashboard.EmployeeStatResponse
	nextID     int64
	calls      map[string]int
	filters    []attendance.AttendanceFilter
	leaveScope []*string
	fail       map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		employees: []employee.EmployeeResponse{
			{EmployeeID: "EMP001", FullName: "John Doe", Email: "john.doe@company.com", Department: "Eng"},
		},
		records: []attendance.AttendanceResponse{
			{ID: 1, EmployeeID: "EMP001", Date: "2024-01-31", Status: "Present"},
		},
		nextID: 100,
		calls:  map[string]int{},
		fail:   map[string]error{},
	}
}

func (s *fakeStore) hit(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	return s.fail[op]
}

func (s *fakeStore) count(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *fakeStore) setFail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[op] = err
}

type fakeEmployees struct{ *fakeStore }

func (f fakeEmployees) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	if err := f.hit("employees.list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]employee.EmployeeResponse(nil), f.employees...), nil
}

func (f fakeEmployees) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := f.hit("employees.create"); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees = append([]employee.EmployeeResponse{{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}}, f.employees...)
	return employee.CreateEmployeeResponse{Message: "Employee created successfully", EmployeeID: req.EmployeeID}, nil
}

func (f fakeEmployees) Delete(ctx context.Context, employeeID string) error {
	if err := f.hit("employees.delete"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.employees {
		if e.EmployeeID == employeeID {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return &client.RequestError{Message: "Employee not found", Status: 404, Kind: client.KindNotFound}
}

type fakeAttendance struct{ *fakeStore }

func (f fakeAttendance) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := f.hit("attendance.list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	var out []attendance.AttendanceResponse
	for _, r := range f.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && r.Date != *filter.Date {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f fakeAttendance) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.MessageResponse, error) {
	if err := f.hit("attendance.create"); err != nil {
		return attendance.MessageResponse{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.records = append([]attendance.AttendanceResponse{{
		ID:         f.nextID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	}}, f.records...)
	return attendance.MessageResponse{Message: "Attendance marked successfully", ID: f.nextID}, nil
}

func (f fakeAttendance) Delete(ctx context.Context, id int64) error {
	if err := f.hit("attendance.delete"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLeaves struct{ *fakeStore }

func (f fakeLeaves) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := f.hit("leaves.list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaveScope = append(f.leaveScope, filter.UserID)
	return append([]leave.LeaveRequestResponse(nil), f.leaves...), nil
}

func (f fakeLeaves) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := f.hit("leaves.create"); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	l := leave.LeaveRequestResponse{
		ID:         f.nextID,
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     string(leave.LeaveRequestStatusPending),
	}
	f.leaves = append([]leave.LeaveRequestResponse{l}, f.leaves...)
	return l, nil
}

func (f fakeLeaves) UpdateStatus(ctx context.Context, id int64, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	if err := f.hit("leaves.update"); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.leaves {
		if f.leaves[i].ID == id {
			f.leaves[i].Status = string(status)
			return f.leaves[i], nil
		}
	}
	return leave.LeaveRequestResponse{}, errors.New("Leave request not found")
}

type fakeUsers struct{ *fakeStore }

func (f fakeUsers) List(ctx context.Context) ([]user.UserResponse, error) {
	if err := f.hit("users.list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]user.UserResponse(nil), f.users...), nil
}

type fakeStats struct{ *fakeStore }

func (f fakeStats) Employees(ctx context.Context) ([]dashboard.EmployeeStatResponse, error) {
	if err := f.hit("stats.employees"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dashboard.EmployeeStatResponse(nil), f.stats...), nil
}
