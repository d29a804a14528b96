package page

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/app/listview"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
)

// RecentAttendanceLimit caps the attendance rows shown on the dashboard.
const RecentAttendanceLimit = 10

type Dashboard struct {
	*base
	stats      *listview.List[dashboard.EmployeeStatResponse, noFilter]
	attendance *listview.List[attendance.AttendanceResponse, attendance.AttendanceFilter]
}

type DashboardSnapshot struct {
	Header
	Summary dashboard.Summary
	Stats   []dashboard.EmployeeStatResponse
	Recent  []attendance.AttendanceResponse
}

func NewDashboard(stats StatsAPI, records AttendanceAPI, opts ...Option) *Dashboard {
	return &Dashboard{
		base: newBase("dashboard", opts),
		stats: listview.New(func(ctx context.Context, _ noFilter) ([]dashboard.EmployeeStatResponse, error) {
			return stats.Employees(ctx)
		}),
		attendance: listview.New(func(ctx context.Context, f attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
			return records.List(ctx, f)
		}),
	}
}

func (p *Dashboard) Mount(ctx context.Context) error {
	return p.Reload(ctx)
}

func (p *Dashboard) Reload(ctx context.Context) error {
	return p.load(ctx, listStep(p.stats), listStep(p.attendance))
}

func (p *Dashboard) Summary() dashboard.Summary {
	return dashboard.Summarize(p.stats.Items())
}

// Recent returns the first RecentAttendanceLimit records in server order.
func (p *Dashboard) Recent() []attendance.AttendanceResponse {
	items := p.attendance.Items()
	if len(items) > RecentAttendanceLimit {
		items = items[:RecentAttendanceLimit]
	}
	return items
}

func (p *Dashboard) Snapshot() DashboardSnapshot {
	stats := p.stats.Items()
	return DashboardSnapshot{
		Header:  p.header(),
		Summary: dashboard.Summarize(stats),
		Stats:   stats,
		Recent:  p.Recent(),
	}
}
