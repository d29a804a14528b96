package page

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/app/listview"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
)

// Leaves is the admin approval screen.
type Leaves struct {
	*base
	api    LeaveAPI
	leaves *listview.List[leave.LeaveRequestResponse, leave.LeaveRequestFilter]
	users  *listview.List[user.UserResponse, noFilter]
}

type LeavesSnapshot struct {
	Header
	Leaves       []leave.LeaveRequestResponse
	TotalUsers   int
	PendingCount int
}

func NewLeaves(api LeaveAPI, users UserAPI, opts ...Option) *Leaves {
	return &Leaves{
		base: newBase("leaves", opts),
		api:  api,
		leaves: listview.New(func(ctx context.Context, f leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
			return api.List(ctx, f)
		}),
		users: listview.New(func(ctx context.Context, _ noFilter) ([]user.UserResponse, error) {
			return users.List(ctx)
		}),
	}
}

func (p *Leaves) Mount(ctx context.Context) error {
	return p.Reload(ctx)
}

func (p *Leaves) Reload(ctx context.Context) error {
	return p.load(ctx, listStep(p.leaves), listStep(p.users))
}

// Transitions returns the actions offered for a loaded request: approve and
// reject while pending, nothing once processed.
func (p *Leaves) Transitions(id int64) ([]leave.LeaveRequestStatus, error) {
	l, err := p.find(id)
	if err != nil {
		return nil, err
	}
	return l.Transitions(), nil
}

func (p *Leaves) Approve(ctx context.Context, id int64) error {
	return p.transition(ctx, id, leave.LeaveRequestStatusApproved)
}

func (p *Leaves) Reject(ctx context.Context, id int64) error {
	return p.transition(ctx, id, leave.LeaveRequestStatusRejected)
}

func (p *Leaves) transition(ctx context.Context, id int64, to leave.LeaveRequestStatus) error {
	l, err := p.find(id)
	if err != nil {
		return err
	}
	if !leave.LeaveRequestStatus(l.Status).CanTransitionTo(to) {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := p.beginSubmit(); err != nil {
		return err
	}
	_, err = p.api.UpdateStatus(ctx, id, to)
	p.endSubmit()
	if err != nil {
		p.report(err)
		return err
	}

	p.banners.Success(fmt.Sprintf("Leave request %s", to))
	return p.Reload(ctx)
}

func (p *Leaves) find(id int64) (leave.LeaveRequestResponse, error) {
	for _, l := range p.leaves.Items() {
		if l.ID == id {
			return l, nil
		}
	}
	return leave.LeaveRequestResponse{}, ErrRecordNotLoaded
}

func (p *Leaves) Snapshot() LeavesSnapshot {
	items := p.leaves.Items()
	pending := 0
	for _, l := range items {
		if leave.LeaveRequestStatus(l.Status) == leave.LeaveRequestStatusPending {
			pending++
		}
	}
	return LeavesSnapshot{
		Header:       p.header(),
		Leaves:       items,
		TotalUsers:   p.users.Len(),
		PendingCount: pending,
	}
}
