package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/domain"
)

type fakeLeaveRepo struct {
	requests []*domain.LeaveRequest
}

func (r *fakeLeaveRepo) Create(_ context.Context, req *domain.LeaveRequest) error {
	req.ID = uuid.New()
	r.requests = append(r.requests, req)
	return nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.LeaveRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID, _, _ int) ([]domain.LeaveRequest, int, error) {
	var out []domain.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, len(out), nil
}

func (r *fakeLeaveRepo) ListByStatus(_ context.Context, status domain.LeaveStatus, _, _ int) ([]domain.LeaveRequest, int, error) {
	var out []domain.LeaveRequest
	for _, req := range r.requests {
		if req.Status == status {
			out = append(out, *req)
		}
	}
	return out, len(out), nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, req *domain.LeaveRequest) error {
	for i, existing := range r.requests {
		if existing.ID == req.ID {
			r.requests[i] = req
			return nil
		}
	}
	return domain.ErrNotFound
}

func newTestLeaveService(emp *domain.Employee, at time.Time) (*leaveService, *fakeLeaveRepo, *fakeAttendanceRepo) {
	leaveRepo := &fakeLeaveRepo{}
	attRepo := &fakeAttendanceRepo{counts: make(map[domain.AttendanceStatus]int)}
	svc := &leaveService{
		leaveRepo: leaveRepo,
		empRepo:   newFakeEmployeeRepo(emp),
		attRepo:   attRepo,
		now:       func() time.Time { return at },
	}
	return svc, leaveRepo, attRepo
}

func TestRequestLeave(t *testing.T) {
	emp := activeEmployee()
	svc, _, _ := newTestLeaveService(emp, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))

	req, err := svc.Request(context.Background(), RequestLeaveInput{
		EmployeeID: emp.ID,
		FromDate:   time.Date(2025, 3, 20, 13, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2025, 3, 22, 9, 0, 0, 0, time.UTC),
		Reason:     "Family function",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LeavePending, req.Status)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), req.FromDate)
	assert.Equal(t, time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC), req.ToDate)
}

func TestRequestLeave_InvertedRange(t *testing.T) {
	emp := activeEmployee()
	svc, _, _ := newTestLeaveService(emp, time.Now().UTC())

	_, err := svc.Request(context.Background(), RequestLeaveInput{
		EmployeeID: emp.ID,
		FromDate:   time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Reason:     "backwards",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLeaveRange)
}

func TestDecideLeave_ApproveMarksAttendance(t *testing.T) {
	emp := activeEmployee()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	svc, _, attRepo := newTestLeaveService(emp, now)

	req, err := svc.Request(context.Background(), RequestLeaveInput{
		EmployeeID: emp.ID,
		FromDate:   time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
		Reason:     "Family function",
	})
	require.NoError(t, err)

	adminID := uuid.New()
	decided, err := svc.Decide(context.Background(), req.ID, DecideLeaveInput{Approve: true, DecidedBy: adminID})
	require.NoError(t, err)

	assert.Equal(t, domain.LeaveApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, adminID, *decided.DecidedBy)
	assert.Equal(t, now, *decided.DecidedAt)

	// One on_leave record per covered day.
	require.Len(t, attRepo.records, 3)
	for _, att := range attRepo.records {
		assert.Equal(t, domain.AttendanceOnLeave, att.Status)
	}
}

func TestDecideLeave_Twice(t *testing.T) {
	emp := activeEmployee()
	svc, _, _ := newTestLeaveService(emp, time.Now().UTC())

	req, err := svc.Request(context.Background(), RequestLeaveInput{
		EmployeeID: emp.ID,
		FromDate:   time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Reason:     "One day",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), req.ID, DecideLeaveInput{Approve: false, DecidedBy: uuid.New()})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), req.ID, DecideLeaveInput{Approve: true, DecidedBy: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrLeaveAlreadyDecided)
}

func TestDecideLeave_RejectLeavesAttendanceAlone(t *testing.T) {
	emp := activeEmployee()
	svc, _, attRepo := newTestLeaveService(emp, time.Now().UTC())

	req, err := svc.Request(context.Background(), RequestLeaveInput{
		EmployeeID: emp.ID,
		FromDate:   time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
		Reason:     "Tentative",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), req.ID, DecideLeaveInput{Approve: false, DecidedBy: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveRejected, decided.Status)
	assert.Empty(t, attRepo.records)
}
