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

func newTestAttendanceService(emp *domain.Employee, at time.Time) (*attendanceService, *fakeAttendanceRepo) {
	attRepo := &fakeAttendanceRepo{counts: make(map[domain.AttendanceStatus]int)}
	svc := &attendanceService{
		attRepo: attRepo,
		empRepo: newFakeEmployeeRepo(emp),
		now:     func() time.Time { return at },
	}
	return svc, attRepo
}

func activeEmployee() *domain.Employee {
	return &domain.Employee{
		ID:       uuid.New(),
		EmpCode:  "EMP042",
		FullName: "Ravi Kumar",
		IsActive: true,
	}
}

func TestCheckIn(t *testing.T) {
	emp := activeEmployee()
	morning := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	svc, _ := newTestAttendanceService(emp, morning)

	att, err := svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.AttendancePresent, att.Status)
	require.NotNil(t, att.CheckIn)
	assert.Equal(t, morning, *att.CheckIn)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), att.Day)
}

func TestCheckIn_Twice(t *testing.T) {
	emp := activeEmployee()
	svc, _ := newTestAttendanceService(emp, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), emp.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestCheckIn_InactiveEmployee(t *testing.T) {
	emp := activeEmployee()
	emp.IsActive = false
	svc, _ := newTestAttendanceService(emp, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), emp.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeInactive)
}

func TestCheckIn_FillsMarkedDay(t *testing.T) {
	emp := activeEmployee()
	morning := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	svc, attRepo := newTestAttendanceService(emp, morning)

	// Day already marked by an admin, but without a check-in.
	_, err := svc.Mark(context.Background(), MarkAttendanceInput{
		EmployeeID: emp.ID,
		Day:        morning,
		Status:     domain.AttendanceHoliday,
	})
	require.NoError(t, err)

	att, err := svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, att.Status)
	assert.Len(t, attRepo.records, 1)
}

func TestCheckOut(t *testing.T) {
	emp := activeEmployee()
	morning := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestAttendanceService(emp, morning)

	_, err := svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)

	evening := morning.Add(8*time.Hour + 30*time.Minute)
	svc.now = func() time.Time { return evening }

	att, err := svc.CheckOut(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, att.Status)
	require.NotNil(t, att.CheckOut)
	assert.Equal(t, evening, *att.CheckOut)
}

func TestCheckOut_ShortDayIsHalfDay(t *testing.T) {
	emp := activeEmployee()
	morning := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestAttendanceService(emp, morning)

	_, err := svc.CheckIn(context.Background(), emp.ID)
	require.NoError(t, err)

	svc.now = func() time.Time { return morning.Add(3 * time.Hour) }

	att, err := svc.CheckOut(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceHalfDay, att.Status)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	emp := activeEmployee()
	svc, _ := newTestAttendanceService(emp, time.Date(2025, 3, 14, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), emp.ID)
	assert.ErrorIs(t, err, domain.ErrNotCheckedIn)
}

func TestMark_UpsertsStatus(t *testing.T) {
	emp := activeEmployee()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	svc, attRepo := newTestAttendanceService(emp, day)

	att, err := svc.Mark(context.Background(), MarkAttendanceInput{
		EmployeeID: emp.ID,
		Day:        day.Add(11 * time.Hour), // any time of day maps to the same record
		Status:     domain.AttendanceAbsent,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceAbsent, att.Status)
	assert.Equal(t, day, att.Day)

	att, err = svc.Mark(context.Background(), MarkAttendanceInput{
		EmployeeID: emp.ID,
		Day:        day,
		Status:     domain.AttendanceOnLeave,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceOnLeave, att.Status)
	assert.Len(t, attRepo.records, 1)
}

func TestMark_UnknownEmployee(t *testing.T) {
	emp := activeEmployee()
	svc, _ := newTestAttendanceService(emp, time.Now().UTC())

	_, err := svc.Mark(context.Background(), MarkAttendanceInput{
		EmployeeID: uuid.New(),
		Day:        time.Now().UTC(),
		Status:     domain.AttendancePresent,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
