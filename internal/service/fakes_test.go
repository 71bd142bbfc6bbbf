package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

// In-memory fakes for the repository and storage ports.

type fakeEmployeeRepo struct {
	emps map[uuid.UUID]*domain.Employee
}

func newFakeEmployeeRepo(emps ...*domain.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{emps: make(map[uuid.UUID]*domain.Employee)}
	for _, e := range emps {
		r.emps[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	r.emps[emp.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Employee, error) {
	emp, ok := r.emps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmpCode(_ context.Context, code string) (*domain.Employee, error) {
	for _, e := range r.emps {
		if e.EmpCode == code {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ bool, _, _ int) ([]domain.Employee, int, error) {
	out := make([]domain.Employee, 0, len(r.emps))
	for _, e := range r.emps {
		out = append(out, *e)
	}
	return out, len(out), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	if _, ok := r.emps[emp.ID]; !ok {
		return domain.ErrNotFound
	}
	r.emps[emp.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	emp, ok := r.emps[id]
	if !ok {
		return domain.ErrNotFound
	}
	emp.IsActive = false
	return nil
}

type fakeAttendanceRepo struct {
	records []*domain.Attendance
	counts  map[domain.AttendanceStatus]int
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att *domain.Attendance) error {
	att.ID = uuid.New()
	r.records = append(r.records, att)
	return nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDay(_ context.Context, employeeID uuid.UUID, day time.Time) (*domain.Attendance, error) {
	for _, a := range r.records {
		if a.EmployeeID == employeeID && a.Day.Equal(day) {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAttendanceRepo) Update(_ context.Context, att *domain.Attendance) error {
	for i, a := range r.records {
		if a.ID == att.ID {
			r.records[i] = att
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeAttendanceRepo) ListByEmployeeMonth(_ context.Context, employeeID uuid.UUID, year int, month time.Month) ([]domain.Attendance, error) {
	var out []domain.Attendance
	for _, a := range r.records {
		if a.EmployeeID == employeeID && a.Day.Year() == year && a.Day.Month() == month {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByDay(_ context.Context, day time.Time, _, _ int) ([]domain.Attendance, int, error) {
	var out []domain.Attendance
	for _, a := range r.records {
		if a.Day.Equal(day) {
			out = append(out, *a)
		}
	}
	return out, len(out), nil
}

func (r *fakeAttendanceRepo) CountByStatus(_ context.Context, _ uuid.UUID, _ int, _ time.Month, status domain.AttendanceStatus) (int, error) {
	return r.counts[status], nil
}

type fakeInvoiceRepo struct {
	created []*domain.Invoice
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	r.created = append(r.created, inv)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Invoice, error) {
	for _, inv := range r.created {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeInvoiceRepo) List(_ context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	if offset >= len(r.created) {
		return nil, len(r.created), nil
	}
	end := offset + limit
	if end > len(r.created) {
		end = len(r.created)
	}
	out := make([]domain.Invoice, 0, end-offset)
	for _, inv := range r.created[offset:end] {
		out = append(out, *inv)
	}
	return out, len(r.created), nil
}

func (r *fakeInvoiceRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID, _, _ int) ([]domain.Invoice, int, error) {
	var out []domain.Invoice
	for _, inv := range r.created {
		if inv.EmployeeID == employeeID {
			out = append(out, *inv)
		}
	}
	return out, len(out), nil
}

func (r *fakeInvoiceRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	for _, inv := range r.created {
		if inv.ID == id {
			inv.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *domain.Invoice) error {
	for i, existing := range r.created {
		if existing.ID == inv.ID {
			r.created[i] = inv
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeStorage struct {
	uploads map[string][]byte
	failing bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	if s.failing {
		return nil, fmt.Errorf("storage unavailable")
	}
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	s.uploads[input.Key] = data
	return &port.UploadOutput{Location: "https://storage.test/" + input.Key}, nil
}

func (s *fakeStorage) Download(_ context.Context, _, key string) ([]byte, error) {
	data, ok := s.uploads[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func (s *fakeStorage) Delete(_ context.Context, _, key string) error {
	delete(s.uploads, key)
	return nil
}

func (s *fakeStorage) GetPresignedURL(_ context.Context, bucket, key string, _ int64) (string, error) {
	return fmt.Sprintf("https://storage.test/%s/%s?signed=1", bucket, key), nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeReminderRepo struct {
	reminders []*domain.Reminder
}

func (r *fakeReminderRepo) Create(_ context.Context, rem *domain.Reminder) error {
	rem.ID = uuid.New()
	r.reminders = append(r.reminders, rem)
	return nil
}

func (r *fakeReminderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reminder, error) {
	for _, rem := range r.reminders {
		if rem.ID == id {
			return rem, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeReminderRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]domain.Reminder, int, error) {
	var out []domain.Reminder
	for _, rem := range r.reminders {
		if rem.UserID == userID {
			out = append(out, *rem)
		}
	}
	return out, len(out), nil
}

func (r *fakeReminderRepo) ListDue(_ context.Context, before time.Time, limit int) ([]domain.Reminder, error) {
	var out []domain.Reminder
	for _, rem := range r.reminders {
		if rem.SentAt == nil && !rem.DueAt.After(before) {
			out = append(out, *rem)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) MarkSent(_ context.Context, id uuid.UUID, at time.Time) error {
	for _, rem := range r.reminders {
		if rem.ID == id && rem.SentAt == nil {
			rem.SentAt = &at
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeReminderRepo) Update(_ context.Context, rem *domain.Reminder) error {
	for i, existing := range r.reminders {
		if existing.ID == rem.ID {
			r.reminders[i] = rem
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeReminderRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, rem := range r.reminders {
		if rem.ID == id {
			r.reminders = append(r.reminders[:i], r.reminders[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeEmailSender struct {
	sent    []string
	failFor map[string]bool
}

func (s *fakeEmailSender) SendReminder(_ context.Context, toEmail, _, title, _ string) error {
	if s.failFor[toEmail] {
		return fmt.Errorf("smtp rejected")
	}
	s.sent = append(s.sent, title)
	return nil
}
