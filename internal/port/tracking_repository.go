package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
)

// ReminderRepository defines the contract for reminder persistence.
type ReminderRepository interface {
	Create(ctx context.Context, r *domain.Reminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Reminder, int, error)
	ListDue(ctx context.Context, before time.Time, limit int) ([]domain.Reminder, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	Update(ctx context.Context, r *domain.Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocationRepository defines the contract for location ping persistence.
type LocationRepository interface {
	Create(ctx context.Context, ping *domain.LocationPing) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.LocationPing, error)
	LatestPerEmployee(ctx context.Context) ([]domain.LocationPing, error)
}

// ResumeRepository defines the contract for resume metadata persistence.
type ResumeRepository interface {
	Create(ctx context.Context, meta *domain.ResumeMeta) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ResumeMeta, error)
	List(ctx context.Context, offset, limit int) ([]domain.ResumeMeta, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
