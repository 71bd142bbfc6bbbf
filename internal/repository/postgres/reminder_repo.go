package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

type reminderRepo struct {
	db *sqlx.DB
}

// NewReminderRepo creates a new PostgreSQL-backed ReminderRepository.
func NewReminderRepo(db *sqlx.DB) port.ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(ctx context.Context, rem *domain.Reminder) error {
	rem.ID = uuid.New()
	now := time.Now().UTC()
	rem.CreatedAt = now
	rem.UpdatedAt = now

	query := `INSERT INTO reminders (id, user_id, title, body, due_at, sent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rem.ID, rem.UserID, rem.Title, rem.Body, rem.DueAt, rem.SentAt,
		rem.CreatedAt, rem.UpdatedAt)
	if err != nil {
		return fmt.Errorf("reminderRepo.Create: %w", err)
	}
	return nil
}

func (r *reminderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	var rem domain.Reminder
	err := r.db.GetContext(ctx, &rem, "SELECT * FROM reminders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reminderRepo.GetByID: %w", err)
	}
	return &rem, nil
}

func (r *reminderRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Reminder, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM reminders WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("reminderRepo.ListByUser count: %w", err)
	}

	var rems []domain.Reminder
	err = r.db.SelectContext(ctx, &rems,
		"SELECT * FROM reminders WHERE user_id = $1 ORDER BY due_at LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("reminderRepo.ListByUser: %w", err)
	}
	return rems, total, nil
}

func (r *reminderRepo) ListDue(ctx context.Context, before time.Time, limit int) ([]domain.Reminder, error) {
	var rems []domain.Reminder
	err := r.db.SelectContext(ctx, &rems,
		"SELECT * FROM reminders WHERE sent_at IS NULL AND due_at <= $1 ORDER BY due_at LIMIT $2",
		before, limit)
	if err != nil {
		return nil, fmt.Errorf("reminderRepo.ListDue: %w", err)
	}
	return rems, nil
}

func (r *reminderRepo) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE reminders SET sent_at = $1, updated_at = NOW() WHERE id = $2 AND sent_at IS NULL",
		at, id)
	if err != nil {
		return fmt.Errorf("reminderRepo.MarkSent: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reminderRepo) Update(ctx context.Context, rem *domain.Reminder) error {
	rem.UpdatedAt = time.Now().UTC()
	query := `UPDATE reminders SET title = $1, body = $2, due_at = $3, updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		rem.Title, rem.Body, rem.DueAt, rem.UpdatedAt, rem.ID)
	if err != nil {
		return fmt.Errorf("reminderRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reminderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("reminderRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
