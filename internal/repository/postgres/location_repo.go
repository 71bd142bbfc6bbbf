package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

type locationRepo struct {
	db *sqlx.DB
}

// NewLocationRepo creates a new PostgreSQL-backed LocationRepository.
func NewLocationRepo(db *sqlx.DB) port.LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, ping *domain.LocationPing) error {
	ping.ID = uuid.New()
	ping.CreatedAt = time.Now().UTC()
	if ping.RecordedAt.IsZero() {
		ping.RecordedAt = ping.CreatedAt
	}

	query := `INSERT INTO location_pings (id, employee_id, latitude, longitude, accuracy, recorded_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		ping.ID, ping.EmployeeID, ping.Latitude, ping.Longitude, ping.Accuracy,
		ping.RecordedAt, ping.CreatedAt)
	if err != nil {
		return fmt.Errorf("locationRepo.Create: %w", err)
	}
	return nil
}

func (r *locationRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.LocationPing, error) {
	var pings []domain.LocationPing
	err := r.db.SelectContext(ctx, &pings,
		`SELECT * FROM location_pings
		 WHERE employee_id = $1 AND recorded_at >= $2 AND recorded_at <= $3
		 ORDER BY recorded_at`,
		employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("locationRepo.ListByEmployee: %w", err)
	}
	return pings, nil
}

func (r *locationRepo) LatestPerEmployee(ctx context.Context) ([]domain.LocationPing, error) {
	var pings []domain.LocationPing
	err := r.db.SelectContext(ctx, &pings,
		`SELECT DISTINCT ON (employee_id) *
		 FROM location_pings
		 ORDER BY employee_id, recorded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("locationRepo.LatestPerEmployee: %w", err)
	}
	return pings, nil
}
