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

type resumeRepo struct {
	db *sqlx.DB
}

// NewResumeRepo creates a new PostgreSQL-backed ResumeRepository.
func NewResumeRepo(db *sqlx.DB) port.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, meta *domain.ResumeMeta) error {
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}
	meta.CreatedAt = time.Now().UTC()

	query := `INSERT INTO resumes (id, uploaded_by, file_name, original_name, file_size, s3_bucket,
		s3_key, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		meta.ID, meta.UploadedBy, meta.FileName, meta.OriginalName, meta.FileSize,
		meta.S3Bucket, meta.S3Key, meta.ContentType, meta.CreatedAt)
	if err != nil {
		return fmt.Errorf("resumeRepo.Create: %w", err)
	}
	return nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResumeMeta, error) {
	var meta domain.ResumeMeta
	err := r.db.GetContext(ctx, &meta, "SELECT * FROM resumes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resumeRepo.GetByID: %w", err)
	}
	return &meta, nil
}

func (r *resumeRepo) List(ctx context.Context, offset, limit int) ([]domain.ResumeMeta, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM resumes")
	if err != nil {
		return nil, 0, fmt.Errorf("resumeRepo.List count: %w", err)
	}

	var metas []domain.ResumeMeta
	err = r.db.SelectContext(ctx, &metas,
		"SELECT * FROM resumes ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("resumeRepo.List: %w", err)
	}
	return metas, total, nil
}

func (r *resumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM resumes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("resumeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
