package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"staffdesk/internal/config"
	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

// ResumeUploadInput is the DTO for resume upload requests.
type ResumeUploadInput struct {
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// ResumeService defines the resume management contract.
type ResumeService interface {
	Upload(ctx context.Context, input ResumeUploadInput) (*domain.ResumeMeta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ResumeMeta, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	List(ctx context.Context, offset, limit int) ([]domain.ResumeMeta, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resumeService struct {
	resumeRepo port.ResumeRepository
	storage    port.ObjectStorage
	cfg        *config.S3Config
}

// NewResumeService creates a new ResumeService implementation.
func NewResumeService(resumeRepo port.ResumeRepository, storage port.ObjectStorage, cfg *config.S3Config) ResumeService {
	return &resumeService{resumeRepo: resumeRepo, storage: storage, cfg: cfg}
}

func (s *resumeService) Upload(ctx context.Context, input ResumeUploadInput) (*domain.ResumeMeta, error) {
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the real content type from the first 512 bytes.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])

	ext, ok := domain.ResumeContentTypes[detectedType]
	if !ok {
		// DOCX files sniff as generic zip archives.
		if detectedType == "application/zip" {
			detectedType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
			ext = "docx"
		} else {
			return nil, domain.ErrUnsupportedFileType
		}
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	resumeID := uuid.New()
	fileName := resumeID.String() + "." + ext
	s3Key := fmt.Sprintf("resumes/%s/%s", input.UploadedBy, fileName)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: detectedType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("resumeService.Upload: S3 upload failed for %s: %v", s3Key, err)
		return nil, domain.ErrUploadFailed
	}

	meta := &domain.ResumeMeta{
		ID:           resumeID,
		UploadedBy:   input.UploadedBy,
		FileName:     fileName,
		OriginalName: input.Header.Filename,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  detectedType,
	}
	if err := s.resumeRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("creating resume metadata: %w", err)
	}
	return meta, nil
}

func (s *resumeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResumeMeta, error) {
	return s.resumeRepo.GetByID(ctx, id)
}

func (s *resumeService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	meta, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, meta.S3Bucket, meta.S3Key, s.cfg.PresignExpiry)
}

func (s *resumeService) List(ctx context.Context, offset, limit int) ([]domain.ResumeMeta, int, error) {
	return s.resumeRepo.List(ctx, offset, limit)
}

func (s *resumeService) Delete(ctx context.Context, id uuid.UUID) error {
	meta, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, meta.S3Bucket, meta.S3Key); err != nil {
		log.Printf("resumeService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}
	return s.resumeRepo.Delete(ctx, id)
}
