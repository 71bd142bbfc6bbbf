package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

// CreateReminderInput is the DTO for reminder creation requests.
type CreateReminderInput struct {
	Title  string    `json:"title" binding:"required"`
	Body   string    `json:"body"`
	DueAt  time.Time `json:"due_at" binding:"required"`
	UserID uuid.UUID `json:"-"`
}

// UpdateReminderInput is the DTO for reminder update requests.
type UpdateReminderInput struct {
	Title *string    `json:"title"`
	Body  *string    `json:"body"`
	DueAt *time.Time `json:"due_at"`
}

// ReminderService defines the reminder contract.
type ReminderService interface {
	Create(ctx context.Context, input CreateReminderInput) (*domain.Reminder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Reminder, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateReminderInput) (*domain.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DispatchDue(ctx context.Context, batchSize int) (int, error)
}

type reminderService struct {
	reminderRepo port.ReminderRepository
	userRepo     port.UserRepository
	sender       port.EmailSender
	now          func() time.Time
}

// NewReminderService creates a new ReminderService implementation.
func NewReminderService(reminderRepo port.ReminderRepository, userRepo port.UserRepository, sender port.EmailSender) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		sender:       sender,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *reminderService) Create(ctx context.Context, input CreateReminderInput) (*domain.Reminder, error) {
	rem := &domain.Reminder{
		UserID: input.UserID,
		Title:  input.Title,
		Body:   input.Body,
		DueAt:  input.DueAt,
	}
	if err := s.reminderRepo.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *reminderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	return s.reminderRepo.GetByID(ctx, id)
}

func (s *reminderService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Reminder, int, error) {
	return s.reminderRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *reminderService) Update(ctx context.Context, id uuid.UUID, input UpdateReminderInput) (*domain.Reminder, error) {
	rem, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		rem.Title = *input.Title
	}
	if input.Body != nil {
		rem.Body = *input.Body
	}
	if input.DueAt != nil {
		rem.DueAt = *input.DueAt
	}

	if err := s.reminderRepo.Update(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *reminderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reminderRepo.Delete(ctx, id)
}

// DispatchDue emails every unsent reminder whose due time has passed and marks
// it sent. A delivery failure leaves the reminder unsent for the next sweep.
func (s *reminderService) DispatchDue(ctx context.Context, batchSize int) (int, error) {
	now := s.now()
	due, err := s.reminderRepo.ListDue(ctx, now, batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, rem := range due {
		user, err := s.userRepo.GetByID(ctx, rem.UserID)
		if err != nil {
			log.Printf("reminderService.DispatchDue: lookup user %s: %v", rem.UserID, err)
			continue
		}
		if err := s.sender.SendReminder(ctx, user.Email, user.FullName, rem.Title, rem.Body); err != nil {
			log.Printf("reminderService.DispatchDue: send reminder %s: %v", rem.ID, err)
			continue
		}
		if err := s.reminderRepo.MarkSent(ctx, rem.ID, now); err != nil {
			log.Printf("reminderService.DispatchDue: mark sent %s: %v", rem.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
