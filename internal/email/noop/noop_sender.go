package noop

import (
	"context"
	"log"

	"staffdesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs reminders to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReminder(_ context.Context, toEmail, toName, title, body string) error {
	log.Printf("[NOOP EMAIL] Reminder for %s (%s): %s - %s", toName, toEmail, title, body)
	return nil
}
