package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendReminder(ctx context.Context, toEmail, toName, title, body string) error
}
