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

func TestDispatchDue(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	user := &domain.User{ID: uuid.New(), Email: "ravi@staffdesk.in", FullName: "Ravi Kumar"}
	remRepo := &fakeReminderRepo{}
	sender := &fakeEmailSender{}

	svc := &reminderService{
		reminderRepo: remRepo,
		userRepo:     newFakeUserRepo(user),
		sender:       sender,
		now:          func() time.Time { return now },
	}

	due := &domain.Reminder{UserID: user.ID, Title: "GST filing", DueAt: now.Add(-time.Hour)}
	future := &domain.Reminder{UserID: user.ID, Title: "Appraisals", DueAt: now.Add(time.Hour)}
	require.NoError(t, remRepo.Create(context.Background(), due))
	require.NoError(t, remRepo.Create(context.Background(), future))

	sent, err := svc.DispatchDue(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"GST filing"}, sender.sent)
	assert.NotNil(t, due.SentAt)
	assert.Nil(t, future.SentAt)

	// Second sweep finds nothing new.
	sent, err = svc.DispatchDue(context.Background(), 50)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestDispatchDue_DeliveryFailureLeavesUnsent(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	flaky := &domain.User{ID: uuid.New(), Email: "flaky@staffdesk.in", FullName: "Flaky Inbox"}
	fine := &domain.User{ID: uuid.New(), Email: "fine@staffdesk.in", FullName: "Fine Inbox"}
	remRepo := &fakeReminderRepo{}
	sender := &fakeEmailSender{failFor: map[string]bool{"flaky@staffdesk.in": true}}

	svc := &reminderService{
		reminderRepo: remRepo,
		userRepo:     newFakeUserRepo(flaky, fine),
		sender:       sender,
		now:          func() time.Time { return now },
	}

	failing := &domain.Reminder{UserID: flaky.ID, Title: "Will fail", DueAt: now.Add(-time.Minute)}
	ok := &domain.Reminder{UserID: fine.ID, Title: "Will send", DueAt: now.Add(-time.Minute)}
	require.NoError(t, remRepo.Create(context.Background(), failing))
	require.NoError(t, remRepo.Create(context.Background(), ok))

	sent, err := svc.DispatchDue(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Nil(t, failing.SentAt)
	assert.NotNil(t, ok.SentAt)
}

func TestReminderUpdate_PartialFields(t *testing.T) {
	remRepo := &fakeReminderRepo{}
	svc := &reminderService{
		reminderRepo: remRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}

	rem, err := svc.Create(context.Background(), CreateReminderInput{
		Title:  "Original",
		Body:   "body",
		DueAt:  time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC),
		UserID: uuid.New(),
	})
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.Update(context.Background(), rem.ID, UpdateReminderInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "body", updated.Body)
	assert.Equal(t, rem.DueAt, updated.DueAt)
}
