package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"staffdesk/internal/config"
	"staffdesk/internal/service"
)

// ReminderScheduler periodically dispatches due reminders by email.
type ReminderScheduler struct {
	scheduler gocron.Scheduler
	reminders service.ReminderService
	cfg       config.SchedulerConfig
}

// NewReminderScheduler wires the reminder dispatch job onto a gocron scheduler.
func NewReminderScheduler(reminders service.ReminderService, cfg config.SchedulerConfig) (*ReminderScheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	rs := &ReminderScheduler{
		scheduler: s,
		reminders: reminders,
		cfg:       cfg,
	}

	interval := time.Duration(cfg.PollIntervalSecs) * time.Second
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(rs.dispatch),
		gocron.WithName("reminder-dispatch"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("registering reminder job: %w", err)
	}

	return rs, nil
}

// Start begins the dispatch loop.
func (rs *ReminderScheduler) Start() {
	log.Printf("scheduler: reminder dispatch every %ds", rs.cfg.PollIntervalSecs)
	rs.scheduler.Start()
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (rs *ReminderScheduler) Stop() {
	if err := rs.scheduler.Shutdown(); err != nil {
		log.Printf("scheduler: shutdown: %v", err)
	}
}

func (rs *ReminderScheduler) dispatch() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sent, err := rs.reminders.DispatchDue(ctx, rs.cfg.BatchSize)
	if err != nil {
		log.Printf("scheduler: reminder dispatch: %v", err)
		return
	}
	if sent > 0 {
		log.Printf("scheduler: dispatched %d reminder(s)", sent)
	}
}
