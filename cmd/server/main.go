package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffdesk/internal/config"
	"staffdesk/internal/email/noop"
	sesemail "staffdesk/internal/email/ses"
	"staffdesk/internal/handler"
	"staffdesk/internal/port"
	"staffdesk/internal/repository/postgres"
	"staffdesk/internal/router"
	"staffdesk/internal/scheduler"
	"staffdesk/internal/service"
	s3storage "staffdesk/internal/storage/s3"
	"staffdesk/internal/ws"
)

// @title StaffDesk API
// @version 1.0
// @description HR dashboard backend: employees, attendance, salary, invoices and field tracking.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	empRepo := postgres.NewEmployeeRepo(db)
	attRepo := postgres.NewAttendanceRepo(db)
	leaveRepo := postgres.NewLeaveRepo(db)
	salaryRepo := postgres.NewSalaryRepo(db)
	invRepo := postgres.NewInvoiceRepo(db)
	productRepo := postgres.NewProductRepo(db)
	reminderRepo := postgres.NewReminderRepo(db)
	locRepo := postgres.NewLocationRepo(db)
	resumeRepo := postgres.NewResumeRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = sesemail.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Live dashboard feed
	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	empSvc := service.NewEmployeeService(empRepo)
	attSvc := service.NewAttendanceService(attRepo, empRepo)
	leaveSvc := service.NewLeaveService(leaveRepo, empRepo, attRepo)
	salarySvc := service.NewSalaryService(salaryRepo, empRepo, attRepo, s3Client, &cfg.S3)
	invSvc := service.NewInvoiceService(invRepo, empRepo, s3Client, &cfg.S3, cfg.Company)
	productSvc := service.NewProductService(productRepo)
	reminderSvc := service.NewReminderService(reminderRepo, userRepo, sender)
	locSvc := service.NewLocationService(locRepo, empRepo, hub)
	resumeSvc := service.NewResumeService(resumeRepo, s3Client, &cfg.S3)

	// Background reminder dispatch
	if cfg.Scheduler.Enabled {
		sched, err := scheduler.NewReminderScheduler(reminderSvc, cfg.Scheduler)
		if err != nil {
			return fmt.Errorf("failed to initialize scheduler: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Initialize handlers
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, userSvc),
		User:       handler.NewUserHandler(userSvc),
		Employee:   handler.NewEmployeeHandler(empSvc),
		Attendance: handler.NewAttendanceHandler(attSvc),
		Salary:     handler.NewSalaryHandler(salarySvc),
		Invoice:    handler.NewInvoiceHandler(invSvc),
		Product:    handler.NewProductHandler(productSvc),
		Leave:      handler.NewLeaveHandler(leaveSvc),
		Reminder:   handler.NewReminderHandler(reminderSvc),
		Location:   handler.NewLocationHandler(locSvc),
		Resume:     handler.NewResumeHandler(resumeSvc),
		Health:     handler.NewHealthHandler(db),
	}

	r := router.Setup(authSvc, h, hub, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
