package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
	"staffdesk/internal/xlsxexport"
)

// Publisher pushes live updates to connected dashboard clients.
type Publisher interface {
	Broadcast(data []byte)
}

// RecordPingInput is the DTO for location ping submissions.
type RecordPingInput struct {
	EmployeeID uuid.UUID  `json:"employee_id" binding:"required"`
	Latitude   float64    `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude  float64    `json:"longitude" binding:"required,gte=-180,lte=180"`
	Accuracy   float64    `json:"accuracy" binding:"gte=0"`
	RecordedAt *time.Time `json:"recorded_at"`
}

// LocationService defines the location tracking contract.
type LocationService interface {
	RecordPing(ctx context.Context, input RecordPingInput) (*domain.LocationPing, error)
	History(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.LocationPing, error)
	Latest(ctx context.Context) ([]domain.LocationPing, error)
	ExportXLSX(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]byte, error)
}

type locationService struct {
	locRepo   port.LocationRepository
	empRepo   port.EmployeeRepository
	publisher Publisher
}

// NewLocationService creates a new LocationService implementation.
func NewLocationService(locRepo port.LocationRepository, empRepo port.EmployeeRepository, publisher Publisher) LocationService {
	return &locationService{locRepo: locRepo, empRepo: empRepo, publisher: publisher}
}

func (s *locationService) RecordPing(ctx context.Context, input RecordPingInput) (*domain.LocationPing, error) {
	emp, err := s.empRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, domain.ErrEmployeeInactive
	}

	ping := &domain.LocationPing{
		EmployeeID: input.EmployeeID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Accuracy:   input.Accuracy,
	}
	if input.RecordedAt != nil {
		ping.RecordedAt = input.RecordedAt.UTC()
	}
	if err := s.locRepo.Create(ctx, ping); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if data, err := json.Marshal(ping); err == nil {
			s.publisher.Broadcast(data)
		} else {
			log.Printf("locationService.RecordPing: marshal broadcast: %v", err)
		}
	}

	return ping, nil
}

func (s *locationService) History(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.LocationPing, error) {
	return s.locRepo.ListByEmployee(ctx, employeeID, from, to)
}

func (s *locationService) Latest(ctx context.Context) ([]domain.LocationPing, error) {
	return s.locRepo.LatestPerEmployee(ctx)
}

func (s *locationService) ExportXLSX(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]byte, error) {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	pings, err := s.locRepo.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return xlsxexport.LocationSheet(emp, pings)
}
