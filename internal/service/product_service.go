package service

import (
	"context"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
	"staffdesk/internal/port"
)

// CreateProductInput is the DTO for product creation requests.
type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
	TaxPercent  float64 `json:"tax_percent" binding:"gte=0,lte=100"`
	SKU         string  `json:"sku" binding:"required"`
}

// UpdateProductInput is the DTO for product update requests.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unit_price" binding:"omitempty,gt=0"`
	TaxPercent  *float64 `json:"tax_percent" binding:"omitempty,gte=0,lte=100"`
	IsActive    *bool    `json:"is_active"`
}

// ProductService defines the product catalog contract.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	productRepo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(productRepo port.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		UnitPrice:   input.UnitPrice,
		TaxPercent:  input.TaxPercent,
		SKU:         input.SKU,
		IsActive:    true,
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Product, int, error) {
	return s.productRepo.List(ctx, activeOnly, offset, limit)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.UnitPrice != nil {
		p.UnitPrice = *input.UnitPrice
	}
	if input.TaxPercent != nil {
		p.TaxPercent = *input.TaxPercent
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
