package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type CreateProductInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description,omitempty"`
}

// LowStockResult is the outcome of a restock pass. Success is always true
// when the pass ran; Message distinguishes "restocked" from "nothing to do".
type LowStockResult struct {
	Products []*domain.Product `json:"updated_products"`
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateLowStock(ctx context.Context) (*LowStockResult, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	return &productService{
		db:          db,
		log:         log.With("service", "ProductService"),
		productRepo: productRepo,
	}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	row := &domain.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if violations := domain.ValidateProduct(row); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	if _, err := s.productRepo.Create(ctx, nil, []*domain.Product{row}); err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}
	s.log.Info("product created", "product_id", row.ID, "name", row.Name)
	return row, nil
}

func (s *productService) UpdateLowStock(ctx context.Context) (*LowStockResult, error) {
	var updated []*domain.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.productRepo.GetLowStock(ctx, tx)
		if err != nil {
			return err
		}
		for _, p := range rows {
			p.Stock += domain.RestockQuantity
			if err := s.productRepo.Update(ctx, tx, p); err != nil {
				return err
			}
		}
		updated = rows
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error restocking products: %w", err)
	}

	if len(updated) == 0 {
		return &LowStockResult{
			Products: []*domain.Product{},
			Success:  true,
			Message:  "No low-stock products found",
		}, nil
	}
	s.log.Info("restocked low-stock products", "count", len(updated))
	return &LowStockResult{
		Products: updated,
		Success:  true,
		Message: fmt.Sprintf("Restocked %d products at %s",
			len(updated), time.Now().UTC().Format(time.RFC3339)),
	}, nil
}
