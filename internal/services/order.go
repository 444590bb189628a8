package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type CreateOrderInput struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	ProductIDs []uuid.UUID `json:"product_ids"`
	OrderDate  *time.Time  `json:"order_date,omitempty"`
}

type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)

	// RecomputeTotal returns the order total from current product prices.
	// The stored total_amount snapshot is only touched when persist is set.
	RecomputeTotal(ctx context.Context, orderID uuid.UUID, persist bool) (decimal.Decimal, error)

	GetSince(ctx context.Context, cutoff time.Time) ([]*domain.Order, error)
}

type orderService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
	orderRepo    repos.OrderRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo, productRepo repos.ProductRepo, orderRepo repos.OrderRepo) OrderService {
	return &orderService{
		db:           db,
		log:          log.With("service", "OrderService"),
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

func (s *orderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	productIDs := dedupeIDs(input.ProductIDs)
	if len(productIDs) == 0 {
		return nil, domain.NewValidationError("order must contain at least one product")
	}

	var created *domain.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := s.customerRepo.GetByID(ctx, tx, input.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return &domain.NotFoundError{Entity: "Customer", ID: input.CustomerID.String()}
		}

		products, err := s.productRepo.GetByIDs(ctx, tx, productIDs)
		if err != nil {
			return err
		}
		if len(products) != len(productIDs) {
			return domain.NewValidationError(
				"invalid product ID(s) found: " + strings.Join(missingIDs(productIDs, products), ", "))
		}

		orderDate := time.Now().UTC()
		if input.OrderDate != nil {
			orderDate = input.OrderDate.UTC()
		}
		now := time.Now().UTC()
		order := &domain.Order{
			ID:          uuid.New(),
			CustomerID:  customer.ID,
			Customer:    customer,
			Products:    products,
			TotalAmount: domain.OrderTotal(products),
			OrderDate:   orderDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		created, err = s.orderRepo.Create(ctx, tx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order created",
		"order_id", created.ID,
		"customer_id", created.CustomerID,
		"products", len(created.Products),
		"total_amount", created.TotalAmount)
	return created, nil
}

func (s *orderService) RecomputeTotal(ctx context.Context, orderID uuid.UUID, persist bool) (decimal.Decimal, error) {
	order, err := s.orderRepo.GetByID(ctx, nil, orderID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error fetching order: %w", err)
	}
	if order == nil {
		return decimal.Zero, &domain.NotFoundError{Entity: "Order", ID: orderID.String()}
	}

	total := domain.OrderTotal(order.Products)
	if persist {
		if err := s.orderRepo.UpdateTotalAmount(ctx, nil, orderID, total); err != nil {
			return decimal.Zero, fmt.Errorf("error persisting recomputed total: %w", err)
		}
	}
	return total, nil
}

func (s *orderService) GetSince(ctx context.Context, cutoff time.Time) ([]*domain.Order, error) {
	return s.orderRepo.GetSince(ctx, nil, cutoff)
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(requested []uuid.UUID, found []*domain.Product) []string {
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, p := range found {
		have[p.ID] = struct{}{}
	}
	var out []string
	for _, id := range requested {
		if _, ok := have[id]; !ok {
			out = append(out, id.String())
		}
	}
	return out
}
