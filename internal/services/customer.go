package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type CreateCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// BulkCreateCustomersResult reports per-row outcomes: every valid row commits
// on its own, failed rows are collected as messages indexed by input
// position. Partial success is the contract, not a failure mode.
type BulkCreateCustomersResult struct {
	Customers []*domain.Customer `json:"customers"`
	Errors    []string           `json:"errors"`
}

type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	BulkCreate(ctx context.Context, inputs []CreateCustomerInput) (*BulkCreateCustomersResult, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo) CustomerService {
	return &customerService{
		db:           db,
		log:          log.With("service", "CustomerService"),
		customerRepo: customerRepo,
	}
}

func (s *customerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	row := newCustomer(input)
	if violations := domain.ValidateCustomer(row); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	var created *domain.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Pre-check is an optimization for a friendly error; the unique
		// index remains the authoritative conflict detector under races.
		existing, err := s.customerRepo.GetByEmail(ctx, tx, row.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return &domain.ConflictError{Field: "email", Value: row.Email}
		}
		rows, err := s.customerRepo.Create(ctx, tx, []*domain.Customer{row})
		if err != nil {
			return err
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &domain.ConflictError{Field: "email", Value: row.Email}
		}
		return nil, err
	}
	s.log.Info("customer created", "customer_id", created.ID, "email", created.Email)
	return created, nil
}

func (s *customerService) BulkCreate(ctx context.Context, inputs []CreateCustomerInput) (*BulkCreateCustomersResult, error) {
	result := &BulkCreateCustomersResult{
		Customers: []*domain.Customer{},
		Errors:    []string{},
	}

	for i, input := range inputs {
		row := newCustomer(input)
		if violations := domain.ValidateCustomer(row); len(violations) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("record %d (%s): %s", i, input.Email, strings.Join(violations, "; ")))
			continue
		}

		// Each row commits in its own transaction so one bad record never
		// rolls back rows already committed in this call.
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			existing, err := s.customerRepo.GetByEmail(ctx, tx, row.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				return &domain.ConflictError{Field: "email", Value: row.Email}
			}
			_, err = s.customerRepo.Create(ctx, tx, []*domain.Customer{row})
			return err
		})
		if err != nil {
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) || errors.Is(err, gorm.ErrDuplicatedKey) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("record %d (%s): a customer with this email already exists", i, input.Email))
				continue
			}
			result.Errors = append(result.Errors,
				fmt.Sprintf("record %d (%s): %v", i, input.Email, err))
			continue
		}
		result.Customers = append(result.Customers, row)
	}

	s.log.Info("bulk customer create finished",
		"created", len(result.Customers), "failed", len(result.Errors))
	return result, nil
}

func (s *customerService) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	found, err := s.customerRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("error fetching customer: %w", err)
	}
	if found == nil {
		return nil, &domain.NotFoundError{Entity: "Customer", ID: email}
	}
	return found, nil
}

func newCustomer(input CreateCustomerInput) *domain.Customer {
	now := time.Now().UTC()
	return &domain.Customer{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
