// Package seed loads YAML fixtures and inserts them idempotently: records
// matching an already-present unique key are skipped, so reseeding a database
// is safe.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

type CustomerFixture struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone,omitempty"`
}

type ProductFixture struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
	Description string `yaml:"description,omitempty"`
}

// OrderFixture references its customer and products by their natural keys so
// fixtures stay readable.
type OrderFixture struct {
	CustomerEmail string   `yaml:"customer_email"`
	ProductNames  []string `yaml:"product_names"`
}

type Fixtures struct {
	Customers []CustomerFixture `yaml:"customers"`
	Products  []ProductFixture  `yaml:"products"`
	Orders    []OrderFixture    `yaml:"orders,omitempty"`
}

func Load(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

type Seeder struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
	orderService services.OrderService
}

func NewSeeder(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo, productRepo repos.ProductRepo, orderService services.OrderService) *Seeder {
	return &Seeder{
		db:           db,
		log:          log.With("component", "Seeder"),
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderService: orderService,
	}
}

func (s *Seeder) Apply(ctx context.Context, f *Fixtures) error {
	customersByEmail := map[string]*domain.Customer{}
	for _, cf := range f.Customers {
		existing, err := s.customerRepo.GetByEmail(ctx, nil, cf.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			customersByEmail[cf.Email] = existing
			continue
		}
		row := &domain.Customer{
			ID:    uuid.New(),
			Name:  cf.Name,
			Email: cf.Email,
			Phone: cf.Phone,
		}
		if violations := domain.ValidateCustomer(row); len(violations) > 0 {
			return fmt.Errorf("seed customer %q: %v", cf.Email, violations)
		}
		if _, err := s.customerRepo.Create(ctx, nil, []*domain.Customer{row}); err != nil {
			return err
		}
		customersByEmail[cf.Email] = row
		s.log.Info("seeded customer", "email", cf.Email)
	}

	productsByName := map[string]*domain.Product{}
	for _, pf := range f.Products {
		existing, err := s.findProductByName(ctx, pf.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			productsByName[pf.Name] = existing
			continue
		}
		price, err := decimal.NewFromString(pf.Price)
		if err != nil {
			return fmt.Errorf("seed product %q: bad price %q", pf.Name, pf.Price)
		}
		row := &domain.Product{
			ID:          uuid.New(),
			Name:        pf.Name,
			Price:       price,
			Stock:       pf.Stock,
			Description: pf.Description,
		}
		if violations := domain.ValidateProduct(row); len(violations) > 0 {
			return fmt.Errorf("seed product %q: %v", pf.Name, violations)
		}
		if _, err := s.productRepo.Create(ctx, nil, []*domain.Product{row}); err != nil {
			return err
		}
		productsByName[pf.Name] = row
		s.log.Info("seeded product", "name", pf.Name)
	}

	for _, of := range f.Orders {
		customer := customersByEmail[of.CustomerEmail]
		if customer == nil {
			return fmt.Errorf("seed order: unknown customer %q", of.CustomerEmail)
		}
		has, err := s.customerHasOrders(ctx, customer.ID)
		if err != nil {
			return err
		}
		if has {
			continue
		}
		var productIDs []uuid.UUID
		for _, name := range of.ProductNames {
			p := productsByName[name]
			if p == nil {
				return fmt.Errorf("seed order: unknown product %q", name)
			}
			productIDs = append(productIDs, p.ID)
		}
		if _, err := s.orderService.Create(ctx, services.CreateOrderInput{
			CustomerID: customer.ID,
			ProductIDs: productIDs,
		}); err != nil {
			return err
		}
		s.log.Info("seeded order", "customer", of.CustomerEmail, "products", len(productIDs))
	}
	return nil
}

func (s *Seeder) findProductByName(ctx context.Context, name string) (*domain.Product, error) {
	var out []*domain.Product
	if err := s.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (s *Seeder) customerHasOrders(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&domain.Order{}).
		Where("customer_id = ?", customerID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
