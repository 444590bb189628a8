package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
)

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, name, email string) *domain.Customer {
	tb.Helper()
	c := &domain.Customer{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, price float64, stock int) *domain.Product {
	tb.Helper()
	p := &domain.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     decimal.NewFromFloat(price),
		Stock:     stock,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customer *domain.Customer, products ...*domain.Product) *domain.Order {
	tb.Helper()
	o := &domain.Order{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		Products:    products,
		TotalAmount: domain.OrderTotal(products),
		OrderDate:   time.Now().UTC(),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Omit("Products.*").Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}
