package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type OrderRepo interface {
	// Create inserts the order together with its product association rows.
	// Product rows themselves are never written here.
	Create(ctx context.Context, tx *gorm.DB, row *domain.Order) (*domain.Order, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Order, error)
	GetProducts(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) ([]*domain.Product, error)
	GetSince(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*domain.Order, error)

	UpdateTotalAmount(ctx context.Context, tx *gorm.DB, id uuid.UUID, total decimal.Decimal) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	SumTotalAmount(ctx context.Context, tx *gorm.DB) (decimal.Decimal, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.Order) (*domain.Order, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil, nil
	}
	// Omit("Products.*") keeps GORM from upserting the product rows while
	// still inserting the order_products association rows.
	if err := t.WithContext(ctx).Omit("Products.*").Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Order, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out domain.Order
	err := t.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Where("id = ?", id).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *orderRepo) GetProducts(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) ([]*domain.Product, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Product
	if orderID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Joins("JOIN order_products ON order_products.product_id = product.id").
		Where("order_products.order_id = ?", orderID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) GetSince(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*domain.Order, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Order
	if err := t.WithContext(ctx).
		Preload("Customer").
		Where("order_date >= ?", cutoff).
		Order("order_date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateTotalAmount(ctx context.Context, tx *gorm.DB, id uuid.UUID, total decimal.Decimal) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_amount": total,
			"updated_at":   time.Now().UTC(),
		}).Error
}

func (r *orderRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).Model(&domain.Order{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *orderRepo) SumTotalAmount(ctx context.Context, tx *gorm.DB) (decimal.Decimal, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var row struct {
		Total decimal.Decimal
	}
	if err := t.WithContext(ctx).
		Model(&domain.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
