package repos

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.Customer) ([]*domain.Customer, error)

	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Customer, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Customer, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.Customer, error)

	Update(ctx context.Context, tx *gorm.DB, row *domain.Customer) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{db: db, log: baseLog.With("repo", "CustomerRepo")}
}

func (r *customerRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Customer) ([]*domain.Customer, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*domain.Customer{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *customerRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Customer, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Customer
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *customerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Customer, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*domain.Customer, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	var out domain.Customer
	err := t.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *customerRepo) Update(ctx context.Context, tx *gorm.DB, row *domain.Customer) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(ctx).Save(row).Error
}

func (r *customerRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).Model(&domain.Customer{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
