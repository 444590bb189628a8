package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"not null;column:name" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;column:price" json:"price"`
	Stock       int             `gorm:"not null;default:0;column:stock" json:"stock"`
	Description string          `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
