package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order owns its product association rows; customer and products themselves
// are independent top-level entities that the order only references.
type Order struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer  `gorm:"constraint:OnDelete:CASCADE;foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Products   []*Product `gorm:"many2many:order_products" json:"products,omitempty"`

	// TotalAmount is the price sum snapshotted at creation. It is not kept
	// in sync with later product price changes; OrderTotal recomputes the
	// live value from current prices.
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;column:total_amount" json:"total_amount"`
	OrderDate   time.Time       `gorm:"not null;index;column:order_date" json:"order_date"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
