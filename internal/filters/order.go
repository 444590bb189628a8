package filters

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderFilter is the closed set of order criteria. Related-entity lookups and
// the computed-total bounds use correlated subqueries so they compose with
// each other without join de-duplication concerns.
type OrderFilter struct {
	OrderDateAfter       *time.Time
	OrderDateBefore      *time.Time
	CustomerNameContains *string
	ProductNameContains  *string
	ProductID            *uuid.UUID
	TotalAmountMin       *decimal.Decimal
	TotalAmountMax       *decimal.Decimal
	OrderBy              []OrderField
}

var orderOrderColumns = map[string]string{
	"order_date":   "order_date",
	"orderDate":    "order_date",
	"total_amount": "total_amount",
	"totalAmount":  "total_amount",
	"created_at":   "created_at",
	"createdAt":    "created_at",
}

// currentTotalExpr computes the order's total from current product prices.
// This deliberately ignores the stored total_amount snapshot so the bounds
// reflect prices as they are now.
const currentTotalExpr = "(SELECT COALESCE(SUM(p.price), 0) FROM product p " +
	"JOIN order_products op ON op.product_id = p.id WHERE op.order_id = orders.id)"

func parseOrderFilter(criteria map[string]string) (*OrderFilter, error) {
	f := &OrderFilter{}
	for key, value := range criteria {
		switch key {
		case "orderDateAfter":
			t, err := parseBound(key, value, false)
			if err != nil {
				return nil, err
			}
			f.OrderDateAfter = &t
		case "orderDateBefore":
			t, err := parseBound(key, value, true)
			if err != nil {
				return nil, err
			}
			f.OrderDateBefore = &t
		case "customerNameContains":
			v := value
			f.CustomerNameContains = &v
		case "productNameContains":
			v := value
			f.ProductNameContains = &v
		case "productId":
			id, err := parseUUID(key, value)
			if err != nil {
				return nil, err
			}
			f.ProductID = &id
		case "totalAmountMin":
			d, err := parseDecimal(key, value)
			if err != nil {
				return nil, err
			}
			f.TotalAmountMin = &d
		case "totalAmountMax":
			d, err := parseDecimal(key, value)
			if err != nil {
				return nil, err
			}
			f.TotalAmountMax = &d
		case "orderBy":
			fields, err := parseOrderBy(value, orderOrderColumns)
			if err != nil {
				return nil, err
			}
			f.OrderBy = fields
		default:
			return nil, unknownKey(key)
		}
	}
	return f, nil
}

func (f *OrderFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.OrderDateAfter != nil {
		q = q.Where("order_date >= ?", *f.OrderDateAfter)
	}
	if f.OrderDateBefore != nil {
		q = q.Where("order_date <= ?", *f.OrderDateBefore)
	}
	if f.CustomerNameContains != nil {
		q = q.Where("EXISTS (SELECT 1 FROM customer c WHERE c.id = orders.customer_id "+
			"AND LOWER(c.name) LIKE ?)", contains(*f.CustomerNameContains))
	}
	if f.ProductNameContains != nil {
		q = q.Where("EXISTS (SELECT 1 FROM order_products op "+
			"JOIN product p ON p.id = op.product_id "+
			"WHERE op.order_id = orders.id AND LOWER(p.name) LIKE ?)", contains(*f.ProductNameContains))
	}
	if f.ProductID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM order_products op "+
			"WHERE op.order_id = orders.id AND op.product_id = ?)", *f.ProductID)
	}
	if f.TotalAmountMin != nil {
		q = q.Where(currentTotalExpr+" >= ?", *f.TotalAmountMin)
	}
	if f.TotalAmountMax != nil {
		q = q.Where(currentTotalExpr+" <= ?", *f.TotalAmountMax)
	}
	return applyOrder(q, f.OrderBy, "orders.id")
}
