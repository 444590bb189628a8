package filters

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
)

// ProductFilter is the closed set of product criteria.
type ProductFilter struct {
	Name     *string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	StockMin *int
	StockMax *int
	LowStock *bool
	OrderBy  []OrderField
}

var productOrderColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

func parseProductFilter(criteria map[string]string) (*ProductFilter, error) {
	f := &ProductFilter{}
	for key, value := range criteria {
		switch key {
		case "name":
			v := value
			f.Name = &v
		case "priceMin":
			d, err := parseDecimal(key, value)
			if err != nil {
				return nil, err
			}
			f.PriceMin = &d
		case "priceMax":
			d, err := parseDecimal(key, value)
			if err != nil {
				return nil, err
			}
			f.PriceMax = &d
		case "stockMin":
			i, err := parseInt(key, value)
			if err != nil {
				return nil, err
			}
			f.StockMin = &i
		case "stockMax":
			i, err := parseInt(key, value)
			if err != nil {
				return nil, err
			}
			f.StockMax = &i
		case "lowStock":
			b, err := parseBool(key, value)
			if err != nil {
				return nil, err
			}
			f.LowStock = &b
		case "orderBy":
			fields, err := parseOrderBy(value, productOrderColumns)
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

func (f *ProductFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Name != nil {
		q = q.Where("LOWER(name) LIKE ?", contains(*f.Name))
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.StockMin != nil {
		q = q.Where("stock >= ?", *f.StockMin)
	}
	if f.StockMax != nil {
		q = q.Where("stock <= ?", *f.StockMax)
	}
	// lowStock=false is a no-op rather than an inverse restriction.
	if f.LowStock != nil && *f.LowStock {
		q = q.Where("stock < ?", domain.LowStockThreshold)
	}
	return applyOrder(q, f.OrderBy, "id")
}
