package domain

import "github.com/shopspring/decimal"

const (
	// LowStockThreshold marks a product as low-stock when its stock is
	// strictly below this value.
	LowStockThreshold = 10

	// RestockQuantity is added to each low-stock product on a restock pass.
	RestockQuantity = 10
)

// OrderTotal sums the current prices of the given products. Callers pass the
// freshly loaded products of an order; the result reflects current prices and
// may differ from the order's stored total_amount snapshot.
func OrderTotal(products []*Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if p == nil {
			continue
		}
		total = total.Add(p.Price)
	}
	return total
}

func IsLowStock(p *Product) bool {
	return p != nil && p.Stock < LowStockThreshold
}
