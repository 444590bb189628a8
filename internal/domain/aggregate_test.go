package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderTotal(t *testing.T) {
	products := []*Product{
		{Name: "Laptop", Price: decimal.NewFromFloat(450)},
		{Name: "Desk", Price: decimal.NewFromFloat(750.50)},
	}
	if got := OrderTotal(products); !got.Equal(decimal.NewFromFloat(1200.50)) {
		t.Fatalf("expected 1200.50, got %s", got)
	}

	// A later price change is reflected on recomputation.
	products[0].Price = decimal.NewFromFloat(500)
	if got := OrderTotal(products); !got.Equal(decimal.NewFromFloat(1250.50)) {
		t.Fatalf("expected 1250.50 after price change, got %s", got)
	}

	if got := OrderTotal(nil); !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero for empty set, got %s", got)
	}
}

func TestIsLowStock(t *testing.T) {
	if !IsLowStock(&Product{Stock: 9}) {
		t.Fatal("stock 9 should be low")
	}
	if IsLowStock(&Product{Stock: 10}) {
		t.Fatal("stock 10 should not be low")
	}
	if IsLowStock(nil) {
		t.Fatal("nil product should not be low")
	}
}
