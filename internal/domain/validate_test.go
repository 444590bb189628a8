package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestValidateCustomer(t *testing.T) {
	valid := &Customer{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"}
	if v := ValidateCustomer(valid); len(v) != 0 {
		t.Fatalf("expected valid, got %v", v)
	}

	dashed := &Customer{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"}
	if v := ValidateCustomer(dashed); len(v) != 0 {
		t.Fatalf("dashed phone should be accepted, got %v", v)
	}

	noPhone := &Customer{Name: "Carol", Email: "carol@example.com"}
	if v := ValidateCustomer(noPhone); len(v) != 0 {
		t.Fatalf("phone is optional, got %v", v)
	}

	missing := &Customer{}
	if v := ValidateCustomer(missing); len(v) != 2 {
		t.Fatalf("expected name and email violations, got %v", v)
	}

	badEmail := &Customer{Name: "Dan", Email: "not-an-email"}
	if v := ValidateCustomer(badEmail); len(v) != 1 {
		t.Fatalf("expected email violation, got %v", v)
	}

	for _, phone := range []string{"12345", "+"+"1234567890123456", "12-34-56", "(123) 456-7890"} {
		c := &Customer{Name: "Eve", Email: "eve@example.com", Phone: phone}
		if v := ValidateCustomer(c); len(v) != 1 {
			t.Fatalf("phone %q should be rejected, got %v", phone, v)
		}
	}
}

func TestValidateProduct(t *testing.T) {
	valid := &Product{Name: "Laptop", Price: decimal.NewFromFloat(999.99), Stock: 4}
	if v := ValidateProduct(valid); len(v) != 0 {
		t.Fatalf("expected valid, got %v", v)
	}

	zeroPrice := &Product{Name: "Free", Price: decimal.Zero}
	if v := ValidateProduct(zeroPrice); len(v) != 1 {
		t.Fatalf("zero price should be rejected, got %v", v)
	}

	negStock := &Product{Name: "Ghost", Price: decimal.NewFromInt(5), Stock: -1}
	if v := ValidateProduct(negStock); len(v) != 1 {
		t.Fatalf("negative stock should be rejected, got %v", v)
	}
}

func TestValidateOrder(t *testing.T) {
	o := &Order{CustomerID: uuid.New(), Products: []*Product{{}}}
	if v := ValidateOrder(o); len(v) != 0 {
		t.Fatalf("expected valid, got %v", v)
	}

	empty := &Order{}
	if v := ValidateOrder(empty); len(v) != 2 {
		t.Fatalf("expected customer and products violations, got %v", v)
	}
}
