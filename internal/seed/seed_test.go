package seed

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFixtures = `customers:
  - name: Alice Example
    email: alice@example.com
    phone: "+15550001111"
  - name: Bob Example
    email: bob@example.com

products:
  - name: Laptop
    price: "1200.50"
    stock: 4
    description: 14-inch laptop
  - name: Mouse
    price: "25.00"
    stock: 30

orders:
  - customer_email: alice@example.com
    product_names: [Laptop, Mouse]
`

func TestLoadParsesFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(sampleFixtures), 0o644); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Customers) != 2 || len(f.Products) != 2 || len(f.Orders) != 1 {
		t.Fatalf("unexpected counts: %d customers, %d products, %d orders",
			len(f.Customers), len(f.Products), len(f.Orders))
	}
	if f.Customers[0].Phone != "+15550001111" {
		t.Errorf("phone = %q", f.Customers[0].Phone)
	}
	if f.Products[0].Price != "1200.50" {
		t.Errorf("price kept as string, got %q", f.Products[0].Price)
	}
	if f.Orders[0].CustomerEmail != "alice@example.com" || len(f.Orders[0].ProductNames) != 2 {
		t.Errorf("order fixture mismatch: %+v", f.Orders[0])
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("customers: [::"), 0o644); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
