package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/filters"
)

func newQueryService(t *testing.T) (QueryService, *gorm.DB, context.Context) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	return NewQueryService(tx, testutil.Logger(t)), tx, context.Background()
}

func listProducts(t *testing.T, svc QueryService, ctx context.Context, criteria map[string]string, page *filters.PageRequest) []*domain.Product {
	t.Helper()
	res, err := svc.List(ctx, filters.EntityProduct, criteria, page)
	if err != nil {
		t.Fatalf("List(product, %v): %v", criteria, err)
	}
	return res.Items.([]*domain.Product)
}

func TestListProductsPriceRange(t *testing.T) {
	svc, tx, ctx := newQueryService(t)

	cheap := testutil.SeedProduct(t, ctx, tx, "qr-cheap", 50, 1)
	mid := testutil.SeedProduct(t, ctx, tx, "qr-mid", 250, 1)
	edgeLow := testutil.SeedProduct(t, ctx, tx, "qr-edge-low", 100, 1)
	edgeHigh := testutil.SeedProduct(t, ctx, tx, "qr-edge-high", 500, 1)
	dear := testutil.SeedProduct(t, ctx, tx, "qr-dear", 900, 1)

	rows := listProducts(t, svc, ctx, map[string]string{
		"name":     "qr-",
		"priceMin": "100",
		"priceMax": "500",
	}, nil)

	got := map[uuid.UUID]bool{}
	for _, p := range rows {
		got[p.ID] = true
	}
	for _, want := range []*domain.Product{mid, edgeLow, edgeHigh} {
		if !got[want.ID] {
			t.Fatalf("bounds are inclusive, missing %s", want.Name)
		}
	}
	if got[cheap.ID] || got[dear.ID] {
		t.Fatalf("out-of-range product returned: %v", rows)
	}
}

func TestListProductsConflictingBoundsYieldEmpty(t *testing.T) {
	svc, tx, ctx := newQueryService(t)
	testutil.SeedProduct(t, ctx, tx, "qc-item", 200, 1)

	rows := listProducts(t, svc, ctx, map[string]string{
		"name":     "qc-",
		"priceMin": "500",
		"priceMax": "100",
	}, nil)
	if len(rows) != 0 {
		t.Fatalf("min > max should yield empty set, got %d rows", len(rows))
	}
}

func TestListProductsLowStockAndOrdering(t *testing.T) {
	svc, tx, ctx := newQueryService(t)

	a := testutil.SeedProduct(t, ctx, tx, "ql-a", 10, 3)
	b := testutil.SeedProduct(t, ctx, tx, "ql-b", 20, 9)
	testutil.SeedProduct(t, ctx, tx, "ql-c", 30, 40)

	rows := listProducts(t, svc, ctx, map[string]string{
		"name":     "ql-",
		"lowStock": "true",
		"orderBy":  "-price",
	}, nil)
	if len(rows) != 2 {
		t.Fatalf("expected 2 low-stock rows, got %d", len(rows))
	}
	if rows[0].ID != b.ID || rows[1].ID != a.ID {
		t.Fatalf("descending price order expected, got %v then %v", rows[0].Name, rows[1].Name)
	}
}

func TestListPagination(t *testing.T) {
	svc, tx, ctx := newQueryService(t)

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 5; i++ {
		p := testutil.SeedProduct(t, ctx, tx, "qp-item", float64(10+i), 1)
		seen[p.ID] = false
	}

	page := &filters.PageRequest{Limit: 2}
	criteria := map[string]string{"name": "qp-"}
	for steps := 0; ; steps++ {
		if steps > 5 {
			t.Fatal("pagination did not terminate")
		}
		res, err := svc.List(ctx, filters.EntityProduct, criteria, page)
		if err != nil {
			t.Fatalf("List page: %v", err)
		}
		for _, p := range res.Items.([]*domain.Product) {
			if _, ours := seen[p.ID]; ours {
				seen[p.ID] = true
			}
		}
		if res.NextCursor == "" {
			break
		}
		page = &filters.PageRequest{Cursor: res.NextCursor, Limit: 2}
	}
	for id, found := range seen {
		if !found {
			t.Fatalf("product %s never appeared across pages", id)
		}
	}
}

func TestListUnknownCriterionFailsBeforeQuery(t *testing.T) {
	svc, _, ctx := newQueryService(t)

	_, err := svc.List(ctx, filters.EntityCustomer, map[string]string{"age": "40"}, nil)
	var ferr *domain.InvalidFilterError
	if !errors.As(err, &ferr) || ferr.Key != "age" {
		t.Fatalf("expected InvalidFilterError naming the key, got %v", err)
	}
}

func TestListOrdersRelatedAndComputedCriteria(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	svc := NewQueryService(tx, log)
	ctx := context.Background()

	alice := testutil.SeedCustomer(t, ctx, tx, "qo-Alice", "qo.alice@example.com")
	bob := testutil.SeedCustomer(t, ctx, tx, "qo-Bob", "qo.bob@example.com")
	laptop := testutil.SeedProduct(t, ctx, tx, "qo-Laptop", 450, 5)
	desk := testutil.SeedProduct(t, ctx, tx, "qo-Desk", 750.50, 5)
	pen := testutil.SeedProduct(t, ctx, tx, "qo-Pen", 2.50, 100)

	big := testutil.SeedOrder(t, ctx, tx, alice, laptop, desk)
	small := testutil.SeedOrder(t, ctx, tx, bob, pen)

	listOrders := func(criteria map[string]string) map[uuid.UUID]int {
		res, err := svc.List(ctx, filters.EntityOrder, criteria, nil)
		if err != nil {
			t.Fatalf("List(order, %v): %v", criteria, err)
		}
		out := map[uuid.UUID]int{}
		for _, o := range res.Items.([]*domain.Order) {
			out[o.ID]++
		}
		return out
	}

	byCustomer := listOrders(map[string]string{"customerNameContains": "qo-ali"})
	if byCustomer[big.ID] != 1 || byCustomer[small.ID] != 0 {
		t.Fatalf("customerNameContains wrong: %v", byCustomer)
	}

	byProductName := listOrders(map[string]string{"productNameContains": "qo-lap"})
	if byProductName[big.ID] != 1 || byProductName[small.ID] != 0 {
		t.Fatalf("productNameContains wrong: %v", byProductName)
	}

	// An order with two matching products must still appear once.
	byProductID := listOrders(map[string]string{"productId": laptop.ID.String()})
	if byProductID[big.ID] != 1 {
		t.Fatalf("productId filter should return the order exactly once: %v", byProductID)
	}

	// Total bounds are computed from current prices, not the snapshot.
	if err := tx.Model(&domain.Product{}).Where("id = ?", laptop.ID).
		Update("price", decimal.NewFromInt(500)).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}
	byTotal := listOrders(map[string]string{"totalAmountMin": "1250"})
	if byTotal[big.ID] != 1 {
		t.Fatalf("computed total should reflect the raised price: %v", byTotal)
	}
	if byTotal[small.ID] != 0 {
		t.Fatalf("small order should not pass the bound: %v", byTotal)
	}
}
