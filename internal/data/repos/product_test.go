package repos

import (
	"context"
	"testing"

	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
)

func TestProductRepoLowStock(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewProductRepo(db, testutil.Logger(t))

	low := testutil.SeedProduct(t, ctx, tx, "pr-low", 10, 2)
	edge := testutil.SeedProduct(t, ctx, tx, "pr-edge", 10, 10)
	testutil.SeedProduct(t, ctx, tx, "pr-high", 10, 42)

	rows, err := repo.GetLowStock(ctx, tx)
	if err != nil {
		t.Fatalf("GetLowStock: %v", err)
	}
	var sawLow, sawEdge bool
	for _, p := range rows {
		if p.ID == low.ID {
			sawLow = true
		}
		if p.ID == edge.ID {
			sawEdge = true
		}
	}
	if !sawLow {
		t.Fatal("stock 2 product should be low-stock")
	}
	if sawEdge {
		t.Fatal("stock 10 product is not low-stock, the threshold is strict")
	}

	low.Stock = 15
	if err := repo.Update(ctx, tx, low); err != nil {
		t.Fatalf("Update: %v", err)
	}
	reloaded, err := repo.GetByID(ctx, tx, low.ID)
	if err != nil || reloaded == nil || reloaded.Stock != 15 {
		t.Fatalf("GetByID after update: err=%v got=%+v", err, reloaded)
	}
}
