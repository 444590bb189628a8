package filters

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/domain"
)

func TestParseRejectsUnknownCriteria(t *testing.T) {
	for _, entity := range []Entity{EntityCustomer, EntityProduct, EntityOrder} {
		_, err := Parse(entity, map[string]string{"nope": "x"})
		var ferr *domain.InvalidFilterError
		if !errors.As(err, &ferr) {
			t.Fatalf("%s: expected InvalidFilterError, got %v", entity, err)
		}
		if ferr.Key != "nope" {
			t.Fatalf("%s: expected offending key in error, got %q", entity, ferr.Key)
		}
	}
}

func TestParseEmptySpec(t *testing.T) {
	for _, entity := range []Entity{EntityCustomer, EntityProduct, EntityOrder} {
		f, err := Parse(entity, nil)
		if err != nil {
			t.Fatalf("%s: empty spec should parse, got %v", entity, err)
		}
		if f == nil {
			t.Fatalf("%s: expected a filter", entity)
		}
	}
}

func TestParseCustomerFilter(t *testing.T) {
	f, err := parseCustomerFilter(map[string]string{
		"name":            "ali",
		"email":           "example.com",
		"createdAfter":    "2025-01-01",
		"createdBefore":   "2025-06-30",
		"phoneStartsWith": "+1",
		"orderBy":         "-created_at,name",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Name == nil || *f.Name != "ali" {
		t.Fatalf("name not captured: %+v", f)
	}
	if f.CreatedAfter == nil || !f.CreatedAfter.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("createdAfter wrong: %v", f.CreatedAfter)
	}
	// Upper date bound is inclusive through the whole day.
	if f.CreatedBefore == nil || f.CreatedBefore.Before(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("createdBefore should cover the full day: %v", f.CreatedBefore)
	}
	if len(f.OrderBy) != 2 || !f.OrderBy[0].Desc || f.OrderBy[0].Column != "created_at" || f.OrderBy[1].Desc {
		t.Fatalf("orderBy wrong: %+v", f.OrderBy)
	}
}

func TestParseProductFilterValues(t *testing.T) {
	f, err := parseProductFilter(map[string]string{
		"priceMin": "100",
		"priceMax": "500.25",
		"stockMin": "1",
		"lowStock": "true",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.PriceMin == nil || f.PriceMin.String() != "100" {
		t.Fatalf("priceMin wrong: %+v", f.PriceMin)
	}
	if f.LowStock == nil || !*f.LowStock {
		t.Fatalf("lowStock wrong: %+v", f.LowStock)
	}

	for key, value := range map[string]string{
		"priceMin": "abc",
		"stockMax": "1.5",
		"lowStock": "maybe",
	} {
		_, err := parseProductFilter(map[string]string{key: value})
		var ferr *domain.InvalidFilterError
		if !errors.As(err, &ferr) || ferr.Key != key {
			t.Fatalf("%s=%s: expected InvalidFilterError for key, got %v", key, value, err)
		}
	}
}

func TestParseOrderFilterValues(t *testing.T) {
	id := uuid.New()
	f, err := parseOrderFilter(map[string]string{
		"productId":      id.String(),
		"totalAmountMin": "1000",
		"orderBy":        "-total_amount",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.ProductID == nil || *f.ProductID != id {
		t.Fatalf("productId wrong: %+v", f.ProductID)
	}

	if _, err := parseOrderFilter(map[string]string{"productId": "not-a-uuid"}); err == nil {
		t.Fatal("bad uuid should be rejected")
	}
	if _, err := parseOrderFilter(map[string]string{"orderBy": "customer_name"}); err == nil {
		t.Fatal("unknown orderBy field should be rejected")
	}
}

func TestLikeEscaping(t *testing.T) {
	if got := contains("50%_off"); got != `%50\%\_off%` {
		t.Fatalf("contains escaping wrong: %q", got)
	}
	if got := prefix("+1"); got != `+1%` {
		t.Fatalf("prefix wrong: %q", got)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	c := EncodeCursor(150)
	p := &PageRequest{Cursor: c, Limit: 25}
	off, err := p.Offset()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if off != 150 {
		t.Fatalf("expected offset 150, got %d", off)
	}
	if p.EffectiveLimit() != 25 {
		t.Fatalf("expected limit 25, got %d", p.EffectiveLimit())
	}

	empty := &PageRequest{}
	if off, err := empty.Offset(); err != nil || off != 0 {
		t.Fatalf("empty cursor should mean start, got %d %v", off, err)
	}
	if empty.EffectiveLimit() != DefaultPageSize {
		t.Fatalf("expected default limit, got %d", empty.EffectiveLimit())
	}

	bad := &PageRequest{Cursor: "!!!"}
	if _, err := bad.Offset(); err == nil {
		t.Fatal("malformed cursor should be rejected")
	}
	var ferr *domain.InvalidFilterError
	_, err = (&PageRequest{Cursor: "bm9wZQ"}).Offset()
	if !errors.As(err, &ferr) {
		t.Fatalf("expected InvalidFilterError, got %v", err)
	}
}
