package services

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestReportSummaryFormat(t *testing.T) {
	r := &Report{
		TotalCustomers: 3,
		TotalOrders:    2,
		TotalRevenue:   decimal.NewFromFloat(1203),
		GeneratedAt:    time.Date(2025, 8, 1, 6, 0, 0, 0, time.UTC),
	}
	got := r.Summary()
	want := "2025-08-01 06:00:00 - Report: 3 customers, 2 orders, 1203 revenue"
	if got != want {
		t.Fatalf("summary format:\n got %q\nwant %q", got, want)
	}
}

func TestReportSummaryMentionsAllFigures(t *testing.T) {
	r := &Report{
		TotalCustomers: 10,
		TotalOrders:    7,
		TotalRevenue:   decimal.NewFromFloat(99.95),
		GeneratedAt:    time.Now().UTC(),
	}
	s := r.Summary()
	for _, frag := range []string{"10 customers", "7 orders", "99.95 revenue"} {
		if !strings.Contains(s, frag) {
			t.Fatalf("summary missing %q: %s", frag, s)
		}
	}
}
