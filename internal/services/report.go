package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// Report is a point-in-time business summary: entity counts plus revenue,
// where revenue is the sum of stored order totals (creation-time snapshots).
type Report struct {
	TotalCustomers int64           `json:"total_customers"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

func (r *Report) Summary() string {
	return fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
		r.GeneratedAt.Format("2006-01-02 15:04:05"),
		r.TotalCustomers, r.TotalOrders, r.TotalRevenue)
}

type ReportService interface {
	Generate(ctx context.Context) (*Report, error)
}

type reportService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	orderRepo    repos.OrderRepo
}

func NewReportService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo, orderRepo repos.OrderRepo) ReportService {
	return &reportService{
		db:           db,
		log:          log.With("service", "ReportService"),
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (s *reportService) Generate(ctx context.Context) (*Report, error) {
	report := &Report{GeneratedAt: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.customerRepo.Count(gctx, nil)
		report.TotalCustomers = n
		return err
	})
	g.Go(func() error {
		n, err := s.orderRepo.Count(gctx, nil)
		report.TotalOrders = n
		return err
	})
	g.Go(func() error {
		sum, err := s.orderRepo.SumTotalAmount(gctx, nil)
		report.TotalRevenue = sum
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error generating report: %w", err)
	}

	s.log.Info("report generated",
		"customers", report.TotalCustomers,
		"orders", report.TotalOrders,
		"revenue", report.TotalRevenue)
	return report, nil
}
