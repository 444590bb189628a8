// Package jobs runs the scheduled back-office tasks: a liveness heartbeat,
// the low-stock restock pass, the weekly business report and daily order
// reminders. The jobs are plain glue over the services; all business rules
// stay in the service layer.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yungbote/crm-backend/internal/platform/envutil"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

const jobTimeout = 2 * time.Minute

type Runner struct {
	cron           *cron.Cron
	log            *logger.Logger
	productService services.ProductService
	orderService   services.OrderService
	reportService  services.ReportService

	heartbeatLog string
	lowStockLog  string
	reportLog    string
	remindersLog string
	healthURL    string
	webhookURL   string
}

func NewRunner(log *logger.Logger, productService services.ProductService, orderService services.OrderService, reportService services.ReportService) *Runner {
	return &Runner{
		cron:           cron.New(),
		log:            log.With("component", "JobRunner"),
		productService: productService,
		orderService:   orderService,
		reportService:  reportService,

		heartbeatLog: envutil.String("HEARTBEAT_LOG", "/tmp/crm_heartbeat_log.txt"),
		lowStockLog:  envutil.String("LOW_STOCK_LOG", "/tmp/low_stock_updates_log.txt"),
		reportLog:    envutil.String("REPORT_LOG", "/tmp/crm_report_log.txt"),
		remindersLog: envutil.String("ORDER_REMINDERS_LOG", "/tmp/order_reminders_log.txt"),
		healthURL:    envutil.String("HEALTHCHECK_URL", ""),
		webhookURL:   envutil.String("REPORT_WEBHOOK_URL", ""),
	}
}

func (r *Runner) Start() error {
	schedules := []struct {
		spec string
		name string
		fn   func(context.Context)
	}{
		{"*/5 * * * *", "heartbeat", r.Heartbeat},
		{"0 */12 * * *", "low_stock_restock", r.RestockLowStock},
		{"0 6 * * 1", "crm_report", r.GenerateReport},
		{"0 8 * * *", "order_reminders", r.SendOrderReminders},
	}
	for _, s := range schedules {
		s := s
		if _, err := r.cron.AddFunc(s.spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			r.log.Debug("running scheduled job", "job", s.name)
			s.fn(ctx)
		}); err != nil {
			return err
		}
	}
	r.cron.Start()
	r.log.Info("job runner started", "jobs", len(schedules))
	return nil
}

func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info("job runner stopped")
}
