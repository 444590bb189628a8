package main

import (
	"fmt"
	"os"

	"github.com/yungbote/crm-backend/internal/data/db"
	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/handlers"
	"github.com/yungbote/crm-backend/internal/jobs"
	"github.com/yungbote/crm-backend/internal/platform/envutil"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/server"
	"github.com/yungbote/crm-backend/internal/services"
)

func main() {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbService, err := db.NewService(log)
	if err != nil {
		log.Fatal("database init failed", "error", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Fatal("database auto migration failed", "error", err)
	}
	conn := dbService.DB()

	customerRepo := repos.NewCustomerRepo(conn, log)
	productRepo := repos.NewProductRepo(conn, log)
	orderRepo := repos.NewOrderRepo(conn, log)

	customerService := services.NewCustomerService(conn, log, customerRepo)
	productService := services.NewProductService(conn, log, productRepo)
	orderService := services.NewOrderService(conn, log, customerRepo, productRepo, orderRepo)
	queryService := services.NewQueryService(conn, log)
	reportService := services.NewReportService(conn, log, customerRepo, orderRepo)

	if envutil.Bool("CRON_ENABLED", true) {
		runner := jobs.NewRunner(log, productService, orderService, reportService)
		if err := runner.Start(); err != nil {
			log.Fatal("job runner failed to start", "error", err)
		}
		defer runner.Stop()
	}

	router := server.NewRouter(server.RouterConfig{
		CustomerHandler: handlers.NewCustomerHandler(customerService),
		ProductHandler:  handlers.NewProductHandler(productService),
		OrderHandler:    handlers.NewOrderHandler(orderService),
		QueryHandler:    handlers.NewQueryHandler(queryService),
	})

	port := envutil.String("PORT", "8000")
	log.Info("starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
