package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/crm-backend/internal/data/db"
	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/platform/envutil"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/seed"
	"github.com/yungbote/crm-backend/internal/services"
)

func main() {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	path := envutil.String("SEED_FILE", "configs/seed.yaml")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	fixtures, err := seed.Load(path)
	if err != nil {
		log.Fatal("cannot load fixtures", "path", path, "error", err)
	}

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
	orderService := services.NewOrderService(conn, log, customerRepo, productRepo, orderRepo)

	seeder := seed.NewSeeder(conn, log, customerRepo, productRepo, orderService)
	if err := seeder.Apply(context.Background(), fixtures); err != nil {
		log.Fatal("seeding failed", "error", err)
	}
	log.Info("seeding complete", "file", path)
}
