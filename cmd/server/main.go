package main

import (
	"log"
	"net/http"
	"os"

	_ "showroom/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"showroom/internal/cache"
	"showroom/internal/config"
	"showroom/internal/db"
	"showroom/internal/handler"
	"showroom/internal/model"
	"showroom/internal/repository"
	"showroom/internal/router"
	"showroom/internal/service"
)

// @title Car Showroom API
// @version 1.0
// @description Inventory management API for a car showroom with admin and buyer accounts.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Car{},
			&model.Admin{},
			&model.Buyer{},
			&model.Contact{},
			&model.Showroom{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Apply the schema before serving a single request
	if err := gormDB.AutoMigrate(
		&model.Showroom{},
		&model.Car{},
		&model.Admin{},
		&model.Buyer{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	carRepo := repository.NewCarRepository(gormDB)
	showroomRepo := repository.NewShowroomRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	buyerRepo := repository.NewBuyerRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize services
	carService := service.NewCarService(carRepo, showroomRepo, cacheClient)
	contactService := service.NewContactService(contactRepo)
	authService := service.NewAuthService(adminRepo, buyerRepo)
	showroomService := service.NewShowroomService(showroomRepo)

	// Initialize handlers
	carHandler := handler.NewCarHandler(carService)
	contactHandler := handler.NewContactHandler(contactService)
	authHandler := handler.NewAuthHandler(authService)
	showroomHandler := handler.NewShowroomHandler(showroomService)

	// Register routes
	router.Register(
		e,
		cfg,
		carHandler,
		contactHandler,
		authHandler,
		showroomHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
