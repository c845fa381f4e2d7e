package main

import (
	"log"

	"github.com/joho/godotenv"

	"readingtimer/internal/config"
	"readingtimer/internal/db"
	"readingtimer/internal/handler"
	"readingtimer/internal/repository"
	"readingtimer/internal/router"
	"readingtimer/internal/service"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg := config.Load()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	stepRepo := repository.NewStepRepository(database)

	adminService, err := service.NewAdminService(cfg.AdminPassword, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("init admin service: %v", err)
	}
	stepService := service.NewStepService(stepRepo)
	statsService := service.NewStatsService(stepRepo)

	stepHandler := handler.NewStepHandler(stepService)
	statsHandler := handler.NewStatsHandler(statsService)
	adminHandler := handler.NewAdminHandler(adminService)

	engine := router.New(adminService, stepHandler, statsHandler, adminHandler, cfg.CORSOrigins)
	log.Printf("backend listening on :%s", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
