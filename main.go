package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"educa/config"
	"educa/database"
	"educa/logger"
	"educa/routers"
	"educa/utils"
)

func main() {
	config.LoadConfig()
	if err := logger.Init(config.AppConfig.AppEnv); err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	defer logger.Log.Sync()

	database.ConnectDb()
	db := database.Database.Db

	if err := database.SeedSubjects(db, config.AppConfig.SeedSubjects); err != nil {
		logger.Log.Fatal("Failed to seed subjects", "error", err)
	}

	grace := time.Duration(config.AppConfig.OrphanGraceMinutes) * time.Minute
	sweeper, err := utils.StartItemSweeper(db, config.AppConfig.SweepSchedule, grace)
	if err != nil {
		logger.Log.Fatal("Failed to start item sweeper", "error", err)
	}

	app := routers.NewApp()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logger.Log.Info("Shutting down")
		<-sweeper.Stop().Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("Shutdown failed", "error", err)
		}
	}()

	logger.Log.Info("Server is running", "port", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		logger.Log.Fatal("Server stopped", "error", err)
	}
}
