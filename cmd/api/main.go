package main

import (
	"log"

	"github.com/DragosAvidal/ADworktracker/internal/config"
	"github.com/DragosAvidal/ADworktracker/internal/db"
	"github.com/DragosAvidal/ADworktracker/internal/handler"
	"github.com/DragosAvidal/ADworktracker/internal/httpserver"
	"github.com/DragosAvidal/ADworktracker/internal/mq"
	"github.com/DragosAvidal/ADworktracker/internal/report"
	"github.com/DragosAvidal/ADworktracker/internal/repository"
	"github.com/DragosAvidal/ADworktracker/internal/service"
	"github.com/DragosAvidal/ADworktracker/internal/util"

	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init RabbitMQ Producer
	producer, err := mq.NewProducer(cfg.MQ.URL)
	if err != nil {
		log.Fatalf("failed to init producer: %v", err)
	}
	defer producer.Close()

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn)
	activityRepo := repository.NewActivityRepository(dbConn, logger)
	leaveRepo := repository.NewLeaveRepository(dbConn, logger)
	expenseRepo := repository.NewExpenseRepository(dbConn, logger)

	// Init Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	activityService := service.NewActivityService(activityRepo, producer, logger)
	leaveService := service.NewLeaveService(leaveRepo, producer, logger)
	expenseService := service.NewExpenseService(expenseRepo, producer, logger)
	reportService := report.NewService(activityRepo)
	dashboardService := service.NewDashboardService(userRepo, activityRepo)

	// Init Handlers
	authHandler := handler.NewAuthHandler(authService)
	activityHandler := handler.NewActivityHandler(activityService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	reportHandler := handler.NewReportHandler(reportService, activityRepo)
	exportHandler := handler.NewExportHandler(userRepo, activityRepo, expenseRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Router
	router := httpserver.NewRouter(
		authHandler,
		activityHandler,
		leaveHandler,
		expenseHandler,
		reportHandler,
		exportHandler,
		dashboardHandler,
		cfg.JWT.Secret,
	)

	// Start API server
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
