package main

import (
	"time"

	"github.com/DragosAvidal/ADworktracker/internal/config"
	"github.com/DragosAvidal/ADworktracker/internal/db"
	"github.com/DragosAvidal/ADworktracker/internal/mq"
	"github.com/DragosAvidal/ADworktracker/internal/mqhandler"
	redisclient "github.com/DragosAvidal/ADworktracker/internal/redis"
	"github.com/DragosAvidal/ADworktracker/internal/repository"
	"github.com/DragosAvidal/ADworktracker/internal/util"

	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	logger.Info("Starting worker service...")

	// Init Redis
	rdb := redisclient.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	deduper := util.NewDeduper(rdb, time.Hour)

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	logger.Info("Database connection established")

	// Init Repositories
	auditRepo := repository.NewAuditLogRepository(dbConn, logger)

	// Init Handlers
	auditHandler := mqhandler.NewAuditHandler(auditRepo, logger, deduper)

	// (1) Consumer for logged activities
	logger.Info("Initializing activity consumer", zap.String("queue", "activity.logged.audit.q"))
	consumerActivity, err := mq.NewConsumer(cfg.MQ.URL, "activity.logged.audit.q", mq.RoutingKeyActivityLogged, logger)
	if err != nil {
		logger.Fatal("failed to init activity consumer", zap.Error(err))
	}
	consumerActivity.SetHandler(auditHandler.HandleActivityLogged)
	go func() {
		logger.Info("Starting activity consumer")
		if err := consumerActivity.StartConsuming(); err != nil {
			logger.Fatal("activity consumer failed", zap.Error(err))
		}
	}()
	defer consumerActivity.Close()

	// (2) Consumer for leave requests
	logger.Info("Initializing leave consumer", zap.String("queue", "leave.requested.audit.q"))
	consumerLeave, err := mq.NewConsumer(cfg.MQ.URL, "leave.requested.audit.q", mq.RoutingKeyLeaveRequested, logger)
	if err != nil {
		logger.Fatal("failed to init leave consumer", zap.Error(err))
	}
	consumerLeave.SetHandler(auditHandler.HandleLeaveRequested)
	go func() {
		logger.Info("Starting leave consumer")
		if err := consumerLeave.StartConsuming(); err != nil {
			logger.Fatal("leave consumer failed", zap.Error(err))
		}
	}()
	defer consumerLeave.Close()

	// (3) Consumer for logged expenses
	logger.Info("Initializing expense consumer", zap.String("queue", "expense.logged.audit.q"))
	consumerExpense, err := mq.NewConsumer(cfg.MQ.URL, "expense.logged.audit.q", mq.RoutingKeyExpenseLogged, logger)
	if err != nil {
		logger.Fatal("failed to init expense consumer", zap.Error(err))
	}
	consumerExpense.SetHandler(auditHandler.HandleExpenseLogged)
	go func() {
		logger.Info("Starting expense consumer")
		if err := consumerExpense.StartConsuming(); err != nil {
			logger.Fatal("expense consumer failed", zap.Error(err))
		}
	}()
	defer consumerExpense.Close()

	logger.Info("All consumers started, worker is ready to process messages")

	// Keep worker running
	select {}
}
