package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	communityapp "github.com/residence/backend/internal/application/community"
	financeapp "github.com/residence/backend/internal/application/finance"
	housingapp "github.com/residence/backend/internal/application/housing"
	identityapp "github.com/residence/backend/internal/application/identity"
	incidentapp "github.com/residence/backend/internal/application/incident"
	residenceapp "github.com/residence/backend/internal/application/residence"
	"github.com/residence/backend/internal/infrastructure/auth"
	"github.com/residence/backend/internal/infrastructure/config"
	"github.com/residence/backend/internal/infrastructure/logger"
	"github.com/residence/backend/internal/infrastructure/persistence"
	"github.com/residence/backend/internal/interfaces/http/handler"
	"github.com/residence/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	jwtService := auth.NewJWTService(cfg.JWT)
	hasher := auth.NewPasswordHasher()

	residenceRepo := persistence.NewGormResidenceRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	houseRepo := persistence.NewGormHouseRepository(db.DB)
	residentRepo := persistence.NewGormResidentRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	expenseImageRepo := persistence.NewGormExpenseImageRepository(db.DB)
	incidentRepo := persistence.NewGormIncidentRepository(db.DB)
	incidentCommentRepo := persistence.NewGormIncidentCommentRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	likeRepo := persistence.NewGormLikeRepository(db.DB)
	postCommentRepo := persistence.NewGormPostCommentRepository(db.DB)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(identityapp.NewAuthService(userRepo, jwtService, hasher)),
		Residence: handler.NewResidenceHandler(residenceapp.NewService(residenceRepo, settingsRepo)),
		House:     handler.NewHouseHandler(housingapp.NewHouseService(houseRepo, residentRepo)),
		Resident:  handler.NewResidentHandler(housingapp.NewResidentService(residentRepo, houseRepo)),
		User:      handler.NewUserHandler(identityapp.NewUserService(userRepo, hasher)),
		Payment:   handler.NewPaymentHandler(financeapp.NewPaymentService(paymentRepo, houseRepo, residentRepo)),
		Expense:   handler.NewExpenseHandler(financeapp.NewExpenseService(expenseRepo, expenseImageRepo)),
		Incident:  handler.NewIncidentHandler(incidentapp.NewService(incidentRepo, incidentCommentRepo, residentRepo)),
		Post:      handler.NewPostHandler(communityapp.NewService(postRepo, likeRepo, postCommentRepo, residentRepo)),
	}

	engine := router.New(cfg, log, jwtService, handlers)

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.App.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
