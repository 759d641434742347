package main

import (
	"go.uber.org/zap"

	"github.com/residence/backend/internal/infrastructure/config"
	"github.com/residence/backend/internal/infrastructure/logger"
	"github.com/residence/backend/internal/infrastructure/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.NewForEnvironment(cfg.App.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	log.Info("running migrations", zap.String("database", cfg.Database.DBName))
	if err := persistence.Migrate(db.DB); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migrations complete")
}
