package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/oportuna/oportuna-api/internal/api"
	"github.com/oportuna/oportuna-api/internal/config"
	"github.com/oportuna/oportuna-api/internal/db"
	"github.com/oportuna/oportuna-api/internal/logger"
	"github.com/oportuna/oportuna-api/internal/repository"
	"github.com/oportuna/oportuna-api/internal/repository/dao"
	"github.com/oportuna/oportuna-api/internal/sweeper"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sw := sweeper.New(
		repository.NewReservationRepository(dao.NewReservationDAO(postgresDB)),
		repository.NewImpulseRepository(dao.NewImpulseDAO(postgresDB)),
		conf.Sweeper.Interval,
	)
	go sw.Run(ctx)

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
