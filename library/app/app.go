package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-management/library/config"
	"github.com/Astemirdum/library-management/library/internal/handler"
	"github.com/Astemirdum/library-management/library/internal/queue"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/library/internal/server"
	"github.com/Astemirdum/library-management/library/internal/service"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/Astemirdum/library-management/pkg/circuit_breaker"
	"github.com/Astemirdum/library-management/pkg/kafka"
	"github.com/Astemirdum/library-management/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run serves the API until ctx is done or the process gets SIGINT/SIGTERM.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	seed, err := repository.LoadSeed(cfg.SeedFile)
	if err != nil {
		return errors.Wrap(err, "load seed")
	}
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	if err = seed.HashPasswords(hasher); err != nil {
		return err
	}
	repo, err := repository.NewRepository(seed, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	enqueuer, err := newEnqueuer(cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := enqueuer.Close(); err != nil {
			log.Warn("enqueuer close", zap.Error(err))
		}
	}()

	tokens := auth.NewTokenManager(cfg.Auth)
	svc := service.NewService(repo, hasher, tokens, log,
		service.WithEnqueuer(enqueuer, cfg.Kafka.LoanTopic))

	h := handler.New(svc, tokens, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	g.Go(func() error {
		return runSweeper(gctx, svc, cfg.SweepInterval, log)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

func newEnqueuer(cfg kafka.Config, log *zap.Logger) (queue.Enqueuer, error) {
	if !cfg.Enabled() {
		log.Info("kafka is not configured, loan events are dropped")
		return queue.NewNoop(), nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "kafka.NewProducer")
	}
	cb := circuit_breaker.NewCircuitBreaker(10, 30*time.Second, 0.5, 3)
	return queue.NewEnqueuer(producer, cb, log), nil
}
