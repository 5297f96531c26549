package app

import (
	"context"
	"time"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/service"
	"github.com/Astemirdum/library-management/pkg/auth"
	"go.uber.org/zap"
)

type overdueSweeper interface {
	SweepOverdue(ctx context.Context, id auth.Identity) ([]model.OverdueLoan, error)
}

// runSweeper marks overdue loans missing every interval until ctx is done.
func runSweeper(ctx context.Context, svc overdueSweeper, interval time.Duration, log *zap.Logger) error {
	log = log.Named("sweeper")
	if interval <= 0 {
		log.Info("overdue sweep disabled")
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			res, err := svc.SweepOverdue(ctx, service.SystemIdentity)
			if err != nil {
				log.Error("sweep overdue", zap.Error(err))
				continue
			}
			log.Debug("sweep overdue", zap.Int("missing", len(res)))
		}
	}
}
