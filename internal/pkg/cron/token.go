package cron

import (
	"context"
	"log/slog"
	"time"
)

// TokenPruner drops revoked tokens whose expiry has passed.
type TokenPruner interface {
	PruneRevoked(now time.Time) int
}

type TokenJobs struct {
	pruner TokenPruner
	logger *slog.Logger
	now    func() time.Time
}

func NewTokenJobs(pruner TokenPruner, logger *slog.Logger) *TokenJobs {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenJobs{pruner: pruner, logger: logger, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_revoked_tokens", 15*time.Minute, j.PruneRevokedTokens)
}

func (j *TokenJobs) PruneRevokedTokens(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if pruned := j.pruner.PruneRevoked(j.now()); pruned > 0 {
		j.logger.Info("Cron: pruned revoked tokens", "count", pruned)
	}
	return nil
}
