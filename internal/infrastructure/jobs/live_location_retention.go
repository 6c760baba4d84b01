package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"homeservice.backend/pkg/logger"
	"homeservice.backend/pkg/metrics"
)

type locationPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// LiveLocationRetentionJob prunes location samples older than the retention window
type LiveLocationRetentionJob struct {
	repo      locationPruner
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
	stop      chan struct{}
	stopOnce  sync.Once
}

func NewLiveLocationRetentionJob(repo locationPruner, retention, interval time.Duration) *LiveLocationRetentionJob {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &LiveLocationRetentionJob{
		repo:      repo,
		retention: retention,
		interval:  interval,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
}

// Enabled reports whether a retention window is configured.
func (j *LiveLocationRetentionJob) Enabled() bool {
	return j.retention > 0
}

// Start blocks until ctx is cancelled or Stop is called.
func (j *LiveLocationRetentionJob) Start(ctx context.Context) {
	if !j.Enabled() {
		logger.Info(ctx, "Live location retention disabled")
		return
	}
	logger.Info(ctx, "Starting live location retention job",
		zap.Duration("retention", j.retention),
		zap.Duration("interval", j.interval),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Live location retention job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Live location retention job stopped")
			return
		case <-ticker.C:
			j.prune(ctx)
		}
	}
}

func (j *LiveLocationRetentionJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *LiveLocationRetentionJob) prune(ctx context.Context) {
	cutoff := j.now().Add(-j.retention)
	n, err := j.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error(ctx, "Failed to prune live locations", zap.Error(err))
		return
	}
	if n == 0 {
		return
	}
	metrics.LocationsPruned.Add(float64(n))
	logger.Info(ctx, "Pruned live locations", zap.Int64("count", n), zap.Time("cutoff", cutoff))
}
