// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/store"
)

type locationCachePruneJob struct {
	cache store.LocationCache
	ttl   time.Duration
	now   func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewLocationCachePruneJob creates a job that deletes cached locations older
// than ttl on every tick. The job is idle until Start is called.
func NewLocationCachePruneJob(cache store.LocationCache, ttl time.Duration, log *logger.Logger) LocationCachePruneJob {
	if ttl <= 0 {
		ttl = config.DefaultCacheTTL
	}
	return &locationCachePruneJob{
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
		logger: log,
	}
}

// Start stops a running loop, then prunes every interval until ctx is
// cancelled or Stop is called. A non-positive interval falls back to
// config.DefaultCachePruneInterval.
func (j *locationCachePruneJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultCachePruneInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.prune(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. No-op when not running.
func (j *locationCachePruneJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *locationCachePruneJob) prune(ctx context.Context) {
	removed, err := j.cache.Prune(ctx, j.now().Add(-j.ttl))
	if err != nil {
		j.logger.Warn().Err(err).Str("func", "locationCachePruneJob.prune").Msg("location cache prune failed")
		return
	}
	if removed > 0 {
		j.logger.Debug().Str("func", "locationCachePruneJob.prune").Int64("removed", removed).Msg("pruned stale locations")
	}
}
