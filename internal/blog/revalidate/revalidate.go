// Package revalidate refreshes the cached post list on a fixed interval so
// pages keep serving data no older than the interval.
package revalidate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/platform/logging"
)

// DefaultInterval matches the page revalidation period.
const DefaultInterval = 60 * time.Second

const runTimeout = 30 * time.Second

// Target is the cache-backed post reader to refresh.
type Target interface {
	RevalidateAllPosts(ctx context.Context) ([]blog.Post, error)
}

// Revalidator runs RevalidateAllPosts on a schedule.
type Revalidator struct {
	target   Target
	interval time.Duration
	logger   *slog.Logger
}

// New builds a Revalidator. A nil logger discards output.
func New(target Target, interval time.Duration, logger *slog.Logger) *Revalidator {
	return &Revalidator{target: target, interval: interval, logger: logging.OrDiscard(logger)}
}

// Run schedules revalidation until ctx ends. A non-positive interval
// disables the job and Run simply waits for ctx.
func (r *Revalidator) Run(ctx context.Context) error {
	if r == nil || r.target == nil {
		return errors.New("revalidate target is required")
	}
	if r.interval <= 0 {
		r.logger.Info("post revalidation disabled")
		<-ctx.Done()
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			_ = r.RunOnce(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("revalidate-all-posts"),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("schedule revalidation: %w", err)
	}

	scheduler.Start()
	r.logger.Info("post revalidation scheduled", "interval", r.interval)

	<-ctx.Done()
	if err := scheduler.Shutdown(); err != nil {
		r.logger.Error("stop revalidation scheduler", "error", err)
		return fmt.Errorf("stop scheduler: %w", err)
	}
	return nil
}

// RunOnce refreshes the post list now.
func (r *Revalidator) RunOnce(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	start := time.Now()
	posts, err := r.target.RevalidateAllPosts(runCtx)
	if err != nil {
		r.logger.Warn("post revalidation failed", "error", err, "duration", time.Since(start))
		return err
	}
	r.logger.Debug("posts revalidated", "count", len(posts), "duration", time.Since(start))
	return nil
}
