package hotdealimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const warmupTimeout = 30 * time.Second

// ScheduleWarmup re-fetches the listing page on HOTDEAL_WARMUP_CRON so tool calls
// are served from the response cache. It does nothing when no schedule is set.
func (h *HotdealImpl) ScheduleWarmup(ctx context.Context) error {
	expr := h.Config.Hotdeal.WarmupCron
	if expr == "" {
		h.Logger.Debug("Hot deal warmup disabled")
		return nil
	}

	if h.Config.HTTP.CacheTTL <= 0 {
		h.Logger.Warn("Hot deal warmup requires HTTP_CACHE_TTL, skipping", "cron", expr)
		return nil
	}

	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.Local
		h.Logger.Warn("Failed to load Asia/Seoul timezone, using local timezone", "error", err)
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return fmt.Errorf("failed to create warmup scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(expr, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				h.Logger.Info("Context cancelled, stopping hot deal warmup job")
				return
			}
			h.warm(ctx)
		}),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule hot deal warmup: %w", err)
	}

	scheduler.Start()
	h.Logger.Info("Hot deal warmup scheduled", "cron", expr)

	go func() {
		<-ctx.Done()
		h.Logger.Info("Stopping hot deal warmup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			h.Logger.Error("Failed to shut down warmup scheduler", "error", err)
		}
	}()

	return nil
}

func (h *HotdealImpl) warm(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	body, err := h.Fetcher.Get(warmCtx, h.Config.Hotdeal.URL)
	if err != nil {
		h.Logger.Error("Hot deal warmup failed", "error", err)
		return
	}

	h.Logger.Debug("Hot deal listing warmed", "bytes", len(body))
}
