package rollover

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/metrics"
	"frontdesk/shared/stay"
	"frontdesk/shared/timezone"
)

const (
	cacheRolloverDay = "housekeeping:rollover"
	dayMarkerTTL     = 26 * 60 * 60

	ResultDone    = "done"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// Worker runs the housekeeping rollover once per local day.
type Worker struct {
	service  housekeepingService.Housekeeping
	cache    cache.RedisCache
	cfg      *config.Config
	now      func() time.Time
	interval time.Duration
	owner    string

	mu      sync.Mutex
	lastRun string
}

func New(service housekeepingService.Housekeeping, cache cache.RedisCache, cfg *config.Config) *Worker {
	interval := time.Duration(cfg.Housekeeping.CheckIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	owner, _ := os.Hostname()

	return &Worker{
		service:  service,
		cache:    cache,
		cfg:      cfg,
		now:      timezone.Now,
		interval: interval,
		owner:    owner,
	}
}

// Run blocks until ctx is cancelled. It attempts a rollover immediately and then on every tick.
func (w *Worker) Run(ctx context.Context) {
	if !w.cfg.Housekeeping.RolloverEnable {
		log.Info().Msg("housekeeping rollover worker disabled")

		return
	}

	log.Info().Dur("interval", w.interval).Int("hour", w.cfg.Housekeeping.RolloverHour).Int("minute", w.cfg.Housekeeping.RolloverMinute).Msg("housekeeping rollover worker started")

	w.tick(ctx, true)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx, false)
		case <-ctx.Done():
			log.Info().Msg("housekeeping rollover worker stopped")

			return
		}
	}
}

func (w *Worker) tick(ctx context.Context, startup bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := timezone.ToAppTime(w.now())
	day := stay.FormatDate(now)

	if w.lastRun == day {
		return
	}

	if !startup && !w.due(now) {
		return
	}

	key := shared.BuildCacheKey(cacheRolloverDay, day)

	claimed, err := w.cache.Claim(ctx, key, w.owner, dayMarkerTTL)
	if err != nil {
		log.Warn().Err(err).Str("date", day).Msg("rollover day marker unavailable, running anyway")

		claimed = true
	}

	if !claimed {
		log.Info().Str("date", day).Msg("rollover already claimed for today")
		metrics.IncRolloverRun(ResultSkipped)

		w.lastRun = day

		return
	}

	if _, err := w.service.Rollover(ctx, now); err != nil {
		log.Error().Err(err).Str("date", day).Msg("housekeeping rollover failed")
		metrics.IncRolloverRun(ResultFailed)

		if err := w.cache.Delete(context.WithoutCancel(ctx), key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to release rollover day marker")
		}

		return
	}

	metrics.IncRolloverRun(ResultDone)

	w.lastRun = day
}

// due reports whether now is at or after the configured rollover time.
func (w *Worker) due(now time.Time) bool {
	at := time.Date(now.Year(), now.Month(), now.Day(), w.cfg.Housekeeping.RolloverHour, w.cfg.Housekeeping.RolloverMinute, 0, 0, now.Location())

	return !now.Before(at)
}
