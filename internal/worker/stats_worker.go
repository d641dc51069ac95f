package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/service"
)

// StatsWorker recomputes the dashboard snapshot on a fixed interval so the
// cached copy stays warm even when nobody opens the dashboard.
type StatsWorker struct {
	reportService *service.ReportService
	interval      time.Duration
}

// NewStatsWorker constructs a StatsWorker.
func NewStatsWorker(reportService *service.ReportService, interval time.Duration) *StatsWorker {
	return &StatsWorker{
		reportService: reportService,
		interval:      interval,
	}
}

// Start begins the refresh loop and listens for context cancellation.
func (w *StatsWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting stats worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Stats worker stopped")
			return
		}
	}
}

func (w *StatsWorker) run(ctx context.Context) {
	if err := w.reportService.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh dashboard stats")
	}
}
