package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Refresher reloads a cached dataset and reports how many records it holds.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// CatalogueWarmer keeps the shared question catalogue cache warm so that
// searches rarely pay for a cold load.
type CatalogueWarmer struct {
	catalogue Refresher
	interval  time.Duration
}

// NewCatalogueWarmer creates a new catalogue warmer.
func NewCatalogueWarmer(catalogue Refresher, interval time.Duration) *CatalogueWarmer {
	return &CatalogueWarmer{catalogue: catalogue, interval: interval}
}

// Start refreshes immediately and then every interval until ctx is done.
func (w *CatalogueWarmer) Start(ctx context.Context) {
	slog.Info("catalogue warmer started", "interval", w.interval)

	// Run immediately on start
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("catalogue warmer stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CatalogueWarmer) refresh(ctx context.Context) {
	n, err := w.catalogue.Refresh(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Error("catalogue warmer: refresh failed", "error", err)
		return
	}
	slog.Debug("catalogue warmer: refreshed", "questions", n)
}
