package stats

import (
	"context"
	"sync"

	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/log"
)

// Aggregator folds finished rounds into per-mode stats held by a Store.
type Aggregator struct {
	store Store
	// mu makes each load-apply-save cycle indivisible.
	mu sync.Mutex
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{
		store: store,
	}
}

// Load returns the current stats for mode, or the baseline if none can be read.
func (a *Aggregator) Load(ctx context.Context, mode types.Mode) *Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadLocked(ctx, mode)
}

func (a *Aggregator) loadLocked(ctx context.Context, mode types.Mode) *Stats {
	if a.store == nil {
		return Baseline()
	}
	stats, err := a.store.Load(ctx, mode)
	if err != nil {
		log.Error("Failed to load %s stats, using baseline: %v", mode, err)
		return Baseline()
	}
	if stats == nil {
		return Baseline()
	}
	stats.normalize()
	return stats
}

// RecordRound applies outcome to the stored stats for its mode and saves the
// result. A failed save is logged and the updated stats are still returned.
func (a *Aggregator) RecordRound(ctx context.Context, outcome types.Outcome) (*Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	updated := a.loadLocked(ctx, outcome.Mode).Apply(outcome)
	if a.store != nil {
		if err := a.store.Save(ctx, outcome.Mode, updated); err != nil {
			log.Error("Failed to save %s stats: %v", outcome.Mode, err)
		}
	}
	log.Debug("Recorded %s round: games=%d high=%d", outcome.Mode, updated.GamesPlayed, updated.HighScore)
	return updated, nil
}
