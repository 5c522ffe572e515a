package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/repositories"
)

// Store persists stats per mode.
type Store interface {
	// Load returns the stored stats for mode, or nil if none exist.
	Load(ctx context.Context, mode types.Mode) (*Stats, error)
	Save(ctx context.Context, mode types.Mode, stats *Stats) error
}

// Key is the storage key for a mode's stats.
func Key(mode types.Mode) string {
	return fmt.Sprintf("flagGame_%sStats", mode)
}

// KVStore keeps stats as JSON documents in a repository. A nil repository
// behaves as an unavailable backend: loads yield nothing and saves are dropped.
type KVStore struct {
	repository repositories.Repository
}

var _ Store = &KVStore{}

func NewKVStore(repository repositories.Repository) *KVStore {
	return &KVStore{
		repository: repository,
	}
}

func (s *KVStore) Load(ctx context.Context, mode types.Mode) (*Stats, error) {
	if s.repository == nil {
		return nil, nil
	}
	b, err := s.repository.Get(ctx, Key(mode))
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s stats: %v", mode, err)
	}
	stats, err := Decode(b)
	if err != nil {
		log.Warn("Discarding corrupt %s stats: %v", mode, err)
		return nil, nil
	}
	return stats, nil
}

func (s *KVStore) Save(ctx context.Context, mode types.Mode, stats *Stats) error {
	if s.repository == nil {
		return nil
	}
	b, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal %s stats: %v", mode, err)
	}
	if err := s.repository.Set(ctx, Key(mode), b); err != nil {
		return fmt.Errorf("failed to set %s stats: %v", mode, err)
	}
	return nil
}

// Decode parses stored stats and fills in any missing baseline achievements.
func Decode(b []byte) (*Stats, error) {
	stats := &Stats{}
	if err := json.Unmarshal(b, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %v", err)
	}
	stats.normalize()
	return stats, nil
}
