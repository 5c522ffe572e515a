package countries

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

//go:embed data/countries.json
var defaultPoolJSON []byte

// PoolProvider draws random countries from a fixed in-memory pool.
type PoolProvider struct {
	pool []Country

	mu  sync.Mutex
	rng *rand.Rand
}

var _ Provider = &PoolProvider{}

type NewPoolProviderOptions struct {
	// Pool overrides the embedded country list.
	Pool []Country
	// Seed makes the draw order deterministic when non-zero.
	Seed int64
}

// NewPoolProvider creates a provider backed by the embedded country list unless a pool is given.
// Countries sharing an ID are collapsed to their first occurrence.
func NewPoolProvider(opts NewPoolProviderOptions) (*PoolProvider, error) {
	pool := opts.Pool
	if pool == nil {
		var err error
		pool, err = DefaultPool()
		if err != nil {
			return nil, err
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &PoolProvider{
		pool: dedupe(pool),
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// DefaultPool decodes the embedded country list.
func DefaultPool() ([]Country, error) {
	var pool []Country
	if err := json.Unmarshal(defaultPoolJSON, &pool); err != nil {
		return nil, fmt.Errorf("failed to decode embedded countries: %v", err)
	}
	return pool, nil
}

func dedupe(pool []Country) []Country {
	seen := make(map[int]struct{}, len(pool))
	out := make([]Country, 0, len(pool))
	for _, c := range pool {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (p *PoolProvider) Size() int {
	return len(p.pool)
}

func (p *PoolProvider) GetRandomCountries(ctx context.Context, count int) ([]Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("invalid country count %d", count)
	}
	if count > len(p.pool) {
		return nil, &ErrPoolTooSmall{Requested: count, Available: len(p.pool)}
	}

	p.mu.Lock()
	order := p.rng.Perm(len(p.pool))
	p.mu.Unlock()

	out := make([]Country, count)
	for i := 0; i < count; i++ {
		c := p.pool[order[i]]
		c.AlternativeNames = append([]string(nil), c.AlternativeNames...)
		out[i] = c
	}
	return out, nil
}
