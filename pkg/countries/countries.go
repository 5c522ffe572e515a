package countries

import (
	"context"
	"errors"
	"fmt"
)

// Country is a single guessable country. Values are immutable once handed to a round.
type Country struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	AlternativeNames []string `json:"alternative_names"`
	FlagURL          string   `json:"flag_url"`
	Continent        string   `json:"continent"`
	NameLength       int      `json:"name_length"`
}

// Provider supplies distinct random countries for a round.
type Provider interface {
	// GetRandomCountries returns exactly count distinct countries.
	GetRandomCountries(ctx context.Context, count int) ([]Country, error)
}

type ErrPoolTooSmall struct {
	Requested int
	Available int
}

func (e *ErrPoolTooSmall) Error() string {
	return fmt.Sprintf("requested %d countries but only %d are available", e.Requested, e.Available)
}

// IsPoolTooSmall reports whether err, or any error it wraps, is an ErrPoolTooSmall.
func IsPoolTooSmall(err error) bool {
	var target *ErrPoolTooSmall
	return errors.As(err, &target)
}

// Validate checks that a provider result has the requested size and no repeated IDs.
func Validate(list []Country, count int) error {
	if len(list) != count {
		return fmt.Errorf("expected %d countries, got %d", count, len(list))
	}
	seen := make(map[int]struct{}, len(list))
	for _, c := range list {
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("duplicate country %d (%s)", c.ID, c.Name)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
