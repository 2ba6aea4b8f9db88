package engine

import (
	"math/rand"
	"sort"
	"time"

	"maxclaim_backend/internal/routing/domain"
)

// SelectionMode controls how a winner is picked from the eligible set.
type SelectionMode string

const (
	// ModeHighestScore deterministically picks the max-score entry.
	ModeHighestScore SelectionMode = "highest_score"
	// ModeWeightedRandom samples proportionally to score.
	ModeWeightedRandom SelectionMode = "weighted_random"
)

// RandSource supplies uniform floats in [0, 1). Injected so tests can pin
// selection outcomes with deterministic sequences.
type RandSource interface {
	NextFloat() float64
}

type mathRandSource struct {
	rng *rand.Rand
}

func (s mathRandSource) NextFloat() float64 { return s.rng.Float64() }

// NewRandSource returns a time-seeded source for production use.
func NewRandSource() RandSource {
	return mathRandSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Selector picks winning partners from eligible sets.
type Selector struct {
	rand RandSource
}

// NewSelector creates a selector drawing from the provided source.
func NewSelector(src RandSource) *Selector {
	if src == nil {
		src = NewRandSource()
	}
	return &Selector{rand: src}
}

// SelectWinner picks one partner from the eligible set, or nil when the set
// is empty.
//
// In highest-score mode the input is re-sorted defensively since callers may
// pass unsorted results. In weighted-random mode each entry's probability is
// proportional to its score, so a zero-score partner is never selected.
func (s *Selector) SelectWinner(eligible []domain.RoutingResult, mode SelectionMode) *domain.RoutingResult {
	if len(eligible) == 0 {
		return nil
	}

	switch mode {
	case ModeWeightedRandom:
		return s.selectWeighted(eligible)
	default:
		return selectHighest(eligible)
	}
}

func selectHighest(eligible []domain.RoutingResult) *domain.RoutingResult {
	ranked := make([]domain.RoutingResult, len(eligible))
	copy(ranked, eligible)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	winner := ranked[0]
	return &winner
}

func (s *Selector) selectWeighted(eligible []domain.RoutingResult) *domain.RoutingResult {
	var totalWeight float64
	for _, entry := range eligible {
		totalWeight += entry.MatchScore
	}
	if totalWeight <= 0 {
		winner := eligible[0]
		return &winner
	}

	r := s.rand.NextFloat() * totalWeight
	for _, entry := range eligible {
		// A zero-score entry must have zero selection probability even when
		// the draw lands exactly on its boundary.
		if entry.MatchScore <= 0 {
			continue
		}
		r -= entry.MatchScore
		if r <= 0 {
			winner := entry
			return &winner
		}
	}

	// Float drift can leave r marginally positive after the walk.
	winner := eligible[0]
	return &winner
}
