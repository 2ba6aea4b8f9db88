package engine

import (
	"testing"

	"maxclaim_backend/internal/routing/domain"

	"github.com/google/uuid"
)

// seqSource replays a fixed sequence of draws.
type seqSource struct {
	values []float64
	idx    int
}

func (s *seqSource) NextFloat() float64 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

func results(scores ...float64) []domain.RoutingResult {
	out := make([]domain.RoutingResult, len(scores))
	for i, score := range scores {
		out[i] = domain.RoutingResult{
			PartnerID:  uuid.New(),
			MatchScore: score,
		}
	}
	return out
}

func TestSelectWinner_EmptyInputReturnsNil(t *testing.T) {
	s := NewSelector(nil)
	if s.SelectWinner(nil, ModeHighestScore) != nil {
		t.Fatal("expected nil for empty input in highest_score mode")
	}
	if s.SelectWinner(nil, ModeWeightedRandom) != nil {
		t.Fatal("expected nil for empty input in weighted_random mode")
	}
}

func TestSelectWinner_HighestScorePicksMaxFromUnsortedInput(t *testing.T) {
	entries := results(40, 95, 70)
	s := NewSelector(nil)

	winner := s.SelectWinner(entries, ModeHighestScore)
	if winner == nil || winner.MatchScore != 95 {
		t.Fatalf("expected max-score winner, got %+v", winner)
	}
}

func TestSelectWinner_WeightedRandomFollowsDraw(t *testing.T) {
	entries := results(10, 30, 60)

	// Draw 0.05: r = 5, first entry's 10 exhausts it.
	s := NewSelector(&seqSource{values: []float64{0.05}})
	if winner := s.SelectWinner(entries, ModeWeightedRandom); winner.PartnerID != entries[0].PartnerID {
		t.Fatal("expected first entry for low draw")
	}

	// Draw 0.5: r = 50, walks past 10 and 30, lands on the third.
	s = NewSelector(&seqSource{values: []float64{0.5}})
	if winner := s.SelectWinner(entries, ModeWeightedRandom); winner.PartnerID != entries[2].PartnerID {
		t.Fatal("expected third entry for mid draw")
	}
}

func TestSelectWinner_ZeroScoreNeverSelected(t *testing.T) {
	entries := results(0, 50)
	s := NewSelector(&seqSource{values: []float64{0.0, 0.25, 0.5, 0.75, 0.999}})

	for i := 0; i < 5; i++ {
		winner := s.SelectWinner(entries, ModeWeightedRandom)
		if winner.PartnerID == entries[0].PartnerID {
			t.Fatal("zero-score entry must have zero selection probability")
		}
	}
}

func TestSelectWinner_AllZeroScoresFallsBackToFirst(t *testing.T) {
	entries := results(0, 0)
	s := NewSelector(&seqSource{values: []float64{0.5}})

	winner := s.SelectWinner(entries, ModeWeightedRandom)
	if winner == nil || winner.PartnerID != entries[0].PartnerID {
		t.Fatal("expected first-entry fallback for zero total weight")
	}
}

func TestSelectWinner_EqualScoresConvergeToEqualShares(t *testing.T) {
	entries := results(50, 50)
	s := NewSelector(NewRandSource())

	const trials = 1000
	firstWins := 0
	for i := 0; i < trials; i++ {
		if s.SelectWinner(entries, ModeWeightedRandom).PartnerID == entries[0].PartnerID {
			firstWins++
		}
	}

	// Binomial(1000, 0.5): ~6 standard deviations of tolerance.
	if firstWins < 400 || firstWins > 600 {
		t.Fatalf("expected roughly equal shares, first entry won %d/%d", firstWins, trials)
	}
}
