package cutoff

import (
	"math/rand"
	"sync"
	"time"
)

// Admission chance statuses returned by the evaluator.
const (
	StatusHigh     = "High Chance"
	StatusModerate = "Moderate Chance"
	StatusLow      = "Low Chance"
	StatusUnknown  = "Unknown"
)

// Chance is a probability estimate for one option.
type Chance struct {
	Status      string `json:"status"`
	Probability int    `json:"probability"`
}

// ChanceEvaluator assigns a banded probability to an option given the
// candidate's rank and the matched cutoff rank. The exact value within a
// band is jittered so repeated analyses do not look mechanically flat.
type ChanceEvaluator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewChanceEvaluator creates an evaluator. A non-zero seed makes the jitter
// reproducible; zero seeds from the current time.
func NewChanceEvaluator(seed int64) *ChanceEvaluator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &ChanceEvaluator{rng: rand.New(rand.NewSource(seed))}
}

// Evaluate maps (userRank, cutoffRank) into a status and jittered
// probability. Rank at or below the cutoff lands in [85,95), within 1.2x
// the cutoff in [45,75), beyond that in [0,30).
func (e *ChanceEvaluator) Evaluate(userRank, cutoffRank int) Chance {
	switch {
	case userRank <= cutoffRank:
		return Chance{Status: StatusHigh, Probability: 85 + e.intn(10)}
	case float64(userRank) <= float64(cutoffRank)*1.2:
		return Chance{Status: StatusModerate, Probability: 45 + e.intn(30)}
	default:
		return Chance{Status: StatusLow, Probability: e.intn(30)}
	}
}

// Unknown is the chance reported when no cutoff data matched at all.
func (e *ChanceEvaluator) Unknown() Chance {
	return Chance{Status: StatusUnknown, Probability: 0}
}

func (e *ChanceEvaluator) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}
