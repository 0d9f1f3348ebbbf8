package engine

import (
	"math"

	"github.com/vovakirdan/straight-to-the-comments/internal/core"
)

// Session and scoring constants.
const (
	Rounds = 5

	RespectPerTenFootprint   = 0.05  // every full 10 footprint shifts like yield by 5%
	LowFootprintReachPenalty = -0.07 // applied while footprint is below LowFootprintThreshold
	LowFootprintThreshold    = -20
	BlockThreshold           = -45 // platform toxicity at or below this blocks the platform
	BlockedThrottle          = 0.25

	MinFootprint = -100
	MaxFootprint = 100
)

// RespectMultiplier is the discrete footprint-band multiplier applied to base
// likes. Bands are floored toward negative infinity, so -1 already costs 5%.
func RespectMultiplier(footprint int) float64 {
	steps := core.FloorDiv(footprint, 10)
	return 1 + float64(steps)*RespectPerTenFootprint
}

// ReachPenalty returns the reach factor for a footprint. The threshold is
// strict: exactly LowFootprintThreshold is not penalized.
func ReachPenalty(footprint int) float64 {
	if footprint < LowFootprintThreshold {
		return 1 + LowFootprintReachPenalty
	}
	return 1
}

// DecayTotal sums the per-pick decay of every past pick, on any platform.
// It is recomputed from the whole history each round.
func DecayTotal(history []Pick) (int, error) {
	total := 0
	for _, p := range history {
		sc, err := ScoreFor(p.Style)
		if err != nil {
			return 0, err
		}
		total += sc.DecayPerPastPick
	}
	return total, nil
}

// ComputeLikeDelta returns the raw like delta a style earns given the
// footprint and history from before the pick. The result may be negative;
// throttling and clamping happen in PickStyle.
func ComputeLikeDelta(style StyleKey, footprint int, history []Pick) (int, error) {
	sc, err := ScoreFor(style)
	if err != nil {
		return 0, err
	}
	decay, err := DecayTotal(history)
	if err != nil {
		return 0, err
	}

	raw := float64(sc.BaseLikes)*RespectMultiplier(footprint)*ReachPenalty(footprint) + float64(decay)
	return roundHalfUp(raw), nil
}

// throttle cuts a like delta on a platform that has blocked the player.
func throttle(delta int) int {
	return int(math.Floor(float64(delta) * BlockedThrottle))
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so -2.5 becomes -2 rather than math.Round's -3.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Meter maps a footprint onto the 0-100 scale of the unlabeled progress bar.
func Meter(footprint int) float64 {
	return core.ClampF(float64(footprint+100)/2, 0, 100)
}
