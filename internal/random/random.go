// Package random provides the sampling primitives used by the simulator.
//
// Every function takes the caller's *rand.Rand explicitly. A game owns one
// stream for its whole lifetime, so replaying a game with the same seed
// reproduces every sampled event in the same order.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// RatingWindow is the rating differential that maps onto the full
	// [0,1] probability range.
	RatingWindow = 9

	// minMean and maxMean keep Beta shape parameters strictly positive.
	minMean = 0.01
	maxMean = 0.99
)

// New returns a PCG-backed stream seeded with seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Coin is a fair coin trial.
func Coin(rng *rand.Rand) bool {
	return Bernoulli(0.5, rng)
}

// Bernoulli returns true with probability p. It panics when p is outside
// [0,1]; callers are expected to clamp before sampling.
func Bernoulli(p float64, rng *rand.Rand) bool {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic(fmt.Sprintf("random: bernoulli probability %v out of range", p))
	}

	dst := distuv.Bernoulli{P: p, Src: rng}
	return dst.Rand() == 1
}

// Beta samples a Beta distribution described by its mean and concentration
// (alpha = mean*concentration, beta = (1-mean)*concentration). It panics
// when mean is outside (0,1) or concentration is not positive.
func Beta(mean, concentration float64, rng *rand.Rand) float64 {
	if math.IsNaN(mean) || mean <= 0 || mean >= 1 {
		panic(fmt.Sprintf("random: beta mean %v out of range", mean))
	}
	if math.IsNaN(concentration) || concentration <= 0 {
		panic(fmt.Sprintf("random: beta concentration %v must be positive", concentration))
	}

	dst := distuv.Beta{
		Alpha: mean * concentration,
		Beta:  (1 - mean) * concentration,
		Src:   rng,
	}
	return dst.Rand()
}

// BetaRange maps a Beta sample into [lo, hi].
func BetaRange(mean, concentration, lo, hi float64, rng *rand.Rand) float64 {
	return lo + Beta(mean, concentration, rng)*(hi-lo)
}

// Clamp bounds p to [0,1].
func Clamp(p float64) float64 {
	return math.Min(1, math.Max(0, p))
}

// ClampMean bounds p to the open interval accepted by Beta.
func ClampMean(p float64) float64 {
	return math.Min(maxMean, math.Max(minMean, p))
}

// DiffProbability linearly rescales a rating differential from
// [-RatingWindow, RatingWindow] onto [0,1], clamping anything outside.
func DiffProbability(diff float64) float64 {
	return Clamp((diff + RatingWindow) / (2 * RatingWindow))
}

// Pick returns a uniform index in [0, n). It panics when n <= 0.
func Pick(n int, rng *rand.Rand) int {
	return rng.IntN(n)
}
