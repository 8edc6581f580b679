// SPDX-License-Identifier: MIT

// Package rng provides explicit, caller-owned pseudorandom streams.
//
// A Stream is created from a 32-bit seed and owns its generator state; there
// is no package-level generator. The pinned algorithm is MT19937 seeded with
// init_genrand, and doubles are built from two consecutive 32-bit outputs
// with 53 bits of resolution. This is the same stream numpy's legacy
// np.random.seed(int) / np.random.uniform produce, so fixtures match files
// written by that toolchain bit for bit.
package rng

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

const (
	// twoPow26 scales the upper 27-bit draw.
	twoPow26 = 67108864.0
	// twoPow53 normalizes the combined 53-bit integer into [0,1).
	twoPow53 = 9007199254740992.0
)

// Stream is a seeded MT19937 stream. A Stream is not safe for concurrent use;
// create one per generation call.
type Stream struct {
	seed uint32
	src  *prng.MT19937
}

// New returns a fresh stream fully determined by seed.
func New(seed uint32) *Stream {
	src := prng.NewMT19937()
	src.Seed(uint64(seed))

	return &Stream{seed: seed, src: src}
}

// Seed reports the seed the stream was created with.
func (s *Stream) Seed() uint32 { return s.seed }

// Uint32 returns the next raw 32-bit output.
func (s *Stream) Uint32() uint32 { return s.src.Uint32() }

// Float64 returns a value in [0,1) with 53-bit resolution:
// ((a>>5)*2^26 + (b>>6)) / 2^53 for consecutive outputs a, b.
func (s *Stream) Float64() float64 {
	a := s.src.Uint32() >> 5
	b := s.src.Uint32() >> 6

	return (float64(a)*twoPow26 + float64(b)) / twoPow53
}

// Uniform returns low + (high-low)*u for u = Float64().
// The product is rounded before the add so no fused multiply-add can change
// the last bit across platforms.
func (s *Stream) Uniform(low, high float64) float64 {
	span := high - low
	return low + float64(span*s.Float64())
}

// Fill writes Uniform(low, high) draws into dst in index order.
// It panics on NaN/Inf bounds or low > high; bounds are programmer input.
func (s *Stream) Fill(dst []float64, low, high float64) {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		panic("rng: Fill: bounds must be finite with low <= high")
	}
	for i := range dst {
		dst[i] = s.Uniform(low, high)
	}
}
