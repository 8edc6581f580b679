// SPDX-License-Identifier: MIT

// Package fixture: configuration of the generation pipeline.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Config (explicit, named parameters),
//   - Option / WithX functional setters (panic on nonsensical values).
//
// Shape validation is left to Config.Validate so that Run can report
// ErrInvalidDimensions as an error rather than a panic.

package fixture

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matfixture/mtx"
)

// ---------- Defaults (single source of truth) ----------

// Shape defaults: A is K×M, B is M×N, R is K×M, C is K×N.
const (
	DefaultK = 4096
	DefaultM = 768
	DefaultN = 64
)

// Seed defaults, kept for parity with existing fixture files.
const (
	// DefaultSeedPair seeds the single stream A and then B are drawn from.
	DefaultSeedPair uint32 = 42

	// DefaultSeedRandom seeds the independent stream R is drawn from.
	DefaultSeedRandom uint32 = 44
)

// Output location defaults. Both directories must exist before Run.
const (
	DefaultInputDir       = "input"
	DefaultCalibrationDir = "calibration"
)

// Multiplier selects the kernel that computes the reference product.
type Multiplier uint8

const (
	// Naive uses matrix.Mul (fixed i→k→j loop order).
	Naive Multiplier = iota
	// Gonum uses matrix.MulGonum (gonum mat.Dense.Mul).
	Gonum
)

// ErrUnknownMultiplier is returned by Config.Validate for an out-of-range Multiplier.
var ErrUnknownMultiplier = errors.New("fixture: unknown multiplier")

// Valid reports whether m is a known kernel.
func (m Multiplier) Valid() bool { return m <= Gonum }

// DefaultMultiplier is the kernel used when none is configured.
const DefaultMultiplier = Naive

// String returns the kernel name.
func (m Multiplier) String() string {
	switch m {
	case Naive:
		return "naive"
	case Gonum:
		return "gonum"
	default:
		return fmt.Sprintf("multiplier(%d)", uint8(m))
	}
}

// Config is the resolved pipeline configuration.
type Config struct {
	K int // rows of A and R
	M int // shared inner dimension: cols of A and R, rows of B
	N int // cols of B and C

	SeedPair   uint32 // seed of the (A, B) stream
	SeedRandom uint32 // seed of the R stream

	InputDir       string // destination of A, B, R
	CalibrationDir string // destination of C

	Compression mtx.Compression // optional codec around the text format
	Multiplier  Multiplier      // reference product kernel

	Logger *Logger
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		K:              DefaultK,
		M:              DefaultM,
		N:              DefaultN,
		SeedPair:       DefaultSeedPair,
		SeedRandom:     DefaultSeedRandom,
		InputDir:       DefaultInputDir,
		CalibrationDir: DefaultCalibrationDir,
		Compression:    mtx.None,
		Multiplier:     DefaultMultiplier,
		Logger:         NoopLogger(),
	}
}

// Option mutates a Config. Options apply in order; last writer wins.
type Option func(*Config)

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, set := range opts {
		set(&c)
	}
	if c.Logger == nil {
		c.Logger = NoopLogger()
	}
	return c
}

// WithShape sets k, m, n. Values are validated by Config.Validate.
func WithShape(k, m, n int) Option {
	return func(c *Config) { c.K, c.M, c.N = k, m, n }
}

// WithSeeds sets the (A, B) pair seed and the R seed.
func WithSeeds(pair, random uint32) Option {
	return func(c *Config) { c.SeedPair, c.SeedRandom = pair, random }
}

// WithInputDir sets the directory A, B and R are written to.
func WithInputDir(dir string) Option {
	return func(c *Config) { c.InputDir = dir }
}

// WithCalibrationDir sets the directory C is written to.
func WithCalibrationDir(dir string) Option {
	return func(c *Config) { c.CalibrationDir = dir }
}

// WithCompression wraps every output in the given codec.
// Panics on an unknown codec.
func WithCompression(comp mtx.Compression) Option {
	if !comp.Valid() {
		panic(fmt.Sprintf("fixture: WithCompression: unknown codec %d", uint8(comp)))
	}
	return func(c *Config) { c.Compression = comp }
}

// WithMultiplier selects the reference product kernel.
// Panics on an unknown kernel.
func WithMultiplier(m Multiplier) Option {
	if !m.Valid() {
		panic(fmt.Sprintf("fixture: WithMultiplier: unknown multiplier %d", uint8(m)))
	}
	return func(c *Config) { c.Multiplier = m }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *Logger) Option {
	return func(c *Config) { c.Logger = l }
}
