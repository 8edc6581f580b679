// SPDX-License-Identifier: MIT

// Package fixture composes the fixture pipeline: it generates the operand pair
// (A, B) and the unrelated matrix R from their seeds, computes the reference
// product C = A·B and writes all four matrices as text files.
//
// The pipeline is strictly sequential and has no retries: the first error
// aborts the run, and files written before that step are left in place.
//
//	input/matrix_client_input_k_{k}_m_{m}.mtx   A  (k×m, seed pair)
//	input/matrix_server_input_m_{m}_n_{n}.mtx   B  (m×n, seed pair, after A)
//	input/matrix_random_input_k_{k}_m_{m}.mtx   R  (k×m, seed random)
//	calibration/matrix_output_k_{k}_n_{n}.mtx   C  (k×n, A·B)
package fixture

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/matfixture/generator"
	"github.com/katalvlaran/matfixture/matrix"
	"github.com/katalvlaran/matfixture/mtx"
)

// Role identifies a matrix in the fixture set.
type Role uint8

const (
	// RoleClient is the left operand A.
	RoleClient Role = iota
	// RoleServer is the right operand B.
	RoleServer
	// RoleRandom is the unrelated random matrix R.
	RoleRandom
	// RoleOutput is the reference product C.
	RoleOutput
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleServer:
		return "server"
	case RoleRandom:
		return "random"
	case RoleOutput:
		return "output"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Artifact describes one written file.
type Artifact struct {
	Role Role
	Path string
	Rows int
	Cols int
}

// Report lists what a run wrote, in write order.
type Report struct {
	Config    Config
	Artifacts []Artifact
}

// Run builds a Config from opts and runs the pipeline.
func Run(opts ...Option) (*Report, error) {
	return NewConfig(opts...).Run()
}

// Validate checks the shape and enum parameters before anything is generated.
//
// Errors:
//   - matrix.ErrInvalidDimensions if any of K, M, N is non-positive.
//   - matrix.ErrTooLarge if A, B, R or C would not fit in memory addressing.
//   - mtx.ErrUnknownCompression, ErrUnknownMultiplier for out-of-range enums.
func (c Config) Validate() error {
	if err := matrix.ValidateDims(c.K, c.M); err != nil {
		return fmt.Errorf("fixture: k=%d m=%d: %w", c.K, c.M, err)
	}
	if err := matrix.ValidateDims(c.M, c.N); err != nil {
		return fmt.Errorf("fixture: m=%d n=%d: %w", c.M, c.N, err)
	}
	if err := matrix.ValidateDims(c.K, c.N); err != nil {
		return fmt.Errorf("fixture: k=%d n=%d: %w", c.K, c.N, err)
	}
	if !c.Compression.Valid() {
		return fmt.Errorf("fixture: %w", mtx.ErrUnknownCompression)
	}
	if !c.Multiplier.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownMultiplier, c.Multiplier)
	}

	return nil
}

// Paths returns the four output paths (without codec extension) in role order.
func (c Config) Paths() [4]string {
	return [4]string{
		RoleClient: filepath.Join(c.InputDir, mtx.ClientInputName(c.K, c.M)),
		RoleServer: filepath.Join(c.InputDir, mtx.ServerInputName(c.M, c.N)),
		RoleRandom: filepath.Join(c.InputDir, mtx.RandomInputName(c.K, c.M)),
		RoleOutput: filepath.Join(c.CalibrationDir, mtx.OutputName(c.K, c.N)),
	}
}

// Run executes the pipeline: generate A&B, generate R, multiply, then write
// A, B, R and C in that order.
// On error the returned Report still lists the files written before the
// failing step.
func (c Config) Run() (*Report, error) {
	log := c.Logger
	if log == nil {
		log = NoopLogger()
	}
	rep := &Report{Config: c}

	if err := c.Validate(); err != nil {
		return rep, err
	}

	a, b, err := generator.Pair(c.K, c.M, c.N, c.SeedPair)
	log.LogGenerated(RoleClient, c.K, c.M, c.SeedPair, err)
	if err != nil {
		return rep, fmt.Errorf("fixture: generate pair: %w", err)
	}
	log.LogGenerated(RoleServer, c.M, c.N, c.SeedPair, nil)

	r, err := generator.Single(c.K, c.M, c.SeedRandom)
	log.LogGenerated(RoleRandom, c.K, c.M, c.SeedRandom, err)
	if err != nil {
		return rep, fmt.Errorf("fixture: generate random: %w", err)
	}

	prod, err := c.multiply(a, b)
	log.LogMultiplied(c.Multiplier, c.K, c.N, err)
	if err != nil {
		return rep, fmt.Errorf("fixture: multiply: %w", err)
	}

	paths := c.Paths()
	outputs := [4]matrix.Matrix{RoleClient: a, RoleServer: b, RoleRandom: r, RoleOutput: prod}
	for role, m := range outputs {
		art := Artifact{Role: Role(role), Path: paths[role], Rows: m.Rows(), Cols: m.Cols()}
		art.Path, err = mtx.WriteFile(paths[role], m, mtx.WithCompression(c.Compression))
		if err != nil {
			art.Path = paths[role]
			log.LogWritten(art, err)
			return rep, fmt.Errorf("fixture: write %s: %w", art.Role, err)
		}
		log.LogWritten(art, nil)
		rep.Artifacts = append(rep.Artifacts, art)
	}

	return rep, nil
}

// multiply dispatches to the configured reference kernel.
func (c Config) multiply(a, b matrix.Matrix) (matrix.Matrix, error) {
	switch c.Multiplier {
	case Naive:
		return matrix.Mul(a, b)
	case Gonum:
		return matrix.MulGonum(a, b)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMultiplier, c.Multiplier)
	}
}
