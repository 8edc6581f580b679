// SPDX-License-Identifier: MIT

// Package matfixture generates the reference inputs and the expected output
// used to validate matrix-multiplication implementations (plain, encrypted or
// otherwise accelerated) against a single trusted product.
//
// What gets produced?
//
//	Four plain-text matrices, one row per line, values with exactly 4 decimals:
//		• A (k×m), U(-1,1), seed 42       → input/matrix_client_input_k_{k}_m_{m}.mtx
//		• B (m×n), same stream after A    → input/matrix_server_input_m_{m}_n_{n}.mtx
//		• R (k×m), U(-1,1), seed 44       → input/matrix_random_input_k_{k}_m_{m}.mtx
//		• C = A·B (k×n), float64 product  → calibration/matrix_output_k_{k}_n_{n}.mtx
//
// Why pin the generator?
//
//   - Reproducible: the same seed yields the same bits on every platform.
//   - Interoperable: MT19937 with 53-bit doubles, so fixtures match the
//     legacy numpy files byte for byte.
//   - Checkable: C is rounded only at serialization, never before multiply.
//
// Everything is organized under these subpackages:
//
//	matrix/    : dense row-major Matrix, reference Mul, Add/Sub/Transpose, gonum interop
//	rng/       : seeded MT19937 stream (Uniform, Fill)
//	generator/ : U(-1,1) matrices, the A/B pair and the independent R
//	mtx/       : 4-decimal text codec, file naming, optional zstd/lz4 framing
//	fixture/   : Config, options, slog logging and the Run pipeline
//	cmd/matfixture : the command that writes the default fixture set
//
// Quick start:
//
//	rep, err := fixture.Run(fixture.WithShape(64, 32, 8))
//	if err != nil { ... }
//	for _, a := range rep.Artifacts { fmt.Println(a.Path) }
package matfixture
