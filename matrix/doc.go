// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major Matrix used by the fixture
// pipeline: construction, bounds-checked access, the reference product
// (Mul), Add/Sub/Transpose, tolerance comparison (AllClose) and gonum interop.
//
// All public kernels validate their inputs through validators.go and return
// package sentinels (errors.go) wrapped with an operation tag; match them with
// errors.Is.
package matrix
