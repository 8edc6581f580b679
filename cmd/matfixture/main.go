// SPDX-License-Identifier: MIT

// Command matfixture writes the reference matrix-multiplication fixtures into
// ./input and ./calibration using the documented defaults (k=4096, m=768,
// n=64, seeds 42 and 44). Both directories must already exist.
package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/matfixture/fixture"
)

func main() {
	logger := fixture.NewTextLogger(slog.LevelInfo)

	rep, err := fixture.Run(fixture.WithLogger(logger))
	if err != nil {
		logger.Error("fixture generation failed", "written", len(rep.Artifacts), "error", err)
		os.Exit(1)
	}
	logger.Info("fixture generation completed", "files", len(rep.Artifacts))
}
