// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     main
// Description: CLI entry point
// Created:     2026-08-11
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"scribe/cmd/scribe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
