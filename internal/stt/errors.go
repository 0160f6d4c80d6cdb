// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     stt
// Description: Negotiation and transcription error taxonomy
// Created:     2026-08-03
// License:     MIT
// ============================================================================

package stt

import "errors"

// Each of these is terminal for the request it fails; the caller decides
// whether to retry or fall back to another backend.
var (
	// ErrUnsupportedRuntime indicates the backend runtime is not available
	// on the current platform
	ErrUnsupportedRuntime = errors.New("transcription runtime not available")

	// ErrInvalidModelSelection indicates the requested model kind does not
	// match the backend
	ErrInvalidModelSelection = errors.New("invalid model selection for backend")

	// ErrLocaleNotSupported indicates the backend cannot serve the
	// negotiated locale
	ErrLocaleNotSupported = errors.New("locale not supported by backend")

	// ErrAssetAllocation indicates the backend reported an asset error
	// while preparing locale resources
	ErrAssetAllocation = errors.New("backend asset allocation failed")

	// ErrTranscriptionFailed indicates the backend returned no usable
	// result
	ErrTranscriptionFailed = errors.New("transcription produced no usable result")
)
