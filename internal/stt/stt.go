// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     stt
// Description: Speech-to-text backend contracts
// Created:     2026-08-03
// License:     MIT
// ============================================================================

package stt

import (
	"context"

	"scribe/internal/model"
)

// Availability classifies a backend locale against the backend's current
// capability snapshot
type Availability int

const (
	// AvailabilityInstalled - locale assets are present, transcription can
	// start immediately
	AvailabilityInstalled Availability = iota

	// AvailabilitySupportedNotInstalled - the backend supports the locale
	// but its assets are not installed yet
	AvailabilitySupportedNotInstalled

	// AvailabilityUnsupported - the backend cannot serve the locale
	AvailabilityUnsupported
)

// String returns the string representation of the availability
func (a Availability) String() string {
	switch a {
	case AvailabilityInstalled:
		return "installed"
	case AvailabilitySupportedNotInstalled:
		return "supported-not-installed"
	case AvailabilityUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// FragmentFunc receives one streamed transcript fragment
type FragmentFunc func(text string)

// Backend is a transcription engine with queryable locale capabilities.
// SupportedLocales and InstalledLocales may hit external services and are
// cancellable through the context.
type Backend interface {
	// Name identifies the backend in logs
	Name() string

	// Kind is the model family this backend executes
	Kind() model.Kind

	// Available reports whether the backend runtime exists on this
	// platform
	Available() bool

	// SupportedLocales returns the locales the backend can serve
	SupportedLocales(ctx context.Context) ([]string, error)

	// InstalledLocales returns the locales whose assets are present
	InstalledLocales(ctx context.Context) ([]string, error)

	// Transcribe runs transcription of the audio file in the given
	// locale, delivering text fragments in order through onFragment.
	// The fragment stream is finite and not restartable.
	Transcribe(ctx context.Context, audioPath, locale string, onFragment FragmentFunc) error
}

// Request describes one transcription request
type Request struct {
	// Language is the canonical language code captured at call time
	Language string

	// ModelKind is the model family the caller selected
	ModelKind model.Kind

	// AudioPath is the audio file to transcribe
	AudioPath string
}
