// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     stt
// Description: Backend locale negotiation
// Created:     2026-08-04
// License:     MIT
// ============================================================================

package stt

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scribe/internal/language"
	"scribe/internal/logging"
)

// Negotiator reconciles a requested canonical language with a backend's
// declared and installed locale capabilities before transcription runs.
// Negotiation has no persisted side effects; cancelling a request leaves
// no partial state behind.
type Negotiator struct {
	logger *logging.Logger
}

// NewNegotiator creates a negotiator
func NewNegotiator(logger *logging.Logger) *Negotiator {
	if logger == nil {
		logger = logging.New("stt")
	}
	return &Negotiator{logger: logger}
}

// Classify computes the availability of a backend locale against the
// backend's current capability snapshot. Snapshots are taken per call;
// no caching.
func (n *Negotiator) Classify(ctx context.Context, backend Backend, locale string) (Availability, error) {
	installed, err := backend.InstalledLocales(ctx)
	if err != nil {
		return AvailabilityUnsupported, fmt.Errorf("installed locale query: %w", err)
	}
	if containsLocale(installed, locale) {
		return AvailabilityInstalled, nil
	}

	supported, err := backend.SupportedLocales(ctx)
	if err != nil {
		return AvailabilityUnsupported, fmt.Errorf("supported locale query: %w", err)
	}
	if containsLocale(supported, locale) {
		return AvailabilitySupportedNotInstalled, nil
	}
	return AvailabilityUnsupported, nil
}

// NegotiateLocale resolves the backend locale for a canonical code and
// decides whether transcription may proceed. Returns the locale and its
// availability; a typed error when the request must fail.
func (n *Negotiator) NegotiateLocale(ctx context.Context, backend Backend, req Request) (string, Availability, error) {
	if !backend.Available() {
		return "", AvailabilityUnsupported,
			fmt.Errorf("%w: %s", ErrUnsupportedRuntime, backend.Name())
	}

	// Model selection is checked before any locale query.
	if req.ModelKind != backend.Kind() {
		return "", AvailabilityUnsupported,
			fmt.Errorf("%w: requested %q, backend %q runs %q",
				ErrInvalidModelSelection, req.ModelKind, backend.Name(), backend.Kind())
	}

	locale := language.BackendLocale(req.Language)

	availability, err := n.Classify(ctx, backend, locale)
	if err != nil {
		return locale, availability, err
	}

	switch availability {
	case AvailabilityUnsupported:
		return locale, availability,
			fmt.Errorf("%w: %s", ErrLocaleNotSupported, locale)
	case AvailabilitySupportedNotInstalled:
		// Asset acquisition is the backend's own business; the
		// request proceeds.
		n.logger.Info("Locale supported but not installed, proceeding",
			"backend", backend.Name(), "locale", locale)
	}
	return locale, availability, nil
}

// Negotiate runs the full negotiation and, on success, the transcription
// itself. The streamed fragments are concatenated and the final text is
// returned trimmed of leading and trailing whitespace.
func (n *Negotiator) Negotiate(ctx context.Context, backend Backend, req Request) (string, error) {
	requestID := uuid.NewString()
	log := n.logger

	log.Debug("Negotiating transcription locale",
		"request_id", requestID, "language", req.Language, "backend", backend.Name())

	locale, availability, err := n.NegotiateLocale(ctx, backend, req)
	if err != nil {
		log.Warn("Locale negotiation failed",
			"request_id", requestID, "language", req.Language, "error", err)
		return "", err
	}

	log.Info("Locale negotiated",
		"request_id", requestID, "locale", locale, "availability", availability.String())

	var sb strings.Builder
	err = backend.Transcribe(ctx, req.AudioPath, locale, func(text string) {
		if text == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(text)
	})
	if err != nil {
		log.Error("Transcription failed",
			"request_id", requestID, "locale", locale, "error", err)
		return "", err
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty transcript", ErrTranscriptionFailed)
	}

	log.Info("Transcription complete",
		"request_id", requestID, "locale", locale, "chars", len(text))
	return text, nil
}

func containsLocale(locales []string, locale string) bool {
	for _, l := range locales {
		if strings.EqualFold(l, locale) {
			return true
		}
	}
	return false
}
