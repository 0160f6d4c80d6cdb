// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     model
// Description: Transcription model registry and language support lookup
// Created:     2026-07-21
// License:     MIT
// ============================================================================

package model

import (
	"fmt"
	"sync"

	"scribe/internal/language"
)

// Kind identifies the backend family a model belongs to
type Kind string

const (
	KindWhisper Kind = "whisper"
	KindRemote  Kind = "remote"
)

// Model describes one transcription model and the canonical language
// codes it supports
type Model struct {
	Name      string
	Kind      Kind
	Languages []string
}

// Supports reports whether the model declares support for a canonical code
func (m Model) Supports(code string) bool {
	for _, lang := range m.Languages {
		if lang == code {
			return true
		}
	}
	return false
}

// builtin is the set of models the application knows how to run.
// Multilingual whisper models cover the full catalog; the ".en" variants
// are English-only.
var builtin = []Model{
	{Name: "tiny", Kind: KindWhisper, Languages: language.Codes()},
	{Name: "base", Kind: KindWhisper, Languages: language.Codes()},
	{Name: "small", Kind: KindWhisper, Languages: language.Codes()},
	{Name: "medium", Kind: KindWhisper, Languages: language.Codes()},
	{Name: "tiny.en", Kind: KindWhisper, Languages: []string{"en"}},
	{Name: "base.en", Kind: KindWhisper, Languages: []string{"en"}},
	{Name: "small.en", Kind: KindWhisper, Languages: []string{"en"}},
	{Name: "medium.en", Kind: KindWhisper, Languages: []string{"en"}},
	{Name: "remote", Kind: KindRemote, Languages: language.Codes()},
}

// Registry owns the currently active model. Language support queries read
// the active model's declared set; switching models changes the answer for
// subsequent queries only.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
	active string
}

// NewRegistry creates a registry with the builtin models, activating the
// named model. An unknown name falls back to "base".
func NewRegistry(active string) *Registry {
	r := &Registry{models: make(map[string]Model, len(builtin))}
	for _, m := range builtin {
		r.models[m.Name] = m
	}
	if _, ok := r.models[active]; !ok {
		active = "base"
	}
	r.active = active
	return r
}

// Active returns the currently active model
func (r *Registry) Active() Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.models[r.active]
}

// SetActive switches the active model
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.models[name]; !ok {
		return fmt.Errorf("unknown model: %s", name)
	}
	r.active = name
	return nil
}

// Names returns the names of all registered models
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.models))
	for _, m := range builtin {
		if _, ok := r.models[m.Name]; ok {
			names = append(names, m.Name)
		}
	}
	return names
}

// AllLanguages returns the canonical codes supported by the active model
func (r *Registry) AllLanguages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := r.models[r.active]
	out := make([]string, len(m.Languages))
	copy(out, m.Languages)
	return out
}

// IsSupported reports whether the active model supports the canonical
// code. Unknown codes return false.
func (r *Registry) IsSupported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.models[r.active].Supports(code)
}
