package stt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scribe/internal/model"
)

// fakeBackend is a scriptable Backend for negotiation tests
type fakeBackend struct {
	name          string
	kind          model.Kind
	available     bool
	supported     []string
	installed     []string
	queries       int
	fragments     []string
	transcribeErr error
}

func (f *fakeBackend) Name() string     { return f.name }
func (f *fakeBackend) Kind() model.Kind { return f.kind }
func (f *fakeBackend) Available() bool  { return f.available }

func (f *fakeBackend) SupportedLocales(ctx context.Context) ([]string, error) {
	f.queries++
	return f.supported, ctx.Err()
}

func (f *fakeBackend) InstalledLocales(ctx context.Context) ([]string, error) {
	f.queries++
	return f.installed, ctx.Err()
}

func (f *fakeBackend) Transcribe(ctx context.Context, audioPath, locale string, onFragment FragmentFunc) error {
	if f.transcribeErr != nil {
		return f.transcribeErr
	}
	for _, frag := range f.fragments {
		onFragment(frag)
	}
	return nil
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		name:      "fake",
		kind:      model.KindWhisper,
		available: true,
		supported: []string{"en-US", "de-DE", "zh-CN"},
		installed: []string{"en-US"},
	}
}

func TestNegotiateUnavailableRuntime(t *testing.T) {
	backend := newFakeBackend()
	backend.available = false

	n := NewNegotiator(nil)
	_, _, err := n.NegotiateLocale(context.Background(), backend, Request{Language: "en", ModelKind: model.KindWhisper})

	if !errors.Is(err, ErrUnsupportedRuntime) {
		t.Errorf("Expected ErrUnsupportedRuntime, got %v", err)
	}
	if backend.queries != 0 {
		t.Errorf("No locale query should happen, got %d", backend.queries)
	}
}

func TestNegotiateModelMismatchBeforeLocaleQuery(t *testing.T) {
	backend := newFakeBackend()

	n := NewNegotiator(nil)
	_, _, err := n.NegotiateLocale(context.Background(), backend, Request{Language: "en", ModelKind: model.KindRemote})

	if !errors.Is(err, ErrInvalidModelSelection) {
		t.Errorf("Expected ErrInvalidModelSelection, got %v", err)
	}
	if backend.queries != 0 {
		t.Errorf("Model check must preempt locale queries, got %d queries", backend.queries)
	}
}

func TestNegotiateSupportedNotInstalledProceeds(t *testing.T) {
	// zh-CN is supported but not installed: negotiation must proceed.
	backend := newFakeBackend()

	n := NewNegotiator(nil)
	locale, availability, err := n.NegotiateLocale(context.Background(), backend, Request{Language: "zh", ModelKind: model.KindWhisper})

	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if locale != "zh-CN" {
		t.Errorf("Expected zh-CN, got %s", locale)
	}
	if availability != AvailabilitySupportedNotInstalled {
		t.Errorf("Expected supported-not-installed, got %s", availability)
	}
}

func TestNegotiateUnsupportedLocaleFails(t *testing.T) {
	// Thai has no mapping entry, so it falls back to en-US; a backend
	// whose sets contain neither must reject the request.
	backend := newFakeBackend()
	backend.supported = []string{"de-DE"}
	backend.installed = nil

	n := NewNegotiator(nil)
	_, availability, err := n.NegotiateLocale(context.Background(), backend, Request{Language: "th", ModelKind: model.KindWhisper})

	if !errors.Is(err, ErrLocaleNotSupported) {
		t.Errorf("Expected ErrLocaleNotSupported, got %v", err)
	}
	if availability != AvailabilityUnsupported {
		t.Errorf("Expected unsupported, got %s", availability)
	}
}

func TestNegotiateInstalledClassification(t *testing.T) {
	backend := newFakeBackend()

	n := NewNegotiator(nil)
	locale, availability, err := n.NegotiateLocale(context.Background(), backend, Request{Language: "en", ModelKind: model.KindWhisper})

	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if locale != "en-US" || availability != AvailabilityInstalled {
		t.Errorf("Got locale=%s availability=%s", locale, availability)
	}
}

func TestNegotiateConcatenatesAndTrims(t *testing.T) {
	backend := newFakeBackend()
	backend.fragments = []string{"  Hello", "world.  ", "", "Bye. "}

	n := NewNegotiator(nil)
	text, err := n.Negotiate(context.Background(), backend, Request{Language: "en", ModelKind: model.KindWhisper})

	if err != nil {
		t.Fatalf("Negotiate failed: %v", err)
	}
	want := "Hello world. Bye."
	if strings.TrimSpace(strings.Join(strings.Fields(text), " ")) != want {
		t.Errorf("Got %q, want %q", text, want)
	}
	if strings.HasPrefix(text, " ") || strings.HasSuffix(text, " ") {
		t.Errorf("Transcript not trimmed: %q", text)
	}
}

func TestNegotiateEmptyTranscriptFails(t *testing.T) {
	backend := newFakeBackend()
	backend.fragments = []string{"", "   "}

	n := NewNegotiator(nil)
	_, err := n.Negotiate(context.Background(), backend, Request{Language: "en", ModelKind: model.KindWhisper})

	if !errors.Is(err, ErrTranscriptionFailed) {
		t.Errorf("Expected ErrTranscriptionFailed, got %v", err)
	}
}

func TestNegotiateBackendErrorPropagates(t *testing.T) {
	backend := newFakeBackend()
	backend.transcribeErr = ErrAssetAllocation

	n := NewNegotiator(nil)
	_, err := n.Negotiate(context.Background(), backend, Request{Language: "en", ModelKind: model.KindWhisper})

	if !errors.Is(err, ErrAssetAllocation) {
		t.Errorf("Expected ErrAssetAllocation, got %v", err)
	}
}

func TestNegotiateCancelledContext(t *testing.T) {
	backend := newFakeBackend()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := NewNegotiator(nil)
	_, _, err := n.NegotiateLocale(ctx, backend, Request{Language: "en", ModelKind: model.KindWhisper})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	backend := newFakeBackend()
	backend.installed = []string{"EN-us"}

	n := NewNegotiator(nil)
	availability, err := n.Classify(context.Background(), backend, "en-US")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if availability != AvailabilityInstalled {
		t.Errorf("Expected installed, got %s", availability)
	}
}
