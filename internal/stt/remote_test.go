package stt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"scribe/internal/audio"
)

func newRemoteServer(t *testing.T, fragments []string, serverErr string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/locales", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(localesResponse{
			Supported: []string{"en-US", "de-DE", "zh-CN"},
			Installed: []string{"en-US"},
		})
	})
	mux.HandleFunc("/v1/transcribe", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		// Consume start, audio and end frames
		for i := 0; i < 3; i++ {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}

		if serverErr != "" {
			conn.WriteJSON(wsMessage{Type: "error", Error: serverErr})
			return
		}
		for _, frag := range fragments {
			conn.WriteJSON(wsMessage{Type: "fragment", Text: frag})
		}
		conn.WriteJSON(wsMessage{Type: "done"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testAudioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	samples := make([]float32, 1600)
	if err := audio.WriteWAV(path, samples, 16000); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRemoteLocaleQueries(t *testing.T) {
	srv := newRemoteServer(t, nil, "")
	r := NewRemoteBackend(srv.URL, nil)

	supported, err := r.SupportedLocales(context.Background())
	if err != nil {
		t.Fatalf("SupportedLocales failed: %v", err)
	}
	if len(supported) != 3 {
		t.Errorf("Expected 3 supported locales, got %v", supported)
	}

	installed, err := r.InstalledLocales(context.Background())
	if err != nil {
		t.Fatalf("InstalledLocales failed: %v", err)
	}
	if len(installed) != 1 || installed[0] != "en-US" {
		t.Errorf("Expected [en-US], got %v", installed)
	}
}

func TestRemoteTranscribeStreamsFragments(t *testing.T) {
	srv := newRemoteServer(t, []string{"Guten", "Tag."}, "")
	r := NewRemoteBackend(srv.URL, nil)

	var got []string
	err := r.Transcribe(context.Background(), testAudioFile(t), "de-DE", func(text string) {
		got = append(got, text)
	})
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if strings.Join(got, " ") != "Guten Tag." {
		t.Errorf("Got fragments %v", got)
	}
}

func TestRemoteTranscribeServerError(t *testing.T) {
	srv := newRemoteServer(t, nil, "decoder blew up")
	r := NewRemoteBackend(srv.URL, nil)

	err := r.Transcribe(context.Background(), testAudioFile(t), "de-DE", func(string) {})
	if !errors.Is(err, ErrTranscriptionFailed) {
		t.Errorf("Expected ErrTranscriptionFailed, got %v", err)
	}
}

func TestRemoteTranscribeAssetError(t *testing.T) {
	srv := newRemoteServer(t, nil, "asset download failed")
	r := NewRemoteBackend(srv.URL, nil)

	err := r.Transcribe(context.Background(), testAudioFile(t), "de-DE", func(string) {})
	if !errors.Is(err, ErrAssetAllocation) {
		t.Errorf("Expected ErrAssetAllocation, got %v", err)
	}
}

func TestRemoteTranscribeRejectsNonWAVInput(t *testing.T) {
	srv := newRemoteServer(t, nil, "")
	r := NewRemoteBackend(srv.URL, nil)

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, []byte("not audio at all"), 0644); err != nil {
		t.Fatal(err)
	}

	err := r.Transcribe(context.Background(), path, "de-DE", func(string) {})
	if !errors.Is(err, ErrTranscriptionFailed) {
		t.Errorf("Expected ErrTranscriptionFailed for garbage input, got %v", err)
	}
}

func TestRemoteUnavailableWithoutURL(t *testing.T) {
	r := NewRemoteBackend("", nil)
	if r.Available() {
		t.Error("Backend without URL must not report available")
	}
}

func TestRemoteLocaleQueryBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	r := NewRemoteBackend(srv.URL, nil)
	if _, err := r.SupportedLocales(context.Background()); err == nil {
		t.Error("Expected error for 500 response")
	}
}
