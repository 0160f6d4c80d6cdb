// ============================================================================
// Scribe - Voice Dictation Assistant
// ============================================================================
//
// Package:     stt
// Description: Remote transcription backend (HTTP capabilities, websocket streaming)
// Created:     2026-08-06
// License:     MIT
// ============================================================================

package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"scribe/internal/audio"
	"scribe/internal/logging"
	"scribe/internal/model"
)

// RemoteBackend talks to a transcription server: locale capabilities via
// HTTP, transcription via a websocket that streams text fragments.
type RemoteBackend struct {
	baseURL string
	client  *http.Client
	logger  *logging.Logger
}

// NewRemoteBackend creates a remote backend for the given server base URL
func NewRemoteBackend(baseURL string, logger *logging.Logger) *RemoteBackend {
	if logger == nil {
		logger = logging.New("remote-stt")
	}
	return &RemoteBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Name identifies the backend in logs
func (r *RemoteBackend) Name() string { return "remote" }

// Kind is the model family this backend executes
func (r *RemoteBackend) Kind() model.Kind { return model.KindRemote }

// Available reports whether a server URL is configured
func (r *RemoteBackend) Available() bool { return r.baseURL != "" }

// localesResponse is the capability document served by the remote server
type localesResponse struct {
	Supported []string `json:"supported"`
	Installed []string `json:"installed"`
}

func (r *RemoteBackend) fetchLocales(ctx context.Context) (localesResponse, error) {
	var doc localesResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/v1/locales", nil)
	if err != nil {
		return doc, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return doc, fmt.Errorf("locale query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return doc, fmt.Errorf("locale query returned %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return doc, fmt.Errorf("invalid locale document: %w", err)
	}
	return doc, nil
}

// SupportedLocales queries the server's supported locale set
func (r *RemoteBackend) SupportedLocales(ctx context.Context) ([]string, error) {
	doc, err := r.fetchLocales(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Supported, nil
}

// InstalledLocales queries the server's installed locale set
func (r *RemoteBackend) InstalledLocales(ctx context.Context) ([]string, error) {
	doc, err := r.fetchLocales(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Installed, nil
}

// wsMessage is the websocket frame format for the transcription stream
type wsMessage struct {
	Type   string `json:"type"`
	Locale string `json:"locale,omitempty"`
	Text   string `json:"text,omitempty"`
	Error  string `json:"error,omitempty"`
}

// wsURL derives the websocket endpoint from the HTTP base URL
func (r *RemoteBackend) wsURL() (string, error) {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/v1/transcribe"
	return u.String(), nil
}

// Transcribe uploads the audio over the websocket and streams fragments
// until the server reports done. Cancelling the context closes the
// connection and aborts the stream. The input is normalized to mono
// 16-bit PCM before upload; the server accepts nothing else.
func (r *RemoteBackend) Transcribe(ctx context.Context, audioPath, locale string, onFragment FragmentFunc) error {
	samples, sampleRate, err := audio.ReadWAV(audioPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	var payload bytes.Buffer
	if err := audio.EncodeWAV(&payload, samples, sampleRate); err != nil {
		return fmt.Errorf("failed to encode audio: %w", err)
	}

	endpoint, err := r.wsURL()
	if err != nil {
		return err
	}

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	// Unblock reads when the caller cancels.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	if err := conn.WriteJSON(wsMessage{Type: "start", Locale: locale}); err != nil {
		return fmt.Errorf("failed to start stream: %w", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, payload.Bytes()); err != nil {
		return fmt.Errorf("failed to send audio: %w", err)
	}
	if err := conn.WriteJSON(wsMessage{Type: "end"}); err != nil {
		return fmt.Errorf("failed to end stream: %w", err)
	}

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("stream read failed: %w", err)
		}

		switch msg.Type {
		case "fragment":
			if onFragment != nil {
				onFragment(msg.Text)
			}
		case "done":
			return nil
		case "error":
			if strings.Contains(msg.Error, "asset") {
				return fmt.Errorf("%w: %s", ErrAssetAllocation, msg.Error)
			}
			return fmt.Errorf("%w: server: %s", ErrTranscriptionFailed, msg.Error)
		}
	}
}
