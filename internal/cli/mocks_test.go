package cli

import (
	"context"
	"sync"

	"github.com/scribedoc/scribedoc/internal/config"
	"github.com/scribedoc/scribedoc/internal/render"
	"github.com/scribedoc/scribedoc/internal/transcribe"
	"github.com/scribedoc/scribedoc/internal/transcript"
)

// ---------------------------------------------------------------------------
// Mock ConfigLoader
// ---------------------------------------------------------------------------

type mockConfigLoader struct {
	LoadFunc func(path string) (config.Config, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *mockConfigLoader) Load(path string) (config.Config, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return config.Config{
		LanguageCode:  "en",
		SpeakerLabels: true,
		SpeechModels:  []string{"best"},
	}, nil
}

func (m *mockConfigLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// ---------------------------------------------------------------------------
// Mock KeyLoader
// ---------------------------------------------------------------------------

type mockKeyLoader struct {
	LoadFunc func(path string) (string, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *mockKeyLoader) Load(path string) (string, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return "test-api-key", nil
}

func (m *mockKeyLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// ---------------------------------------------------------------------------
// Mock TranscriberFactory + Transcriber
// ---------------------------------------------------------------------------

type mockTranscriber struct {
	TranscribeFunc func(ctx context.Context, audioPath string, opts transcribe.Options) ([]transcript.Utterance, error)

	mu    sync.Mutex
	calls int
	opts  []transcribe.Options
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audioPath string, opts transcribe.Options) ([]transcript.Utterance, error) {
	m.mu.Lock()
	m.calls++
	m.opts = append(m.opts, opts)
	m.mu.Unlock()

	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audioPath, opts)
	}
	return []transcript.Utterance{
		{Timestamp: "0:00:05", Speaker: "Speaker A", Text: "Hello there."},
		{Timestamp: "0:00:09", Speaker: "Speaker B", Text: "Hi, how are you?"},
	}, nil
}

func (m *mockTranscriber) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockTranscriber) Opts() []transcribe.Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opts
}

type mockTranscriberFactory struct {
	transcriber *mockTranscriber

	mu      sync.Mutex
	apiKeys []string
}

func (m *mockTranscriberFactory) NewTranscriber(apiKey string) transcribe.Transcriber {
	m.mu.Lock()
	m.apiKeys = append(m.apiKeys, apiKey)
	m.mu.Unlock()

	if m.transcriber == nil {
		m.transcriber = &mockTranscriber{}
	}
	return m.transcriber
}

func (m *mockTranscriberFactory) APIKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apiKeys
}

// ---------------------------------------------------------------------------
// Mock Renderer
// ---------------------------------------------------------------------------

type mockRenderer struct {
	RenderFunc func(d render.Document, outPath string) error

	mu    sync.Mutex
	docs  []render.Document
	paths []string
}

func (m *mockRenderer) Render(d render.Document, outPath string) error {
	m.mu.Lock()
	m.docs = append(m.docs, d)
	m.paths = append(m.paths, outPath)
	m.mu.Unlock()

	if m.RenderFunc != nil {
		return m.RenderFunc(d, outPath)
	}
	return nil
}

func (m *mockRenderer) Docs() []render.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs
}

func (m *mockRenderer) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paths
}
