package cli

import (
	"io"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/scribedoc/scribedoc/internal/config"
	"github.com/scribedoc/scribedoc/internal/render"
	"github.com/scribedoc/scribedoc/internal/transcribe"
)

// EnvAPIKey is the environment variable checked before the key file.
// A .env file loaded at startup can supply it.
const EnvAPIKey = "ASSEMBLYAI_API_KEY"

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing commands in isolation.
//
// All fields have production defaults via DefaultEnv(). Tests override
// specific fields using the With* options or by creating a custom Env.
type Env struct {
	// I/O and environment
	Stderr io.Writer
	Getenv func(string) string
	Now    func() time.Time

	// Run-scoped file locations, overridable by flags.
	KeyPath    string
	ConfigPath string

	// Factories and collaborators for domain objects
	ConfigLoader       ConfigLoader
	KeyLoader          KeyLoader
	TranscriberFactory TranscriberFactory
	Renderer           render.Renderer
}

// ConfigLoader loads transcription configuration from a file.
type ConfigLoader interface {
	Load(path string) (config.Config, error)
}

// KeyLoader loads the API key secret from a file.
type KeyLoader interface {
	Load(path string) (string, error)
}

// TranscriberFactory creates transcribers for audio-to-text conversion.
type TranscriberFactory interface {
	NewTranscriber(apiKey string) transcribe.Transcriber
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithNow sets the time provider.
func WithNow(fn func() time.Time) EnvOption {
	return func(e *Env) {
		e.Now = fn
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithKeyLoader sets the API key loader.
func WithKeyLoader(l KeyLoader) EnvOption {
	return func(e *Env) {
		e.KeyLoader = l
	}
}

// WithTranscriberFactory sets the transcriber factory.
func WithTranscriberFactory(f TranscriberFactory) EnvOption {
	return func(e *Env) {
		e.TranscriberFactory = f
	}
}

// WithRenderer sets the document renderer.
func WithRenderer(r render.Renderer) EnvOption {
	return func(e *Env) {
		e.Renderer = r
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stderr:             os.Stderr,
		Getenv:             os.Getenv,
		Now:                time.Now,
		KeyPath:            config.DefaultKeyPath,
		ConfigPath:         config.DefaultConfigPath,
		ConfigLoader:       &defaultConfigLoader{},
		KeyLoader:          &defaultKeyLoader{},
		TranscriberFactory: &defaultTranscriberFactory{},
		Renderer:           render.NewDocxRenderer(),
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load(path string) (config.Config, error) {
	return config.Load(path)
}

// defaultKeyLoader implements KeyLoader using the config package.
type defaultKeyLoader struct{}

func (defaultKeyLoader) Load(path string) (string, error) {
	return config.LoadAPIKey(path)
}

// defaultTranscriberFactory implements TranscriberFactory using AssemblyAI.
type defaultTranscriberFactory struct{}

func (defaultTranscriberFactory) NewTranscriber(apiKey string) transcribe.Transcriber {
	client := aai.NewClient(apiKey)
	return transcribe.NewAssemblyAITranscriber(client)
}

// Compile-time interface verification.
var (
	_ ConfigLoader       = (*defaultConfigLoader)(nil)
	_ KeyLoader          = (*defaultKeyLoader)(nil)
	_ TranscriberFactory = (*defaultTranscriberFactory)(nil)
)
