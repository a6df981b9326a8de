// Package config loads the transcription settings file (config.json) and the
// single-line API key file. Both paths are explicit arguments scoped to one
// run; there is no process-global configuration state.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/scribedoc/scribedoc/internal/lang"
)

// Default file names, resolved relative to the working directory.
const (
	DefaultConfigPath = "config.json"
	DefaultKeyPath    = "aai_api_key.txt"
)

// Config holds transcription settings loaded from config.json.
type Config struct {
	// LanguageCode is the audio language (ISO 639-1, e.g. "en", "en_us").
	LanguageCode string `mapstructure:"language_code"`

	// SpeakerLabels enables speaker diarization. Defaults to true.
	SpeakerLabels bool `mapstructure:"speaker_labels"`

	// SpeechModels lists model identifiers in preference order. The first
	// entry is the primary model; later entries are fallbacks. Must be
	// non-empty.
	SpeechModels []string `mapstructure:"speech_models"`
}

// Load reads and validates the config file at path.
// Returns ErrConfigNotFound if the file is missing, ErrConfigInvalid if it is
// not valid JSON or required keys are absent, and lang.ErrInvalid for an
// unrecognized language code.
func Load(path string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("speaker_labels", true)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return cfg, fmt.Errorf("%s is not valid JSON: %v: %w", path, err, ErrConfigInvalid)
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Required keys must be present in the file, not just zero-valued.
	for _, key := range []string{"language_code", "speech_models"} {
		if !v.IsSet(key) {
			return cfg, fmt.Errorf("%s must contain %q: %w", path, key, ErrConfigInvalid)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("%s has malformed values: %v: %w", path, err, ErrConfigInvalid)
	}

	if len(cfg.SpeechModels) == 0 {
		return cfg, fmt.Errorf("%s %q must be a non-empty list: %w", path, "speech_models", ErrConfigInvalid)
	}

	if err := lang.Validate(cfg.LanguageCode); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadAPIKey reads a single-line secret from the file at path.
// The key is trimmed of surrounding whitespace.
func LoadAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- key path is an explicit run-scoped setting
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s (create this file and put your AssemblyAI API key on a single line)",
				ErrKeyNotFound, path)
		}
		return "", fmt.Errorf("cannot read API key file %s: %w", path, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrKeyEmpty, path)
	}

	return key, nil
}
