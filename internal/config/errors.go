package config

import "errors"

var (
	// ErrConfigNotFound indicates the transcription config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates the config file is not valid JSON or is
	// missing required keys.
	ErrConfigInvalid = errors.New("invalid config")

	// ErrKeyNotFound indicates the API key file does not exist.
	ErrKeyNotFound = errors.New("API key file not found")

	// ErrKeyEmpty indicates the API key file exists but contains no key.
	ErrKeyEmpty = errors.New("API key file is empty")
)
