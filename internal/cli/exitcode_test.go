package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/scribedoc/scribedoc/internal/config"
	"github.com/scribedoc/scribedoc/internal/transcribe"
	"github.com/scribedoc/scribedoc/internal/transcript"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitOK},
		{"interrupt", context.Canceled, ExitInterrupt},
		{"wrapped_interrupt", fmt.Errorf("stopped: %w", context.Canceled), ExitInterrupt},
		{"usage_wrong_args", errors.New(`accepts 1 arg(s), received 0`), ExitUsage},
		{"usage_unknown_flag", errors.New("unknown flag: --bogus"), ExitUsage},
		{"missing_key", config.ErrKeyNotFound, ExitGeneral},
		{"empty_key", config.ErrKeyEmpty, ExitGeneral},
		{"missing_config", config.ErrConfigNotFound, ExitGeneral},
		{"invalid_config", config.ErrConfigInvalid, ExitGeneral},
		{"missing_input", ErrFileNotFound, ExitGeneral},
		{"provider_failure", transcribe.ErrTranscriptionFailed, ExitGeneral},
		{"no_entries", transcript.ErrNoEntries, ExitGeneral},
		{"output_exists", ErrOutputExists, ExitGeneral},
		{"plain_error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.expected {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
