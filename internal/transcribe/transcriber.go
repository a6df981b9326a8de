// Package transcribe converts audio files to speaker-attributed utterances
// using AssemblyAI's transcription API. The call blocks until the provider
// returns a completed or errored result; a provider-reported error is fatal,
// with no retry.
package transcribe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/scribedoc/scribedoc/internal/apierr"
	"github.com/scribedoc/scribedoc/internal/format"
	"github.com/scribedoc/scribedoc/internal/lang"
	"github.com/scribedoc/scribedoc/internal/transcript"
)

// Options configures a transcription request.
type Options struct {
	// LanguageCode is the audio language (ISO 639-1, e.g. "en", "en_us").
	// Empty means the provider's default.
	LanguageCode string

	// SpeakerLabels enables speaker diarization. The provider attributes
	// each utterance to an opaque label ("A", "B", ...).
	SpeakerLabels bool

	// SpeechModels lists model identifiers in preference order. The first
	// entry is used; later entries are tried only when the provider rejects
	// the model itself (bad request).
	SpeechModels []string
}

// Transcriber transcribes audio files into ordered utterances.
type Transcriber interface {
	// Transcribe uploads the audio file and blocks until the provider
	// returns the finished transcript. Utterances are returned in temporal
	// order with start timestamps already formatted as H:MM:SS.
	Transcribe(ctx context.Context, audioPath string, opts Options) ([]transcript.Utterance, error)
}

// transcriptAPI is the narrow slice of the AssemblyAI SDK this package uses.
// *aai.TranscriptService implements it implicitly; tests inject mocks.
type transcriptAPI interface {
	TranscribeFromReader(ctx context.Context, r io.Reader, params *aai.TranscriptOptionalParams) (aai.Transcript, error)
}

// Compile-time interface compliance checks.
var (
	_ Transcriber   = (*AssemblyAITranscriber)(nil)
	_ transcriptAPI = (*aai.TranscriptService)(nil)
)

// AssemblyAITranscriber transcribes audio using AssemblyAI. The SDK handles
// upload and result polling internally, so Transcribe is a single blocking
// call from the caller's point of view.
type AssemblyAITranscriber struct {
	api transcriptAPI
}

// NewAssemblyAITranscriber creates a transcriber backed by the given client.
func NewAssemblyAITranscriber(client *aai.Client) *AssemblyAITranscriber {
	return &AssemblyAITranscriber{api: client.Transcripts}
}

// newWithAPI is used by tests to inject a mock API.
func newWithAPI(api transcriptAPI) *AssemblyAITranscriber {
	return &AssemblyAITranscriber{api: api}
}

// Transcribe implements Transcriber.
func (t *AssemblyAITranscriber) Transcribe(ctx context.Context, audioPath string, opts Options) ([]transcript.Utterance, error) {
	f, err := os.Open(audioPath) // #nosec G304 -- audioPath is the user's CLI argument
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer func() { _ = f.Close() }()

	models := opts.SpeechModels
	if len(models) == 0 {
		models = []string{""}
	}

	var lastErr error
	for i, model := range models {
		if i > 0 {
			// The previous attempt consumed the reader.
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				return nil, fmt.Errorf("failed to rewind audio file: %w", err)
			}
		}

		result, err := t.api.TranscribeFromReader(ctx, f, requestParams(opts, model))
		if err != nil {
			lastErr = classify(err)
			// A rejected model is the only case worth falling back on.
			if errors.Is(lastErr, apierr.ErrBadRequest) && i < len(models)-1 {
				continue
			}
			return nil, lastErr
		}

		if result.Status == aai.TranscriptStatusError {
			return nil, fmt.Errorf("%s: %w", deref(result.Error), ErrTranscriptionFailed)
		}

		return toUtterances(result), nil
	}

	return nil, lastErr
}

// requestParams builds the SDK request parameters for one attempt.
func requestParams(opts Options, model string) *aai.TranscriptOptionalParams {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: ptr(opts.SpeakerLabels),
	}
	if opts.LanguageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(lang.Normalize(opts.LanguageCode))
	}
	if model != "" {
		params.SpeechModel = aai.SpeechModel(model)
	}
	return params
}

// toUtterances converts the provider result into the transcript data model,
// preserving the provider's utterance order.
func toUtterances(result aai.Transcript) []transcript.Utterance {
	entries := make([]transcript.Utterance, 0, len(result.Utterances))
	for _, u := range result.Utterances {
		entries = append(entries, transcript.Utterance{
			Timestamp: format.Timestamp(deref(u.Start)),
			Speaker:   "Speaker " + deref(u.Speaker),
			Text:      deref(u.Text),
		})
	}
	return entries
}

// classify maps SDK errors to apierr sentinels.
func classify(err error) error {
	var apiErr aai.APIError
	if errors.As(err, &apiErr) {
		return apierr.Classify(apiErr.Status, apiErr.Message)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", apierr.ErrTimeout)
	}
	return err
}

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
