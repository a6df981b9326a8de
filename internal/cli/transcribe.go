package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scribedoc/scribedoc/internal/format"
	"github.com/scribedoc/scribedoc/internal/transcribe"
	"github.com/scribedoc/scribedoc/internal/transcript"
)

// TranscribeCmd creates the root command of the transcribe binary.
// The env parameter provides injectable dependencies for testing.
func TranscribeCmd(env *Env) *cobra.Command {
	var (
		output     string
		configPath string
		keyPath    string
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio file to a speaker-labeled text transcript",
		Long: `Transcribe an audio file using AssemblyAI's transcription API.

The audio is uploaded as-is and the call blocks until the provider returns the
finished transcript. Utterances are written to <audio-base>_transcript.txt
beside the input, one speaker-labeled, timestamped block per utterance.

Language, diarization, and speech models come from config.json; the API key
comes from the ` + EnvAPIKey + ` environment variable or the key file.`,
		Example: `  transcribe call1.m4a
  transcribe meetings/standup.mp3 -o standup.txt
  transcribe call1.m4a --config team-config.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd, env, args[0], output, configPath, keyPath)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: <input>_transcript.txt)")
	cmd.Flags().StringVar(&configPath, "config", "", "Transcription config file (default: "+env.ConfigPath+")")
	cmd.Flags().StringVar(&keyPath, "key-file", "", "API key file (default: "+env.KeyPath+")")

	return cmd
}

// runTranscribe executes the writer pipeline.
// Validation order: file exists -> config loads -> API key present.
func runTranscribe(cmd *cobra.Command, env *Env, inputPath, output, configPath, keyPath string) error {
	ctx := cmd.Context()

	if configPath == "" {
		configPath = env.ConfigPath
	}
	if keyPath == "" {
		keyPath = env.KeyPath
	}

	// 1. Input exists
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
		}
		return fmt.Errorf("cannot access input file: %w", err)
	}

	// 2. Config loads and validates
	cfg, err := env.ConfigLoader.Load(configPath)
	if err != nil {
		return err
	}

	// 3. API key: environment first, then the key file
	apiKey := env.Getenv(EnvAPIKey)
	if apiKey == "" {
		apiKey, err = env.KeyLoader.Load(keyPath)
		if err != nil {
			return err
		}
	}

	// 4. Output path beside the input unless overridden
	if output == "" {
		output = deriveTranscriptPath(inputPath)
	}

	// === TRANSCRIPTION ===

	fmt.Fprintf(env.Stderr, "Uploading %s (%s)...\n", inputPath, format.Size(info.Size()))

	start := env.Now()
	transcriber := env.TranscriberFactory.NewTranscriber(apiKey)
	entries, err := transcriber.Transcribe(ctx, inputPath, transcribe.Options{
		LanguageCode:  cfg.LanguageCode,
		SpeakerLabels: cfg.SpeakerLabels,
		SpeechModels:  cfg.SpeechModels,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stderr, "Transcription complete in %s. Saving output...\n",
		format.DurationHuman(env.Now().Sub(start)))

	// === WRITE OUTPUT ===

	var b strings.Builder
	if err := transcript.Write(&b, filepath.Base(inputPath), entries); err != nil {
		return err
	}
	if err := writeFileAtomic(output, b.String()); err != nil {
		return err
	}

	fmt.Fprintf(env.Stderr, "Done! Transcript saved to: %s\n", output)
	return nil
}
