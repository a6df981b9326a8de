package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scribedoc/scribedoc/internal/render"
	"github.com/scribedoc/scribedoc/internal/transcript"
)

// ConvertCmd creates the root command of the txt_to_docx binary.
func ConvertCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txt_to_docx <transcript.txt> [output.docx]",
		Short: "Render a text transcript as a styled Word document",
		Long: `Parse a transcript produced by the transcribe tool and render it as a .docx
document: a title and source metadata, then one colored heading+text block per
utterance, with a stable color per speaker.

If no output path is given, the document is written beside the input with a
.docx extension.`,
		Example: `  txt_to_docx call1_transcript.txt
  txt_to_docx call1_transcript.txt session.docx`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			return runConvert(env, args[0], output)
		},
	}

	return cmd
}

// runConvert executes the formatter pipeline: parse, then render.
func runConvert(env *Env, inputPath, output string) error {
	f, err := os.Open(inputPath) // #nosec G304 -- inputPath is the user's CLI argument
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
		}
		return fmt.Errorf("cannot open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := transcript.Parse(f)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w from %s", transcript.ErrNoEntries, inputPath)
	}

	if output == "" {
		output = deriveDocxPath(inputPath)
	}

	doc := render.Document{
		Entries:    entries,
		SourceName: filepath.Base(inputPath),
	}
	// Best effort: the metadata line is omitted when the mod time is unavailable.
	if info, err := os.Stat(inputPath); err == nil {
		doc.ModTime = info.ModTime()
		doc.HasModTime = true
	}

	if err := env.Renderer.Render(doc, output); err != nil {
		return err
	}

	fmt.Fprintf(env.Stderr, "Created Word document: %s\n", output)
	return nil
}
