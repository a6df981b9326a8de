// Package render turns an ordered utterance sequence into a styled .docx
// document: title, source metadata, an explanatory note, then one colored
// heading+body block per utterance, with a stable color per speaker.
package render

import (
	"fmt"
	"os"
	"time"

	docx "github.com/fumiama/go-docx"

	"github.com/scribedoc/scribedoc/internal/transcript"
)

// Fixed document copy.
const (
	documentTitle = "Therapy Session Transcript"
	documentNote  = "Note: This transcript is anonymized and intended for clinical/educational use. " +
		"Speakers are labeled generically (e.g., Speaker A, Speaker B)."
)

// Font sizes in half-points (docx w:sz units).
const (
	sizeTitle    = "56" // 28pt
	sizeSubtitle = "26" // 13pt
	sizeBody     = "22" // 11pt
)

// palette holds the speaker colors as RGB hex, assigned in first-seen order
// and cycled when speakers outnumber colors.
var palette = []string{
	"1F497D", // dark blue
	"4F81BD", // blue
	"7030A0", // purple
	"008000", // green
	"C0504D", // red
	"806000", // brown/gold
}

// Document is the input to a render: the parsed utterances plus best-effort
// metadata about the source transcript file.
type Document struct {
	Entries    []transcript.Utterance
	SourceName string

	// ModTime is the source file's last modification time. When the stat
	// failed, HasModTime is false and the metadata line is omitted.
	ModTime    time.Time
	HasModTime bool
}

// Renderer renders a Document to a file.
type Renderer interface {
	Render(d Document, outPath string) error
}

// Compile-time interface compliance check.
var _ Renderer = (*DocxRenderer)(nil)

// DocxRenderer renders Documents as Word files.
type DocxRenderer struct{}

// NewDocxRenderer creates a DocxRenderer.
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Render builds the document and writes it to outPath.
// Returns transcript.ErrNoEntries for an empty utterance sequence; no file is
// created in that case.
func (r *DocxRenderer) Render(d Document, outPath string) error {
	if len(d.Entries) == 0 {
		return fmt.Errorf("%w from %s", transcript.ErrNoEntries, d.SourceName)
	}

	w := build(d)

	f, err := os.Create(outPath) // #nosec G304 -- outPath is the user's CLI argument
	if err != nil {
		return fmt.Errorf("cannot create document: %w", err)
	}

	if _, err := w.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(outPath)
		return fmt.Errorf("failed to save document: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(outPath)
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// build assembles the in-memory document.
func build(d Document) *docx.Docx {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText(documentTitle).Size(sizeTitle).Bold()
	w.AddParagraph().AddText("Source file: " + d.SourceName).Size(sizeSubtitle)

	if d.HasModTime {
		meta := w.AddParagraph()
		meta.AddText("Session date (file timestamp): ").Size(sizeBody).Bold()
		meta.AddText(d.ModTime.Format("2006-01-02 15:04")).Size(sizeBody)
	}

	w.AddParagraph()
	w.AddParagraph().AddText(documentNote).Size(sizeBody).Italic()
	w.AddParagraph()

	colors := speakerColors(d.Entries)
	for _, u := range d.Entries {
		color := colors[u.Speaker]

		heading := w.AddParagraph()
		heading.AddText(fmt.Sprintf("[%s] %s", u.Timestamp, u.Speaker)).
			Size(sizeBody).Bold().Color(color)

		if u.Text != "" {
			w.AddParagraph().AddText(u.Text).Size(sizeBody).Color(color)
		}

		w.AddParagraph()
	}

	return w
}

// speakerColors assigns each speaker a palette color in first-seen order,
// cycling modulo the palette length. Assignment depends only on the order of
// first appearances, never on utterance text.
func speakerColors(entries []transcript.Utterance) map[string]string {
	colors := make(map[string]string)
	for _, u := range entries {
		if _, ok := colors[u.Speaker]; !ok {
			colors[u.Speaker] = palette[len(colors)%len(palette)]
		}
	}
	return colors
}
