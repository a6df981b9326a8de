// Package transcript defines the transcript text format shared by the
// transcribe and txt_to_docx tools: an Utterance record, a writer that
// serializes ordered utterances to the line-oriented format, and a parser
// that reconstructs them.
package transcript

import "errors"

// ErrNoEntries indicates a transcript file contained no parseable utterances.
// Downstream rendering treats this as unusable input.
var ErrNoEntries = errors.New("no transcript entries parsed")

// Utterance is one contiguous unit of speech by a single speaker.
// Timestamp is an opaque H:MM:SS (or HH:MM:SS) string; the parser never
// re-interprets its numeric value.
type Utterance struct {
	Timestamp string
	Speaker   string
	Text      string
}
