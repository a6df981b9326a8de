package transcript

import (
	"fmt"
	"io"
	"strings"
)

// rulerWidth is the width of the banner ruler under the TRANSCRIPT line.
const rulerWidth = 60

// Write serializes an ordered utterance sequence to the transcript text
// format: a banner naming the source file, then one header + text block per
// utterance. A blank line is inserted before a header only when the speaker
// changes; every utterance keeps its own header either way, so a write
// followed by Parse reproduces the sequence.
func Write(w io.Writer, sourceName string, entries []Utterance) error {
	if _, err := fmt.Fprintf(w, "TRANSCRIPT: %s\n%s\n\n", sourceName, strings.Repeat("=", rulerWidth)); err != nil {
		return fmt.Errorf("failed to write transcript header: %w", err)
	}

	prevSpeaker := ""
	for i, u := range entries {
		if i > 0 && u.Speaker != prevSpeaker {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("failed to write transcript: %w", err)
			}
		}
		if _, err := fmt.Fprintf(w, "[%s] %s:\n%s\n", u.Timestamp, u.Speaker, u.Text); err != nil {
			return fmt.Errorf("failed to write transcript: %w", err)
		}
		prevSpeaker = u.Speaker
	}

	return nil
}
