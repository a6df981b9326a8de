package transcript

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// headerRe matches an utterance header line: "[0:00:05] Speaker A:".
// Group 1 is the timestamp, group 2 the speaker label.
var headerRe = regexp.MustCompile(`^\[(\d{1,2}:\d{2}:\d{2})\]\s+(Speaker\s+\w+):\s*$`)

// Parse reads a transcript text file and reconstructs its ordered utterance
// sequence in a single pass.
//
// Lines before the first header (the "TRANSCRIPT:" banner and ruler) are
// skipped. Each header starts a new utterance; following non-blank non-header
// lines are trimmed and joined with single spaces to form the text. A blank
// line or the next header ends the utterance. A header with no body yields an
// utterance with empty text, which is still emitted.
//
// A file with no header lines yields an empty slice and no error; callers
// decide whether that is fatal (see ErrNoEntries).
func Parse(r io.Reader) ([]Utterance, error) {
	scanner := bufio.NewScanner(r)
	// Transcript lines can be long single paragraphs; raise the scanner cap.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []Utterance
	var current *Utterance
	var textLines []string

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.Join(textLines, " ")
		entries = append(entries, *current)
		current = nil
		textLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		if m := headerRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Utterance{Timestamp: m[1], Speaker: m[2]}
			continue
		}

		if strings.TrimSpace(line) == "" {
			// Blank separator: ends the current utterance. Consecutive blank
			// lines before the next header fall through here harmlessly.
			flush()
			continue
		}

		if current != nil {
			textLines = append(textLines, strings.TrimSpace(line))
		}
		// Non-blank lines before the first header are skipped.
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	flush()
	return entries, nil
}
