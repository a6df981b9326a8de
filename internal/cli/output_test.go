package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDeriveTranscriptPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"m4a", "call1.m4a", "call1_transcript.txt"},
		{"mp3_with_dir", "/meetings/standup.mp3", "/meetings/standup_transcript.txt"},
		{"no_extension", "audio", "audio_transcript.txt"},
		{"double_extension", "file.backup.ogg", "file.backup_transcript.txt"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := deriveTranscriptPath(tt.input); got != tt.expected {
				t.Errorf("deriveTranscriptPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDeriveDocxPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"transcript_txt", "call1_transcript.txt", "call1_transcript.docx"},
		{"with_dir", "/notes/session.txt", "/notes/session.docx"},
		{"no_extension", "session", "session.docx"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := deriveDocxPath(tt.input); got != tt.expected {
				t.Errorf("deriveDocxPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes_new_file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		if err := writeFileAtomic(path, "content"); err != nil {
			t.Fatalf("writeFileAtomic() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(data) != "content" {
			t.Errorf("content = %q, want %q", data, "content")
		}
	})

	t.Run("refuses_existing_file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		err := writeFileAtomic(path, "new")
		if !errors.Is(err, ErrOutputExists) {
			t.Fatalf("writeFileAtomic() = %v, want ErrOutputExists", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "old" {
			t.Error("existing file was modified")
		}
	})

	t.Run("missing_directory", func(t *testing.T) {
		t.Parallel()
		err := writeFileAtomic(filepath.Join(t.TempDir(), "nope", "out.txt"), "content")
		if err == nil {
			t.Fatal("expected error for missing directory")
		}
	})
}
