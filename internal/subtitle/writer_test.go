package subtitle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/subvet/subvet/internal/webvtt"
)

func TestSRTWriterWrite(t *testing.T) {
	sub := &Subtitle{
		Format: string(FormatSRT),
		Entries: []Entry{
			{
				Index:     1,
				StartTime: 1 * time.Second,
				EndTime:   2500 * time.Millisecond,
				Text:      "Hello, world!",
			},
			{
				Index:     2,
				StartTime: 1*time.Hour + 2*time.Minute + 3*time.Second,
				EndTime:   1*time.Hour + 2*time.Minute + 4*time.Second,
				Text:      "Second line",
			},
		},
	}

	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "out", "test.srt")

	writer, err := NewWriter(FormatSRT)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := writer.Write(sub, outPath); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "1\n" +
		"00:00:01,000 --> 00:00:02,500\n" +
		"Hello, world!\n\n" +
		"2\n" +
		"01:02:03,000 --> 01:02:04,000\n" +
		"Second line\n\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", string(got), want)
	}
}

func TestNewWriterUnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(FormatVTT); err == nil {
		t.Error("expected error for VTT writer, the reader is one-way")
	}
}

func TestFormatSRTTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00,000"},
		{1500 * time.Millisecond, "00:00:01,500"},
		{59*time.Minute + 59*time.Second + 999*time.Millisecond, "00:59:59,999"},
		{25 * time.Hour, "25:00:00,000"},
	}

	for _, tt := range tests {
		if got := formatSRTTime(tt.d); got != tt.want {
			t.Errorf("formatSRTTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFromDocument(t *testing.T) {
	doc := &webvtt.Document{
		Cues: []webvtt.Cue{
			{Start: 1.0, End: 2.5, Text: "Hello"},
		},
	}

	sub := FromDocument(doc)
	if sub.Format != string(FormatVTT) {
		t.Errorf("format = %q, want %q", sub.Format, FormatVTT)
	}
	if len(sub.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(sub.Entries))
	}
	entry := sub.Entries[0]
	if entry.Index != 1 {
		t.Errorf("index = %d, want 1", entry.Index)
	}
	if entry.StartTime != 1*time.Second {
		t.Errorf("start = %v, want 1s", entry.StartTime)
	}
	if entry.EndTime != 2500*time.Millisecond {
		t.Errorf("end = %v, want 2.5s", entry.EndTime)
	}
	if entry.Text != "Hello" {
		t.Errorf("text = %q, want %q", entry.Text, "Hello")
	}
}
