package subtitle

import (
	"time"

	"github.com/subvet/subvet/internal/webvtt"
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// represents complete subtitle track
type Subtitle struct {
	Entries []Entry
	Format  string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// interface for writing subtitles to files
type Writer interface {
	Write(subtitle *Subtitle, path string) error
}

// FromDocument converts a parsed caption document into the track model
// the writers consume.
func FromDocument(doc *webvtt.Document) *Subtitle {
	sub := &Subtitle{Format: string(FormatVTT)}
	for i, cue := range doc.Cues {
		sub.Entries = append(sub.Entries, Entry{
			Index:     i + 1,
			StartTime: secondsToDuration(cue.Start),
			EndTime:   secondsToDuration(cue.End),
			Text:      cue.Text,
		})
	}
	return sub
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
