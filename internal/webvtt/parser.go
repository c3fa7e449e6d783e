// Package webvtt implements a strict, single-shot reader for WebVTT-shaped
// caption documents.
//
// The reader consumes an already-materialized text buffer, never the other
// way back: there is no writer here. Malformed input anywhere fails the
// whole parse with a *ParseError carrying the line number, byte offset,
// and the literal text found.
package webvtt

// Cue is one timed caption unit.
type Cue struct {
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

// Document is the result of one parse.
type Document struct {
	Cues []Cue
}

const (
	signature = "WEBVTT"
	arrow     = "-->"
	bom       = "\ufeff"
)

// parser threads all mutable state of one Parse call. Nothing escapes it,
// so concurrent parses share no state.
type parser struct {
	buf string
	cur cursor
}

func newParser(content string) *parser {
	return &parser{buf: normalize(content), cur: cursor{line: 1}}
}

// Parse reads one caption document: signature header, blank separator,
// then cue blocks.
//
// The reader is deliberately single-shot at the block level: after the
// header it consumes exactly one cue block, so the returned document holds
// at most one cue and input past the first block boundary is left unread.
// This mirrors the reference reader this package stays compatible with.
func Parse(content string) (*Document, error) {
	p := newParser(content)
	if err := p.readHeader(); err != nil {
		return nil, err
	}
	doc := &Document{}
	if p.nearEOF() {
		return doc, nil
	}
	cue, err := p.readBlock()
	if err != nil {
		return nil, err
	}
	doc.Cues = append(doc.Cues, cue)
	return doc, nil
}
