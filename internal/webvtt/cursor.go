package webvtt

import "strings"

// cursor is the read position over the normalized buffer: a byte offset
// and a 1-based line counter. Every grammar token is ASCII and the BOM is
// consumed as its full 3-byte encoding, so byte arithmetic never lands
// inside a multi-byte sequence; free text is carried by slicing between
// offsets, never indexed into.
type cursor struct {
	pos  int
	line int
}

func (p *parser) eof() bool { return p.cur.pos >= len(p.buf) }

// nearEOF reports whether at most one byte of input remains.
func (p *parser) nearEOF() bool { return p.cur.pos >= len(p.buf)-1 }

// mark and rewind are the only backtracking primitives. The grammar has
// exactly one backtrack point: re-scanning a line after its arrow has been
// spotted (see readBlock).
func (p *parser) mark() cursor    { return p.cur }
func (p *parser) rewind(m cursor) { p.cur = m }

// readLine consumes one LF-terminated line, excluding the terminator.
// Every line, the last included, must be terminated.
func (p *parser) readLine() (string, error) {
	i := strings.IndexByte(p.buf[p.cur.pos:], '\n')
	if i < 0 {
		return "", p.fail(ErrUnexpectedEOF, "")
	}
	line := p.buf[p.cur.pos : p.cur.pos+i]
	p.cur.pos += i + 1
	p.cur.line++
	return line, nil
}

// skipSpaces skips spaces and tabs, never line terminators.
func (p *parser) skipSpaces() {
	for !p.eof() && (p.buf[p.cur.pos] == ' ' || p.buf[p.cur.pos] == '\t') {
		p.cur.pos++
	}
}

// expectByte consumes b or fails with kind.
func (p *parser) expectByte(b byte, kind ErrorKind) error {
	if p.eof() || p.buf[p.cur.pos] != b {
		return p.fail(kind, p.peekRun(1))
	}
	p.cur.pos++
	return nil
}

// peekRun returns up to n bytes at the cursor for diagnostics.
func (p *parser) peekRun(n int) string {
	end := p.cur.pos + n
	if end > len(p.buf) {
		end = len(p.buf)
	}
	return p.buf[p.cur.pos:end]
}

func (p *parser) fail(kind ErrorKind, found string) *ParseError {
	return p.failAt(p.cur, kind, found)
}

func (p *parser) failAt(at cursor, kind ErrorKind, found string) *ParseError {
	return &ParseError{Kind: kind, Line: at.line, Offset: at.pos, Found: found}
}
