package webvtt

import "strings"

// readHeader validates the document preamble: optional byte-order mark,
// the literal WEBVTT magic, optional free-form trailing text introduced by
// a space or tab, then the two mandatory line terminators separating the
// header from the first block.
func (p *parser) readHeader() error {
	if strings.HasPrefix(p.buf[p.cur.pos:], bom) {
		p.cur.pos += len(bom)
	}
	if !strings.HasPrefix(p.buf[p.cur.pos:], signature) {
		return p.fail(ErrMissingSignature, p.peekRun(len(signature)))
	}
	p.cur.pos += len(signature)
	if !p.eof() && (p.buf[p.cur.pos] == ' ' || p.buf[p.cur.pos] == '\t') {
		p.cur.pos++
		for !p.eof() && p.buf[p.cur.pos] != '\n' {
			p.cur.pos++
		}
	}
	for i := 0; i < 2; i++ {
		if p.eof() || p.buf[p.cur.pos] != '\n' {
			return p.fail(ErrExpectedLineTerminator, p.peekRun(1))
		}
		p.cur.pos++
		p.cur.line++
	}
	return nil
}
