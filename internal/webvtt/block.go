package webvtt

import "strings"

// readBlock consumes one cue block: an optional identifier line, the
// timing line, and text lines. The timing arrow is only honored within the
// first two lines of a block; an arrow past that belongs to the next
// block, so the cursor is rewound to let that line be read again. Once a
// block's arrow has been seen, later arrows are plain text. A block whose
// arrow never fell inside the lookahead window yields a cue with zero
// start and end times.
func (p *parser) readBlock() (Cue, error) {
	var (
		cue         Cue
		blockLineNo int
		seenArrow   bool
		text        strings.Builder
	)
	for !p.eof() {
		before := p.mark()
		line, err := p.readLine()
		if err != nil {
			return Cue{}, err
		}
		blockLineNo++
		if strings.Contains(line, arrow) && !seenArrow {
			if blockLineNo > 2 {
				// Next block's timing line: un-read it and stop here.
				p.rewind(before)
				break
			}
			seenArrow = true
			p.rewind(before)
			if err := p.readTiming(&cue); err != nil {
				return Cue{}, err
			}
			continue
		}
		text.WriteString(line)
	}
	cue.Text = text.String()
	return cue, nil
}

// readTiming re-scans the current line as `start --> end`, leaving the
// cursor right after the end timestamp. Anything after the end timestamp
// stays in the buffer and is picked up by the next readLine.
func (p *parser) readTiming(cue *Cue) error {
	p.skipSpaces()
	start, err := p.readTimestamp()
	if err != nil {
		return err
	}
	p.skipSpaces()
	if !strings.HasPrefix(p.buf[p.cur.pos:], arrow) {
		return p.fail(ErrExpectedArrow, p.peekRun(len(arrow)))
	}
	p.cur.pos += len(arrow)
	p.skipSpaces()
	end, err := p.readTimestamp()
	if err != nil {
		return err
	}
	cue.Start, cue.End = start, end
	return nil
}
