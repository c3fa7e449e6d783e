package webvtt

import (
	"math"
	"strconv"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// readDigits consumes a maximal run of ASCII digits.
func (p *parser) readDigits() string {
	start := p.cur.pos
	for !p.eof() && isDigit(p.buf[p.cur.pos]) {
		p.cur.pos++
	}
	return p.buf[start:p.cur.pos]
}

// readFixedDigits consumes a maximal digit run and requires it to be
// exactly n digits long.
func (p *parser) readFixedDigits(n int, kind ErrorKind) (int, error) {
	at := p.mark()
	run := p.readDigits()
	if len(run) != n {
		return 0, p.failAt(at, kind, run)
	}
	v, err := strconv.Atoi(run)
	if err != nil {
		return 0, p.failAt(at, kind, run)
	}
	return v, nil
}

// atoiSaturating converts a digit run, clamping on overflow so an absurdly
// long component still counts as above the minute range.
func atoiSaturating(digits string) int {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return v
}

// readTimestamp parses one `[[HH:]MM:]SS.mmm`-shaped token into seconds.
//
// The first component decides the shape: a value above 59, or a digit
// count other than two, makes the token hour-qualified even when the value
// itself is small ("009" is hours, not minutes). An hour-qualified token
// must carry all three components; otherwise a third component is read
// only when a colon follows the second one.
func (p *parser) readTimestamp() (float64, error) {
	at := p.mark()
	if p.eof() || !isDigit(p.buf[p.cur.pos]) {
		return 0, p.failAt(at, ErrExpectedTimestamp, p.peekRun(1))
	}
	first := p.readDigits()
	hourQualified := len(first) != 2 || atoiSaturating(first) > 59

	if err := p.expectByte(':', ErrExpectedColon); err != nil {
		return 0, err
	}
	second, err := p.readFixedDigits(2, ErrExpectedTwoDigitInteger)
	if err != nil {
		return 0, err
	}

	var hours, minutes, seconds int
	if hourQualified || (!p.eof() && p.buf[p.cur.pos] == ':') {
		if err := p.expectByte(':', ErrExpectedColon); err != nil {
			return 0, err
		}
		third, err := p.readFixedDigits(2, ErrExpectedTwoDigitInteger)
		if err != nil {
			return 0, err
		}
		hours, minutes, seconds = atoiSaturating(first), second, third
	} else {
		minutes, seconds = atoiSaturating(first), second
	}

	if err := p.expectByte('.', ErrExpectedFullStop); err != nil {
		return 0, err
	}
	millis, err := p.readFixedDigits(3, ErrExpectedThreeDigitInteger)
	if err != nil {
		return 0, err
	}

	if minutes > 59 {
		return 0, p.failAt(at, ErrMinutesOutOfRange, strconv.Itoa(minutes))
	}
	if seconds > 59 {
		return 0, p.failAt(at, ErrSecondsOutOfRange, strconv.Itoa(seconds))
	}

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) +
		float64(millis)/1000, nil
}
