package webvtt

import "fmt"

// ErrorKind identifies the grammar rule a document violated.
type ErrorKind int

const (
	ErrMissingSignature ErrorKind = iota
	ErrExpectedLineTerminator
	ErrUnexpectedEOF
	ErrExpectedTimestamp
	ErrExpectedColon
	ErrExpectedFullStop
	ErrExpectedArrow
	ErrExpectedTwoDigitInteger
	ErrExpectedThreeDigitInteger
	ErrMinutesOutOfRange
	ErrSecondsOutOfRange
)

var kindDesc = map[ErrorKind]string{
	ErrMissingSignature:          "missing WEBVTT signature",
	ErrExpectedLineTerminator:    "expected line terminator",
	ErrUnexpectedEOF:             "unexpected end of input while reading a line",
	ErrExpectedTimestamp:         "expected timestamp",
	ErrExpectedColon:             `expected ":"`,
	ErrExpectedFullStop:          `expected "."`,
	ErrExpectedArrow:             `expected "-->"`,
	ErrExpectedTwoDigitInteger:   "expected a two-digit integer",
	ErrExpectedThreeDigitInteger: "expected a three-digit integer",
	ErrMinutesOutOfRange:         "minutes component exceeds 59",
	ErrSecondsOutOfRange:         "seconds component exceeds 59",
}

func (k ErrorKind) String() string {
	if d, ok := kindDesc[k]; ok {
		return d
	}
	return "unknown parse error"
}

// ParseError is the only failure type the parser produces. Every failure
// is fatal: the first one aborts the whole parse with no recovery and no
// partial result.
type ParseError struct {
	Kind   ErrorKind
	Line   int    // 1-based line number at the point of failure
	Offset int    // byte offset into the normalized input
	Found  string // literal text encountered, empty at end of input
}

func (e *ParseError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("line %d (offset %d): %s", e.Line, e.Offset, e.Kind)
	}
	return fmt.Sprintf("line %d (offset %d): %s, found %q", e.Line, e.Offset, e.Kind, e.Found)
}
