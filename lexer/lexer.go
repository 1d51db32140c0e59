// Package lexer provides position-based scanning primitives over an
// immutable input string.
package lexer

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Whitespace is the set of runes skipped between tokens.
const Whitespace = " \t\n"

// Digits is the set of runes making up an integer literal.
const Digits = "0123456789"

type Lexer struct {
	input string

	atEOF bool

	pos   int // Current position in input.
	width int // Width of the last rune read.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Pos returns the current byte offset in the input.
func (l *Lexer) Pos() int { return l.pos }

// Since returns the input consumed from offset start up to the current position.
func (l *Lexer) Since(start int) string { return l.input[start:l.pos] }

// AtEOF reports whether the whole input has been consumed.
func (l *Lexer) AtEOF() bool { return l.pos >= len(l.input) }

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		l.width = 0
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.width = n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, there is nothing to give back.
	if l.atEOF {
		l.atEOF = false
		return
	}
	l.pos -= l.width
	l.width = 0
}

// Peek returns the next rune without consuming it, 0 at end of input.
func (l *Lexer) Peek() rune {
	r := l.next()
	l.backup()
	return r
}

// Accept consumes the next rune if it is in the valid set.
func (l *Lexer) Accept(valid string) bool {
	if r := l.next(); r != 0 && strings.ContainsRune(valid, r) {
		return true
	}
	l.backup()
	return false
}

// AcceptRun consumes runes as long as they are in the valid set and
// returns the consumed text.
func (l *Lexer) AcceptRun(valid string) string {
	start := l.pos
	for l.Accept(valid) {
	}
	return l.input[start:l.pos]
}

// SkipWhitespace consumes spaces, tabs and newlines.
func (l *Lexer) SkipWhitespace() {
	l.AcceptRun(Whitespace)
}

// TrySkip consumes lit if the input continues with it.
func (l *Lexer) TrySkip(lit string) bool {
	if lit == "" || !strings.HasPrefix(l.input[l.pos:], lit) {
		return false
	}
	l.pos += len(lit)
	l.width = 0
	return true
}

// ParseInt consumes a decimal integer literal. The boolean is false when
// the input does not continue with a digit. Literals that do not fit in an
// int saturate to math.MaxInt.
func (l *Lexer) ParseInt() (int, bool) {
	digits := l.AcceptRun(Digits)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt, true
	}
	return n, true
}
