package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind int

// Syntax error kinds.
const (
	UnexpectedNumber ErrorKind = iota + 1
	UnexpectedCharacter
	UnexpectedEOF
)

// Sentinel errors matching each kind with errors.Is.
var (
	ErrUnexpectedNumber    = errors.New("unexpected number")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnexpectedEOF       = errors.New("unexpected EOF")
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedNumber:
		return ErrUnexpectedNumber.Error()
	case UnexpectedCharacter:
		return ErrUnexpectedCharacter.Error()
	case UnexpectedEOF:
		return ErrUnexpectedEOF.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyntaxError reports input that is not a valid expression.
type SyntaxError struct {
	Kind   ErrorKind
	Number int  // Offending literal, for UnexpectedNumber.
	Char   rune // Offending character, for UnexpectedCharacter.
	Pos    int  // Byte offset in the input.
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedNumber:
		return fmt.Sprintf("unexpected number %d at offset %d", e.Number, e.Pos)
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
	}
	return e.Kind.String()
}

// Unwrap returns the sentinel error of the kind.
func (e *SyntaxError) Unwrap() error {
	switch e.Kind {
	case UnexpectedNumber:
		return ErrUnexpectedNumber
	case UnexpectedCharacter:
		return ErrUnexpectedCharacter
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	}
	return nil
}
