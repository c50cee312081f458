package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind tells apart the reasons a text was rejected by Decode.
type ErrorKind int

const (
	// ExcessPadding means more trailing padding characters than the encoding allows.
	ExcessPadding ErrorKind = iota + 1
	// InvalidPaddingLength means the padding count cannot end on a byte boundary.
	InvalidPaddingLength
	// NonCanonicalPadding means bits covered by padding decode to a nonzero value.
	NonCanonicalPadding
	// InvalidCharacter means a character outside the alphabet, padding and whitespace.
	InvalidCharacter
	// IncompleteInput means the text does not end on a whole character group.
	IncompleteInput
)

// Sentinels, one per kind. Match them with errors.Is.
var (
	ErrExcessPadding        = errors.New("too many padding characters")
	ErrInvalidPaddingLength = errors.New("invalid padding length")
	ErrNonCanonicalPadding  = errors.New("non-zero bits under padding")
	ErrInvalidCharacter     = errors.New("invalid character")
	ErrIncompleteInput      = errors.New("incomplete input")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case ExcessPadding:
		return ErrExcessPadding
	case InvalidPaddingLength:
		return ErrInvalidPaddingLength
	case NonCanonicalPadding:
		return ErrNonCanonicalPadding
	case InvalidCharacter:
		return ErrInvalidCharacter
	case IncompleteInput:
		return ErrIncompleteInput
	}
	return nil
}

func (k ErrorKind) String() string {
	switch k {
	case ExcessPadding:
		return "ExcessPadding"
	case InvalidPaddingLength:
		return "InvalidPaddingLength"
	case NonCanonicalPadding:
		return "NonCanonicalPadding"
	case InvalidCharacter:
		return "InvalidCharacter"
	case IncompleteInput:
		return "IncompleteInput"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// DecodeError is returned by every failing Decode. Offset is the byte
// offset into the input text the problem was detected at, or -1 when the
// problem concerns the text as a whole. Char is only set for InvalidCharacter.
type DecodeError struct {
	Encoding string
	Kind     ErrorKind
	Offset   int
	Char     byte
}

func (e *DecodeError) Error() string {
	if e.Kind == InvalidCharacter {
		return fmt.Sprintf("%s: %v %q at offset %d", e.Encoding, e.Kind.sentinel(), e.Char, e.Offset)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %v at offset %d", e.Encoding, e.Kind.sentinel(), e.Offset)
	}
	return fmt.Sprintf("%s: %v", e.Encoding, e.Kind.sentinel())
}

// Unwrap exposes the sentinel of the error kind.
func (e *DecodeError) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf returns the kind of the DecodeError wrapped in err, or 0 if there is none.
func KindOf(err error) ErrorKind {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

func newDecodeError(d *descriptor, kind ErrorKind, offset int) error {
	return errors.WithStack(&DecodeError{
		Encoding: d.name,
		Kind:     kind,
		Offset:   offset,
	})
}

func newCharError(d *descriptor, offset int, c byte) error {
	return errors.WithStack(&DecodeError{
		Encoding: d.name,
		Kind:     InvalidCharacter,
		Offset:   offset,
		Char:     c,
	})
}
