// Package enc implements the base64, base32hex and base16 encodings of
// RFC 4648 with strict canonical validation on decode: excess padding,
// padding that does not end on a byte boundary and nonzero bits hidden under
// padding are all rejected. Whitespace anywhere in the encoded text is
// ignored when decoding and never produced when encoding.
package enc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Encoding is one of the supported binary-to-text encodings.
type Encoding int

const (
	// Base64 encodes 3 bytes to 4 characters (RFC 4648 section 4).
	Base64 Encoding = iota
	// Base32Hex encodes 5 bytes to 8 characters using the extended hex alphabet (RFC 4648 section 7).
	Base32Hex
	// Base16 encodes every byte as two upper case hex digits (RFC 4648 section 8).
	Base16
)

// Encoder is implemented by every Encoding. Consumers that only need to
// turn buffers into text and back should depend on this.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the number of bytes in one full group
	BlocksizeRaw() int

	// BlocksizeEncoded returns the number of characters output for every full group
	BlocksizeEncoded() int
}

// descriptor holds everything the shared algorithm needs to know about an encoding.
type descriptor struct {
	name          string
	bitsPerChunk  int
	bitsPerGroup  int
	charsPerGroup int
	maxPadding    int
	zeroChar      byte
	alphabet      *alphabet
}

func newDescriptor(name string, bitsPerChunk int, chars string, foldCase bool) *descriptor {
	group := lcm(bitsPerChunk, 8)
	charsPerGroup := group / bitsPerChunk
	charsPerByte := (8 + bitsPerChunk - 1) / bitsPerChunk
	if len(chars) != 1<<uint(bitsPerChunk) {
		panic(fmt.Sprintf("%s: alphabet must have %d characters, got %d", name, 1<<uint(bitsPerChunk), len(chars)))
	}
	return &descriptor{
		name:          name,
		bitsPerChunk:  bitsPerChunk,
		bitsPerGroup:  group,
		charsPerGroup: charsPerGroup,
		maxPadding:    charsPerGroup - charsPerByte,
		zeroChar:      chars[0],
		alphabet:      newAlphabet(chars, foldCase),
	}
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}

var descriptors = [...]*descriptor{
	Base64:    newDescriptor("base64", 6, cb64, false),
	Base32Hex: newDescriptor("base32hex", 5, cb32Hex, true),
	Base16:    newDescriptor("base16", 4, cb16, true),
}

// Encodings lists every supported encoding.
var Encodings = []Encoding{Base64, Base32Hex, Base16}

func (e Encoding) descriptor() *descriptor {
	if e < 0 || int(e) >= len(descriptors) {
		panic(fmt.Sprintf("enc: unknown encoding %d", int(e)))
	}
	return descriptors[e]
}

// ParseEncoding looks an encoding up by name, case-insensitively. "hex" is
// accepted as an alias of "base16".
func ParseEncoding(name string) (Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "hex" {
		return Base16, nil
	}
	for _, e := range Encodings {
		if e.Name() == n {
			return e, nil
		}
	}
	return 0, errors.Errorf("unknown encoding: %q", name)
}

// UnmarshalFlag lets an Encoding be used directly as a command line option.
func (e *Encoding) UnmarshalFlag(value string) error {
	parsed, err := ParseEncoding(value)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalFlag is the inverse of UnmarshalFlag.
func (e Encoding) MarshalFlag() (string, error) {
	return e.Name(), nil
}

// UnmarshalYAML reads an encoding name from a configuration file.
func (e *Encoding) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return errors.WithStack(err)
	}
	return e.UnmarshalFlag(name)
}

func (e *Encoding) UnmarshalText(text []byte) error {
	return e.UnmarshalFlag(string(text))
}

func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.Name()), nil
}

func (e Encoding) Name() string {
	return e.descriptor().name
}

func (e Encoding) String() string {
	return e.Name()
}

func (e Encoding) BlocksizeRaw() int {
	return e.descriptor().bitsPerGroup / 8
}

func (e Encoding) BlocksizeEncoded() int {
	return e.descriptor().charsPerGroup
}

// BitsPerChunk is the number of bits carried by a single character.
func (e Encoding) BitsPerChunk() int {
	return e.descriptor().bitsPerChunk
}

// MaxPadding is the largest number of padding characters a canonical text may end with.
func (e Encoding) MaxPadding() int {
	return e.descriptor().maxPadding
}

// EncodedLen returns the length of the encoding of n bytes.
func (e Encoding) EncodedLen(n int) int {
	return e.descriptor().encodedLen(n)
}

// Encode returns the canonical encoding of data. It never fails.
func (e Encoding) Encode(data []byte) string {
	return e.descriptor().encode(data)
}

// Decode returns the bytes text is the canonical encoding of. Errors are
// always a *DecodeError (wrapped with a stack trace).
func (e Encoding) Decode(text string) ([]byte, error) {
	return e.descriptor().decode(text)
}

func (d *descriptor) encode(data []byte) string {
	out := make([]byte, d.encodedLen(len(data)))
	n := d.dataChars(len(data))
	regroup(out, data, 8, d.bitsPerChunk, n)
	for i := 0; i < n; i++ {
		out[i] = d.alphabet.char(out[i])
	}
	pad(out, n)
	return string(out)
}

func (d *descriptor) decode(text string) ([]byte, error) {
	padChars, padStart, err := d.trailingPadding(text)
	if err != nil {
		return nil, err
	}
	padBytes, err := d.paddingBytes(padChars)
	if err != nil {
		return nil, err
	}

	values, err := d.normalize(text, padStart)
	if err != nil {
		return nil, err
	}
	if len(values)%d.charsPerGroup != 0 {
		return nil, newDecodeError(d, IncompleteInput, -1)
	}

	raw := make([]byte, len(values)*d.bitsPerChunk/8)
	regroup(raw, values, d.bitsPerChunk, 8, len(raw))

	return d.canonical(raw, padBytes)
}

// EncodeBase64 returns the base64 encoding of binary.
func EncodeBase64(binary []byte) string {
	return Base64.Encode(binary)
}

// DecodeBase64 decodes base64 text.
func DecodeBase64(text string) ([]byte, error) {
	return Base64.Decode(text)
}

// EncodeBase32Hex returns the base32hex encoding of binary.
func EncodeBase32Hex(binary []byte) string {
	return Base32Hex.Encode(binary)
}

// DecodeBase32Hex decodes base32hex text, accepting either letter case.
func DecodeBase32Hex(text string) ([]byte, error) {
	return Base32Hex.Decode(text)
}

// EncodeHex returns the upper case base16 encoding of binary.
func EncodeHex(binary []byte) string {
	return Base16.Encode(binary)
}

// DecodeHex decodes hex text, accepting either letter case.
func DecodeHex(text string) ([]byte, error) {
	return Base16.Decode(text)
}
