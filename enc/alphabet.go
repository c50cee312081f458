package enc

const (
	// PaddingChar fills an encoded group the input did not supply enough bits for.
	PaddingChar = '='

	invalidValue = 0xFF

	cb64    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	cb32Hex = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	cb16    = "0123456789ABCDEF"
)

// alphabet maps chunk values to characters and back. Decoding is done
// through a full 256 entry table, unknown characters map to invalidValue.
type alphabet struct {
	encode []byte
	decode [256]byte
}

// newAlphabet builds the tables for chars. With foldCase set, the lower
// case form of every letter decodes to the same value as the upper case one.
func newAlphabet(chars string, foldCase bool) *alphabet {
	a := &alphabet{
		encode: []byte(chars),
	}
	for i := range a.decode {
		a.decode[i] = invalidValue
	}
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		a.decode[c] = byte(i)
		if foldCase && c >= 'A' && c <= 'Z' {
			a.decode[c+('a'-'A')] = byte(i)
		}
	}
	return a
}

// char returns the character for value v. v must be below len(a.encode).
func (a *alphabet) char(v byte) byte {
	return a.encode[v]
}

// value returns the chunk value of c, and false if c is not in the alphabet.
func (a *alphabet) value(c byte) (byte, bool) {
	v := a.decode[c]
	return v, v != invalidValue
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
