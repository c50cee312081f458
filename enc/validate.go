package enc

// paddingBytes checks that padChars padding characters can end on a byte
// boundary and returns the number of decoded bytes they stand for.
func (d *descriptor) paddingBytes(padChars int) (int, error) {
	padBits := (padChars*d.bitsPerChunk + 7) &^ 7
	if padBits > d.bitsPerChunk*(padChars+1) {
		return 0, newDecodeError(d, InvalidPaddingLength, -1)
	}
	return padBits / 8, nil
}

// canonical verifies the last padBytes bytes of raw are zero and strips them.
func (d *descriptor) canonical(raw []byte, padBytes int) ([]byte, error) {
	if padBytes > len(raw) {
		return nil, newDecodeError(d, InvalidPaddingLength, -1)
	}
	for _, b := range raw[len(raw)-padBytes:] {
		if b != 0 {
			return nil, newDecodeError(d, NonCanonicalPadding, -1)
		}
	}
	return raw[:len(raw)-padBytes], nil
}
