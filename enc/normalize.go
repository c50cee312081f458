package enc

// encodedLen is the length of the text encoding n bytes, padding included.
func (d *descriptor) encodedLen(n int) int {
	groups := (n*8 + d.bitsPerGroup - 1) / d.bitsPerGroup
	return groups * d.charsPerGroup
}

// dataChars is the number of alphabet characters needed to carry n bytes.
// The rest of the encoded group is made of padding characters.
func (d *descriptor) dataChars(n int) int {
	return (n*8 + d.bitsPerChunk - 1) / d.bitsPerChunk
}

// pad fills dst, from position from onwards, with padding characters.
func pad(dst []byte, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = PaddingChar
	}
}

// trailingPadding scans text backwards over whitespace and padding
// characters. It returns the number of padding characters and the offset of
// the first byte of that trailing region; everything from that offset on is
// either whitespace or padding.
func (d *descriptor) trailingPadding(text string) (count, start int, err error) {
	start = len(text)
	for i := len(text) - 1; i >= 0; i-- {
		c := text[i]
		if c == PaddingChar {
			count++
			if count > d.maxPadding {
				return 0, 0, newDecodeError(d, ExcessPadding, i)
			}
		} else if !isSpace(c) {
			break
		}
		start = i
	}
	return count, start, nil
}

// normalize turns text into chunk values. Whitespace is dropped, padding
// characters at or after padStart are replaced by the zero character before
// the alphabet lookup.
func (d *descriptor) normalize(text string, padStart int) ([]byte, error) {
	values := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isSpace(c) {
			continue
		}
		if i >= padStart && c == PaddingChar {
			c = d.zeroChar
		}
		v, ok := d.alphabet.value(c)
		if !ok {
			return nil, newCharError(d, i, c)
		}
		values = append(values, v)
	}
	return values, nil
}
