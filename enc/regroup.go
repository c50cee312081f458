package enc

// nextSymbol reads the outWidth bit symbol starting at bit position pos of
// the stream formed by concatenating, most significant bit first, the low
// inWidth bits of every element of src. Bits past the end of src read as
// zero. It returns the symbol and the position right after it.
//
// Both widths must be between 1 and 8.
func nextSymbol(src []byte, inWidth, outWidth, pos int) (byte, int) {
	var out uint
	for need := outWidth; need > 0; {
		idx, off := pos/inWidth, pos%inWidth
		avail := inWidth - off
		take := avail
		if take > need {
			take = need
		}

		var sym uint
		if idx < len(src) {
			sym = uint(src[idx])
		}
		out = out<<uint(take) | (sym>>uint(avail-take))&(1<<uint(take)-1)

		need -= take
		pos += take
	}
	return byte(out), pos
}

// regroup converts the first count outWidth bit symbols of src (a stream of
// inWidth bit symbols) into dst, which must have room for count elements.
func regroup(dst, src []byte, inWidth, outWidth, count int) {
	pos := 0
	for i := 0; i < count; i++ {
		dst[i], pos = nextSymbol(src, inWidth, outWidth, pos)
	}
}
