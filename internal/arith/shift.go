package arith

// ShlVU computes z = x << s for a sub-word shift count 1 <= s <= 31
// and returns the bits shifted out past the top word.
//
// Words are processed least significant first; the bits spilling out
// of each word travel forward in the accumulator instead of being
// re-read from the source, so z may be the same buffer as x, or a
// window of the same buffer starting at or below x. Whole-word shifts
// (s == 0 or s >= 32) are outside the contract and must be handled by
// the caller as word moves. Precondition: len(z) == len(x).
func ShlVU(z, x []Word, s uint) Word {
	if debug {
		assert(1 <= s && s < _W, "ShlVU: shift count out of range")
		assert(len(z) == len(x), "ShlVU: length mismatch")
	}
	var c Word
	for i := range x {
		t := uint64(x[i]) << s
		z[i] = Word(t) | c
		c = Word(t >> _W)
	}
	return c
}

// ShrVU computes z = x >> s for a sub-word shift count 1 <= s <= 31.
// The vacated high bits of the top word become zero; the bits shifted
// out below word 0 are discarded.
//
// Words are processed most significant first, with the low bits of
// each word carried downward in the accumulator, so z may be the same
// buffer as x, or a window of the same buffer starting at or above x.
// Precondition: len(z) == len(x).
func ShrVU(z, x []Word, s uint) {
	if debug {
		assert(1 <= s && s < _W, "ShrVU: shift count out of range")
		assert(len(z) == len(x), "ShrVU: length mismatch")
	}
	var c Word
	for i := len(x) - 1; i >= 0; i-- {
		t := uint64(x[i])
		z[i] = c | Word(t>>s)
		c = Word(t << (_W - s))
	}
}
