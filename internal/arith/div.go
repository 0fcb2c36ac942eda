package arith

// DivWVW divides z in place by the single-word divisor d, most
// significant word first, and returns the final remainder.
//
// The remainder accumulator is seeded with r, which must already be
// strictly less than d; in a multi-block division scheme r is the
// remainder escaping the next higher-order block. At each step the
// accumulator and the current digit form a double-width dividend
// strictly below d*B, so the quotient digit fits in one word and is
// obtained by direct uint64 division. The digit is replaced by the
// quotient digit; 0 <= remainder < d on return.
//
// Undefined if d == 0 or r >= d on entry.
func DivWVW(z []Word, r, d Word) Word {
	if debug {
		assert(d != 0, "DivWVW: zero divisor")
		assert(r < d, "DivWVW: seed remainder not below divisor")
	}
	rem := uint64(r)
	for i := len(z) - 1; i >= 0; i-- {
		t := rem<<_W | uint64(z[i])
		q := t / uint64(d)
		rem = t - q*uint64(d)
		z[i] = Word(q)
	}
	return Word(rem)
}
