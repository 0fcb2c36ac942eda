package arith

// MulAddVWW computes z[i] = low word of x[i]*y + carry, with the high
// word of each double-width product carried into the next step, and
// returns the final carry.
//
// The returned carry is a full word (the top half of the last
// product), not a single bit; callers chain it into the next
// higher-order digit block. The incoming r plays the same role for a
// preceding block. Precondition: len(z) == len(x). z may alias x.
func MulAddVWW(z, x []Word, y, r Word) Word {
	if debug {
		assert(len(z) == len(x), "MulAddVWW: length mismatch")
	}
	c := uint64(r)
	for i := range x {
		// x[i]*y + c <= (B-1)^2 + (B-1) = B^2 - B, so the
		// accumulator cannot overflow.
		t := uint64(x[i])*uint64(y) + c
		z[i] = Word(t)
		c = t >> _W
	}
	return Word(c)
}

// AddMulVVW computes z[i] += x[i]*y + carry and returns the final
// carry. This three-term accumulation is the inner kernel of
// schoolbook long multiplication: it fuses a scaled copy of the
// multiplicand into a running partial sum.
//
// Precondition: len(z) == len(x). The incoming r seeds the carry
// chain. z may be a window of a larger accumulator that also holds x,
// provided the windows do not overlap.
func AddMulVVW(z, x []Word, y, r Word) Word {
	if debug {
		assert(len(z) == len(x), "AddMulVVW: length mismatch")
	}
	c := uint64(r)
	for i := range x {
		// x[i]*y + z[i] + c <= (B-1)^2 + 2(B-1) = B^2 - 1:
		// the accumulator holds the worst case exactly.
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + c
		z[i] = Word(t)
		c = t >> _W
	}
	return Word(c)
}

// SubMulVVW computes z[i] -= x[i]*y + borrow and returns the final
// borrow (a full word, not a single bit).
//
// A naive unsigned subtraction of the double-width product cannot
// detect its own underflow in one pass, so each step splits
// x[i]*y + borrow into halves (hi, lo) and subtracts only lo from the
// destination digit:
//
//	z[i] - (hi*B + lo) = (z[i] - lo) - hi*B
//
// When z[i] >= lo the difference stands and hi is the whole borrow;
// when z[i] < lo the low half wraps by exactly B and the borrow is
// hi+1. hi can only reach B-1 when lo is 0, and a zero low half never
// underflows, so the outgoing borrow always fits in a word and the
// recurrence is closed. Precondition: len(z) == len(x).
func SubMulVVW(z, x []Word, y, r Word) Word {
	if debug {
		assert(len(z) == len(x), "SubMulVVW: length mismatch")
	}
	b := uint64(r)
	for i := range x {
		t := uint64(x[i])*uint64(y) + b
		lo := t & _M
		hi := t >> _W
		d := uint64(z[i]) - lo
		z[i] = Word(d)
		b = hi + (d>>_W)&1
	}
	return Word(b)
}

// BasicMul computes z += x*y by the schoolbook grid: for each digit of
// y, the whole of x is fused into the accumulator window starting one
// word higher than the last, and the escaping carry is stored in the
// word just past the window.
//
// Processing the full x operand against one y digit at a time keeps
// the inner loop streaming over contiguous memory. On entry
// z[0:len(x)] may hold a partial result to accumulate into; the words
// above it are overwritten by the stored carries as the grid advances.
// Precondition: len(z) >= len(x) + len(y).
//
// Whether to call this or a recursive algorithm is the caller's
// decision; see KaratsubaThreshold.
func BasicMul(z, x, y []Word) {
	if debug {
		assert(len(z) >= len(x)+len(y), "BasicMul: result buffer too short")
	}
	n := len(x)
	for i, d := range y {
		z[n+i] = AddMulVVW(z[i:n+i], x, d, 0)
	}
}
