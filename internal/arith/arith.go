package arith

// A Word is a single digit of a multi-precision unsigned integer.
//
// Digits are fixed at 32 bits so that every kernel can run its
// carry chain through a native uint64 double-width accumulator on
// any platform, independent of the host word size.
type Word uint32

const (
	_W = 32          // word size in bits
	_B = 1 << _W     // digit base, as a uint64 value
	_M = _B - 1      // digit mask, as a uint64 value
)

// debug compiles in the precondition assertions below. Contract
// violations (mismatched buffer lengths, out-of-range shift counts,
// zero divisors) are programming errors in the caller; with debug off
// they are undefined behavior, exactly as fast code requires.
const debug = false

func assert(ok bool, msg string) {
	if !ok {
		panic("arith: " + msg)
	}
}

// mulWW returns the double-width product x*y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	t := uint64(x) * uint64(y)
	return Word(t >> _W), Word(t)
}

// AddVV computes z[i] = x[i] + y[i] + carry for each index of y and
// returns the outgoing carry (0 or 1).
//
// The incoming carry must be 0 or 1. Exactly len(y) words of z are
// written; any tail beyond len(y) is left untouched, so callers can
// manage higher-order digits separately in the same buffer.
// Preconditions: len(x) >= len(y), len(z) >= len(y).
// z may alias x or y for in-place addition.
func AddVV(z, x, y []Word, carry Word) Word {
	if debug {
		assert(carry <= 1, "AddVV: carry not 0 or 1")
		assert(len(x) >= len(y) && len(z) >= len(y), "AddVV: buffer too short")
	}
	c := uint64(carry)
	for i := range y {
		s := uint64(x[i]) + uint64(y[i]) + c
		z[i] = Word(s)
		c = s >> _W
	}
	return Word(c)
}

// SubVV computes z[i] = x[i] - y[i] - borrow for each index of y and
// returns the outgoing borrow (0 or 1).
//
// Each step runs in the uint64 accumulator: when the subtraction
// underflows, the wrapped difference has its upper half set, so the
// same exceeds-one-word test that detects a carry in AddVV detects the
// borrow here. The write discipline and preconditions match AddVV.
func SubVV(z, x, y []Word, borrow Word) Word {
	if debug {
		assert(borrow <= 1, "SubVV: borrow not 0 or 1")
		assert(len(x) >= len(y) && len(z) >= len(y), "SubVV: buffer too short")
	}
	b := uint64(borrow)
	for i := range y {
		d := uint64(x[i]) - uint64(y[i]) - b
		z[i] = Word(d)
		b = (d >> _W) & 1
	}
	return Word(b)
}

// AddVW adds the single word y into z in place and returns the carry
// out of the most significant word.
//
// This is the fast path for a 0/1-word second operand: the carry is
// folded into z[0] through the double-width accumulator and, in the
// common case of no overflow, the function returns without touching
// the rest of the vector. Otherwise the carry ripples upward until a
// word does not wrap around. If propagation exhausts the vector the
// escaping carry of 1 is returned; extending storage is the caller's
// problem. Precondition: len(z) >= 1.
func AddVW(z []Word, y Word) Word {
	if debug {
		assert(len(z) > 0, "AddVW: empty vector")
	}
	s := uint64(z[0]) + uint64(y)
	z[0] = Word(s)
	if s>>_W == 0 {
		return 0
	}
	for i := 1; i < len(z); i++ {
		z[i]++
		if z[i] != 0 {
			return 0
		}
	}
	return 1
}

// SubVW subtracts the single word y from z in place and returns the
// borrow out of the most significant word. The propagation contract
// mirrors AddVW: a word that was zero before the decrement wraps to
// the top of the range and keeps the borrow alive.
func SubVW(z []Word, y Word) Word {
	if debug {
		assert(len(z) > 0, "SubVW: empty vector")
	}
	d := uint64(z[0]) - uint64(y)
	z[0] = Word(d)
	if d>>_W == 0 {
		return 0
	}
	for i := 1; i < len(z); i++ {
		z[i]--
		if z[i] != ^Word(0) {
			return 0
		}
	}
	return 1
}
