package arith

// Sqr computes z = x*x. Precondition: len(z) == exactly 2*len(x).
// z must not alias x; the result buffer doubles as the working buffer
// for the intermediate triangle, so no allocation takes place.
//
// The square is decomposed to avoid computing each cross product
// twice:
//
//	x*x = 2 * sum(x[i]*x[j], i<j) + sum(x[i]^2)
//
// First the off-diagonal triangle is accumulated into z, one row per
// digit: row i fuses x[i] against the remaining higher digits at
// column offset 2i+1, with the row's escaping carry stored just past
// its window. The triangle is then doubled by a whole-buffer left
// shift of one bit, which propagates the doubling's own overflow into
// the top word (the shift's return is always zero here, since the
// triangle is strictly below half the buffer's range). Finally each
// diagonal term x[i]^2 is added into the two-word slot at 2i, 2i+1.
func Sqr(z, x []Word) {
	n := len(x)
	if debug {
		assert(len(z) == 2*n, "Sqr: result buffer length must be 2*len(x)")
	}
	if n == 0 {
		return
	}
	if n == 1 {
		t := uint64(x[0]) * uint64(x[0])
		z[0] = Word(t)
		z[1] = Word(t >> _W)
		return
	}

	clear(z)

	// Off-diagonal triangle: each pair x[i]*x[j], i<j, exactly once.
	// Row i covers z[2i+1 : i+n); its carry lands at z[i+n], a word
	// no earlier row has touched.
	for i := 0; i < n-1; i++ {
		z[i+n] = sqrRow(z[2*i+1:i+n], x[i+1:], x[i])
	}

	ShlVU(z, z, 1)

	// Diagonal terms. Each two-word slot gets its own double-width
	// carry chain; the slot's outgoing carry is at most 1, because a
	// square plus a fully occupied two-word slot plus an incoming 1
	// cannot reach 2*B^2. The bound is an algorithmic invariant and
	// is relied on, not re-checked, per slot.
	var c uint64
	for i := 0; i < n; i++ {
		t := uint64(x[i]) * uint64(x[i])
		s := uint64(z[2*i]) + (t & _M) + c
		z[2*i] = Word(s)
		s = uint64(z[2*i+1]) + (t >> _W) + (s >> _W)
		z[2*i+1] = Word(s)
		c = s >> _W
	}
}

// sqrRow fuses one triangle row: z[k] += x[k]*y plus the running
// carry, returning the carry escaping the row.
//
// A row with a single remaining pair collapses to one direct
// double-width multiply-add rather than a degenerate loop, and longer
// rows unroll their final two entries; a length-3 square therefore
// runs entirely on straight-line code. The split mirrors the
// mathematical boundary of the triangle, which needs at least two
// off-diagonal pairs for the loop form to make sense.
func sqrRow(z, x []Word, y Word) Word {
	m := len(x)
	if m == 1 {
		t := uint64(x[0])*uint64(y) + uint64(z[0])
		z[0] = Word(t)
		return Word(t >> _W)
	}
	var c uint64
	i := 0
	for ; i < m-2; i++ {
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + c
		z[i] = Word(t)
		c = t >> _W
	}
	// Last two entries of the row, unrolled.
	t := uint64(x[i])*uint64(y) + uint64(z[i]) + c
	z[i] = Word(t)
	t = uint64(x[i+1])*uint64(y) + uint64(z[i+1]) + t>>_W
	z[i+1] = Word(t)
	return Word(t >> _W)
}
