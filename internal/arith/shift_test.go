package arith

import (
	"math/big"
	"testing"
)

func TestShlVUOracle(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 9, 40} {
		x := randWords(n, int64(n)+300)
		for s := uint(1); s < _W; s++ {
			z := make([]Word, n)
			c := ShlVU(z, x, s)

			want := new(big.Int).Lsh(toBig(x), s)
			got := new(big.Int).Add(toBig(z), new(big.Int).Mul(big.NewInt(int64(c)), base(n)))
			if got.Cmp(want) != 0 {
				t.Errorf("ShlVU n=%d s=%d: got %s, want %s", n, s, got, want)
			}
		}
	}
}

func TestShrVUOracle(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 9, 40} {
		x := randWords(n, int64(n)+400)
		for s := uint(1); s < _W; s++ {
			z := make([]Word, n)
			ShrVU(z, x, s)

			want := new(big.Int).Rsh(toBig(x), s)
			if toBig(z).Cmp(want) != 0 {
				t.Errorf("ShrVU n=%d s=%d: got %s, want %s", n, s, toBig(z), want)
			}
		}
	}
}

// TestShiftRoundTrip checks exact bit patterns for every sub-word shift
// count: shifting left then right reproduces the input except for the s
// bits that crossed the top boundary, which must appear, in order, in
// the carry returned by ShlVU.
func TestShiftRoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 3, 20} {
		x := randWords(n, int64(n)+500)
		for s := uint(1); s < _W; s++ {
			z := make([]Word, n)
			c := ShlVU(z, x, s)
			ShrVU(z, z, s)

			for i := 0; i < n-1; i++ {
				if z[i] != x[i] {
					t.Fatalf("n=%d s=%d: word %d = %#x, want %#x", n, s, i, z[i], x[i])
				}
			}
			top := x[n-1] & Word(_M>>s)
			if z[n-1] != top {
				t.Errorf("n=%d s=%d: top word = %#x, want %#x", n, s, z[n-1], top)
			}
			if c != x[n-1]>>(_W-s) {
				t.Errorf("n=%d s=%d: shifted-out bits = %#x, want %#x", n, s, c, x[n-1]>>(_W-s))
			}
		}
	}
}

func TestShlVUInPlace(t *testing.T) {
	t.Parallel()
	x := randWords(16, 600)
	want := make([]Word, 16)
	wantC := ShlVU(want, x, 13)

	z := copyWords(x)
	c := ShlVU(z, z, 13)
	if !wordsEqual(z, want) || c != wantC {
		t.Error("in-place ShlVU differs from out-of-place result")
	}
}

// TestShlVUWindowOverlap shifts into a lower window of the same buffer,
// the overlap pattern used when normalizing in place.
func TestShlVUWindowOverlap(t *testing.T) {
	t.Parallel()
	buf := randWords(17, 700)
	src := copyWords(buf[1:])
	want := make([]Word, 16)
	wantC := ShlVU(want, src, 5)

	c := ShlVU(buf[:16], buf[1:], 5)
	if !wordsEqual(buf[:16], want) || c != wantC {
		t.Error("ShlVU into a lower window differs from out-of-place result")
	}
}

func TestShrVUInPlace(t *testing.T) {
	t.Parallel()
	x := randWords(16, 800)
	want := make([]Word, 16)
	ShrVU(want, x, 7)

	z := copyWords(x)
	ShrVU(z, z, 7)
	if !wordsEqual(z, want) {
		t.Error("in-place ShrVU differs from out-of-place result")
	}
}

// TestShrVUWindowOverlap shifts into a higher window of the same
// buffer, matching the most-significant-first processing direction.
func TestShrVUWindowOverlap(t *testing.T) {
	t.Parallel()
	buf := randWords(17, 900)
	src := copyWords(buf[:16])
	want := make([]Word, 16)
	ShrVU(want, src, 11)

	ShrVU(buf[1:], buf[:16], 11)
	if !wordsEqual(buf[1:], want) {
		t.Error("ShrVU into a higher window differs from out-of-place result")
	}
}
