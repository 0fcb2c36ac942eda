package arith

import (
	"math/big"
	"math/rand"
	"testing"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test Utilities
// ─────────────────────────────────────────────────────────────────────────────

// randWords creates a slice of random digits from a fixed seed.
func randWords(n int, seed int64) []Word {
	r := rand.New(rand.NewSource(seed))
	v := make([]Word, n)
	for i := range v {
		v[i] = Word(r.Uint32())
	}
	return v
}

// copyWords creates an independent copy of a digit vector.
func copyWords(src []Word) []Word {
	dst := make([]Word, len(src))
	copy(dst, src)
	return dst
}

// toBig converts a little-endian digit vector to its big.Int value.
// big.Int is the reference oracle for every kernel in this package.
func toBig(v []Word) *big.Int {
	r := new(big.Int)
	for i := len(v) - 1; i >= 0; i-- {
		r.Lsh(r, _W)
		r.Or(r, big.NewInt(int64(v[i])))
	}
	return r
}

// base returns B^n, the value of a carry escaping an n-word vector.
func base(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(_W*n))
}

func wordsEqual(a, b []Word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// AddVV / SubVV
// ─────────────────────────────────────────────────────────────────────────────

func TestAddVVOracle(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 7, 31, 100} {
		x := randWords(n, int64(n))
		y := randWords(n, int64(n)+1000)
		for _, carry := range []Word{0, 1} {
			z := make([]Word, n)
			c := AddVV(z, x, y, carry)

			want := new(big.Int).Add(toBig(x), toBig(y))
			want.Add(want, big.NewInt(int64(carry)))
			got := new(big.Int).Add(toBig(z), new(big.Int).Mul(big.NewInt(int64(c)), base(n)))
			if got.Cmp(want) != 0 {
				t.Errorf("AddVV n=%d carry=%d: got %s, want %s", n, carry, got, want)
			}
			if c > 1 {
				t.Errorf("AddVV n=%d: carry out %d, want 0 or 1", n, c)
			}
		}
	}
}

func TestSubVVOracle(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 7, 31, 100} {
		x := randWords(n, int64(n)+1)
		y := randWords(n, int64(n)+2000)
		for _, borrow := range []Word{0, 1} {
			z := make([]Word, n)
			b := SubVV(z, x, y, borrow)

			// x - y - borrow = z - b*B^n
			want := new(big.Int).Sub(toBig(x), toBig(y))
			want.Sub(want, big.NewInt(int64(borrow)))
			got := new(big.Int).Sub(toBig(z), new(big.Int).Mul(big.NewInt(int64(b)), base(n)))
			if got.Cmp(want) != 0 {
				t.Errorf("SubVV n=%d borrow=%d: got %s, want %s", n, borrow, got, want)
			}
		}
	}
}

// TestAddVVScenario pins the exact carry pattern of an 18-word addition:
// src1 alternates {i, 0x8000_0000+i}, src2 is constant 0x8000_0003.
// Odd positions overflow, even positions absorb the incoming carry
// without a new one, and the top (odd) word escapes with carry 1.
func TestAddVVScenario(t *testing.T) {
	t.Parallel()
	const n = 18
	x := make([]Word, n)
	y := make([]Word, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			x[i] = Word(i)
		} else {
			x[i] = 0x8000_0000 + Word(i)
		}
		y[i] = 0x8000_0003
	}
	z := make([]Word, n)
	c := AddVV(z, x, y, 0)

	if z[0] != 0x8000_0003 {
		t.Errorf("word 0 = %#x, want 0x80000003", z[0])
	}
	if z[1] != 4 {
		t.Errorf("word 1 = %#x, want 4", z[1])
	}
	if c != 1 {
		t.Errorf("final carry = %d, want 1", c)
	}

	want := new(big.Int).Add(toBig(x), toBig(y))
	got := new(big.Int).Add(toBig(z), new(big.Int).Mul(big.NewInt(int64(c)), base(n)))
	if got.Cmp(want) != 0 {
		t.Errorf("full result mismatch: got %s, want %s", got, want)
	}
}

// TestAddVVTailUntouched verifies that exactly len(y) destination words
// are written: callers keep separately managed high-order digits in the
// same buffer and depend on the tail surviving.
func TestAddVVTailUntouched(t *testing.T) {
	t.Parallel()
	const n, tail = 9, 5
	x := randWords(n+tail, 7)
	y := randWords(n, 8)
	z := make([]Word, n+tail)
	for i := n; i < n+tail; i++ {
		z[i] = 0xDEAD_BEEF
	}
	AddVV(z, x, y, 0)
	for i := n; i < n+tail; i++ {
		if z[i] != 0xDEAD_BEEF {
			t.Fatalf("z[%d] = %#x: tail past len(y) was modified", i, z[i])
		}
	}

	sentinel := copyWords(z[n:])
	SubVV(z, x, y, 1)
	if !wordsEqual(z[n:], sentinel) {
		t.Fatal("SubVV modified the tail past len(y)")
	}
}

func TestAddSubInverse(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 3, 17, 64} {
		a := randWords(n, int64(n)+17)
		b := randWords(n, int64(n)+18)
		for _, carry := range []Word{0, 1} {
			sum := make([]Word, n)
			cAdd := AddVV(sum, a, b, carry)
			back := make([]Word, n)
			cSub := SubVV(back, sum, b, carry)
			if !wordsEqual(back, a) {
				t.Errorf("n=%d carry=%d: subtract(add(a,b,c),b,c) != a", n, carry)
			}
			if cSub != cAdd {
				t.Errorf("n=%d carry=%d: borrow %d does not mirror carry %d", n, carry, cSub, cAdd)
			}
		}
	}
}

func TestAddVVInPlace(t *testing.T) {
	t.Parallel()
	x := randWords(24, 99)
	y := randWords(24, 100)
	want := make([]Word, 24)
	AddVV(want, x, y, 0)

	z := copyWords(x)
	AddVV(z, z, y, 0) // dest aliases src1
	if !wordsEqual(z, want) {
		t.Error("in-place AddVV differs from out-of-place result")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// AddVW / SubVW
// ─────────────────────────────────────────────────────────────────────────────

func TestAddVWFastPath(t *testing.T) {
	t.Parallel()
	z := []Word{5, 0xFFFF_FFFF, 0xFFFF_FFFF}
	if c := AddVW(z, 10); c != 0 {
		t.Errorf("carry = %d, want 0", c)
	}
	if z[0] != 15 || z[1] != 0xFFFF_FFFF || z[2] != 0xFFFF_FFFF {
		t.Errorf("z = %v: fast path must stop at word 0", z)
	}
}

func TestAddVWRipple(t *testing.T) {
	t.Parallel()
	z := []Word{0xFFFF_FFFF, 0xFFFF_FFFF, 3, 9}
	if c := AddVW(z, 1); c != 0 {
		t.Errorf("carry = %d, want 0", c)
	}
	if z[0] != 0 || z[1] != 0 || z[2] != 4 || z[3] != 9 {
		t.Errorf("z = %v, want [0 0 4 9]", z)
	}
}

// TestAddVWFullRipple drives the carry through an all-maximum vector:
// every word wraps and the escaping carry must be 1.
func TestAddVWFullRipple(t *testing.T) {
	t.Parallel()
	const n = 12
	z := make([]Word, n)
	for i := range z {
		z[i] = 0xFFFF_FFFF
	}
	if c := AddVW(z, 1); c != 1 {
		t.Errorf("escaping carry = %d, want 1", c)
	}
	for i, w := range z {
		if w != 0 {
			t.Errorf("z[%d] = %#x, want 0", i, w)
		}
	}
}

func TestSubVWBorrow(t *testing.T) {
	t.Parallel()
	t.Run("no borrow", func(t *testing.T) {
		t.Parallel()
		z := []Word{7, 0, 0}
		if b := SubVW(z, 3); b != 0 {
			t.Errorf("borrow = %d, want 0", b)
		}
		if z[0] != 4 || z[1] != 0 || z[2] != 0 {
			t.Errorf("z = %v, want [4 0 0]", z)
		}
	})

	t.Run("ripple through zeros", func(t *testing.T) {
		t.Parallel()
		z := []Word{2, 0, 0, 5}
		if b := SubVW(z, 3); b != 0 {
			t.Errorf("borrow = %d, want 0", b)
		}
		want := []Word{0xFFFF_FFFF, 0xFFFF_FFFF, 0xFFFF_FFFF, 4}
		if !wordsEqual(z, want) {
			t.Errorf("z = %v, want %v", z, want)
		}
	})

	t.Run("escaping borrow", func(t *testing.T) {
		t.Parallel()
		z := []Word{0, 0}
		if b := SubVW(z, 1); b != 1 {
			t.Errorf("escaping borrow = %d, want 1", b)
		}
		if z[0] != 0xFFFF_FFFF || z[1] != 0xFFFF_FFFF {
			t.Errorf("z = %v, want all-max", z)
		}
	})
}

func TestAddVWSubVWInverse(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 4, 33} {
		orig := randWords(n, int64(n)+55)
		for _, y := range []Word{0, 1, 0xFFFF_FFFF, 0x8000_0000} {
			z := copyWords(orig)
			c := AddVW(z, y)
			if c != 0 {
				// The carry escaped; the vector alone no longer
				// represents the sum, skip the round trip.
				continue
			}
			SubVW(z, y)
			if !wordsEqual(z, orig) {
				t.Errorf("n=%d y=%#x: SubVW(AddVW(v,y),y) != v", n, y)
			}
		}
	}
}
