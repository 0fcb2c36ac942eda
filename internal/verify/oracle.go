package verify

import (
	"math/big"
	"math/rand"

	"github.com/agbru/mpvec/internal/arith"
)

// wordBits is the digit width of the kernels under test.
const wordBits = 32

// toBig converts a little-endian digit vector to its big.Int value.
// math/big is the reference implementation every kernel is checked
// against; its own word width is irrelevant here because the
// conversion goes through explicit 32-bit digits.
func toBig(v []arith.Word) *big.Int {
	r := new(big.Int)
	for i := len(v) - 1; i >= 0; i-- {
		r.Lsh(r, wordBits)
		r.Or(r, big.NewInt(int64(v[i])))
	}
	return r
}

// base returns B^n, the weight of a carry escaping an n-word vector.
func base(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(wordBits*n))
}

// randVector draws n random digits from rng.
func randVector(rng *rand.Rand, n int) []arith.Word {
	v := make([]arith.Word, n)
	for i := range v {
		v[i] = arith.Word(rng.Uint32())
	}
	return v
}

// wordsEqual compares two digit vectors for exact equality.
func wordsEqual(a, b []arith.Word) bool {
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
