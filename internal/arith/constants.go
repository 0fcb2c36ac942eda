package arith

// ─────────────────────────────────────────────────────────────────────────────
// Multiplication Strategy Thresholds
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants are the crossover points, in digits, that an external
// multiplication-strategy selector consults when choosing between the
// schoolbook kernels in this package and a recursive (Karatsuba-class)
// algorithm. This package exposes only the thresholds; the selection
// logic and the recursive multiply live above it.

const (
	// KaratsubaThreshold is the minimum operand length, in words, at
	// which a recursive divide-and-conquer multiplication starts to
	// beat BasicMul.
	//
	// Below it, the O(n^2) grid wins on constant factors: the inner
	// loop is a single streaming multiply-accumulate with no
	// recursion bookkeeping. The value follows the crossover measured
	// for portable word-loop kernels on current 64-bit hardware.
	KaratsubaThreshold = 40

	// KaratsubaSqrThreshold is the squaring analogue of
	// KaratsubaThreshold. It is roughly twice as high: Sqr already
	// halves the work of the grid by computing each cross product
	// once, so recursion has less to reclaim.
	KaratsubaSqrThreshold = 80

	// BasicSqrThreshold is the minimum operand length, in words, at
	// which Sqr's triangle-plus-diagonal decomposition beats calling
	// BasicMul with both operands equal. For very short vectors the
	// decomposition's extra passes (doubling shift, diagonal sweep)
	// cost more than the duplicated cross products they avoid.
	BasicSqrThreshold = 12
)
