package verify

import (
	"fmt"
	"math/big"
	"math/rand"
	"sort"
	"strings"

	"github.com/agbru/mpvec/internal/arith"
	apperrors "github.com/agbru/mpvec/internal/errors"
)

// A Checker verifies one kernel. Round runs a single randomized round
// on vectors of n words and reports any divergence from the oracle;
// the returned error carries the human-readable detail, while the
// runner attaches kernel name and seed for replay.
type Checker struct {
	// Name is the kernel's identifier, used in reports and selection.
	Name string
	// Round executes one randomized verification round.
	Round func(rng *rand.Rand, n int) error
}

// Checkers returns one checker per kernel, in report order.
func Checkers() []Checker {
	return []Checker{
		{"addvv", roundAddVV},
		{"subvv", roundSubVV},
		{"addvw", roundAddVW},
		{"subvw", roundSubVW},
		{"shlvu", roundShlVU},
		{"shrvu", roundShrVU},
		{"muladdvww", roundMulAddVWW},
		{"addmulvvw", roundAddMulVVW},
		{"submulvvw", roundSubMulVVW},
		{"basicmul", roundBasicMul},
		{"divwvw", roundDivWVW},
		{"sqr", roundSqr},
	}
}

// Select resolves a kernel filter ("all" or a comma-separated list of
// names) to the checkers to run. Unknown names are a configuration
// error naming the valid choices.
func Select(list string) ([]Checker, error) {
	all := Checkers()
	if list == "" || list == "all" {
		return all, nil
	}

	byName := make(map[string]Checker, len(all))
	names := make([]string, 0, len(all))
	for _, c := range all {
		byName[c.Name] = c
		names = append(names, c.Name)
	}
	sort.Strings(names)

	var selected []Checker
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c, ok := byName[name]
		if !ok {
			return nil, apperrors.NewConfigError(
				"unknown kernel %q (valid: %s)", name, strings.Join(names, ", "))
		}
		selected = append(selected, c)
	}
	if len(selected) == 0 {
		return nil, apperrors.NewConfigError("kernel list %q selects nothing", list)
	}
	return selected, nil
}

func roundAddVV(rng *rand.Rand, n int) error {
	x, y := randVector(rng, n), randVector(rng, n)
	carry := arith.Word(rng.Intn(2))

	z := make([]arith.Word, n)
	c := arith.AddVV(z, x, y, carry)

	want := new(big.Int).Add(toBig(x), toBig(y))
	want.Add(want, big.NewInt(int64(carry)))
	got := new(big.Int).Add(toBig(z), new(big.Int).Mul(big.NewInt(int64(c)), base(n)))
	if got.Cmp(want) != 0 {
		return fmt.Errorf("n=%d carryIn=%d: sum %s, oracle %s", n, carry, got, want)
	}

	// The inverse law doubles as the subtraction cross-check.
	back := make([]arith.Word, n)
	if b := arith.SubVV(back, z, y, carry); !wordsEqual(back, x) || b != c {
		return fmt.Errorf("n=%d: subtract failed to undo add (borrow=%d carry=%d)", n, b, c)
	}
	return nil
}

func roundSubVV(rng *rand.Rand, n int) error {
	x, y := randVector(rng, n), randVector(rng, n)
	borrow := arith.Word(rng.Intn(2))

	z := make([]arith.Word, n)
	b := arith.SubVV(z, x, y, borrow)

	want := new(big.Int).Sub(toBig(x), toBig(y))
	want.Sub(want, big.NewInt(int64(borrow)))
	got := new(big.Int).Sub(toBig(z), new(big.Int).Mul(big.NewInt(int64(b)), base(n)))
	if got.Cmp(want) != 0 {
		return fmt.Errorf("n=%d borrowIn=%d: difference %s, oracle %s", n, borrow, got, want)
	}
	return nil
}

func roundAddVW(rng *rand.Rand, n int) error {
	x := randVector(rng, n)
	y := arith.Word(rng.Uint32())

	z := make([]arith.Word, n)
	copy(z, x)
	c := arith.AddVW(z, y)

	want := new(big.Int).Add(toBig(x), big.NewInt(int64(y)))
	got := new(big.Int).Add(toBig(z), new(big.Int).Mul(big.NewInt(int64(c)), base(n)))
	if got.Cmp(want) != 0 {
		return fmt.Errorf("n=%d y=%#x: got %s, oracle %s", n, y, got, want)
	}
	return nil
}

func roundSubVW(rng *rand.Rand, n int) error {
	x := randVector(rng, n)
	y := arith.Word(rng.Uint32())

	z := make([]arith.Word, n)
	copy(z, x)
	b := arith.SubVW(z, y)

	want := new(big.Int).Sub(toBig(x), big.NewInt(int64(y)))
	got := new(big.Int).Sub(toBig(z), new(big.Int).Mul(big.NewInt(int64(b)), base(n)))
	if got.Cmp(want) != 0 {
		return fmt.Errorf("n=%d y=%#x: got %s, oracle %s", n, y, got, want)
	}
	return nil
}

func roundShlVU(rng *rand.Rand, n int) error {
	x := randVector(rng, n)
	s := uint(rng.Intn(wordBits-1)) + 1

	z := make([]arith.Word, n)
	c := arith.ShlVU(z, x, s)

	want := new(big.Int).Lsh(toBig(x), s)
	got := new(big.Int).Add(toBig(z), new(big.Int).Mul(big.NewInt(int64(c)), base(n)))
	if got.Cmp(want) != 0 {
		return fmt.Errorf("n=%d s=%d: got %s, oracle %s", n, s, got, want)
	}
	return nil
}

func roundShrVU(rng *rand.Rand, n int) error {
	x := randVector(rng, n)
	s := uint(rng.Intn(wordBits-1)) + 1

	z := make([]arith.Word, n)
	arith.ShrVU(z, x, s)

	if want := new(big.Int).Rsh(toBig(x), s); toBig(z).Cmp(want) != 0 {
		return fmt.Errorf("n=%d s=%d: got %s, oracle %s", n, s, toBig(z), want)
	}
	return nil
}

func roundMulAddVWW(rng *rand.Rand, n int) error {
	x := randVector(rng, n)
	y := arith.Word(rng.Uint32())
	r := arith.Word(rng.Uint32())

	z := make([]arith.Word, n)
	c := arith.MulAddVWW(z, x, y, r)

	want := new(big.Int).Mul(toBig(x), big.NewInt(int64(y)))
	want.Add(want, big.NewInt(int64(r)))
	got := new(big.Int).Add(toBig(z), new(big.Int).Mul(big.NewInt(int64(c)), base(n)))
	if got.Cmp(want) != 0 {
		return fmt.Errorf("n=%d y=%#x r=%#x: got %s, oracle %s", n, y, r, got, want)
	}
	return nil
}

func roundAddMulVVW(rng *rand.Rand, n int) error {
	x, zInit := randVector(rng, n), randVector(rng, n)
	y := arith.Word(rng.Uint32())
	r := arith.Word(rng.Uint32())

	z := make([]arith.Word, n)
	copy(z, zInit)
	c := arith.AddMulVVW(z, x, y, r)

	want := new(big.Int).Mul(toBig(x), big.NewInt(int64(y)))
	want.Add(want, toBig(zInit))
	want.Add(want, big.NewInt(int64(r)))
	got := new(big.Int).Add(toBig(z), new(big.Int).Mul(big.NewInt(int64(c)), base(n)))
	if got.Cmp(want) != 0 {
		return fmt.Errorf("n=%d y=%#x r=%#x: got %s, oracle %s", n, y, r, got, want)
	}
	return nil
}

func roundSubMulVVW(rng *rand.Rand, n int) error {
	x, zInit := randVector(rng, n), randVector(rng, n)
	y := arith.Word(rng.Uint32())
	r := arith.Word(rng.Uint32())

	z := make([]arith.Word, n)
	copy(z, zInit)
	b := arith.SubMulVVW(z, x, y, r)

	want := new(big.Int).Mul(toBig(x), big.NewInt(int64(y)))
	want.Sub(toBig(zInit), want)
	want.Sub(want, big.NewInt(int64(r)))
	got := new(big.Int).Sub(toBig(z), new(big.Int).Mul(big.NewInt(int64(b)), base(n)))
	if got.Cmp(want) != 0 {
		return fmt.Errorf("n=%d y=%#x r=%#x: got %s, oracle %s", n, y, r, got, want)
	}
	return nil
}

func roundBasicMul(rng *rand.Rand, n int) error {
	// Split n into two operand lengths so rectangular grids get
	// exercised, not just squares.
	nx := rng.Intn(n) + 1
	ny := n - nx + 1
	x, y := randVector(rng, nx), randVector(rng, ny)

	z := make([]arith.Word, nx+ny)
	arith.BasicMul(z, x, y)

	if want := new(big.Int).Mul(toBig(x), toBig(y)); toBig(z).Cmp(want) != 0 {
		return fmt.Errorf("%dx%d: got %s, oracle %s", nx, ny, toBig(z), want)
	}
	return nil
}

func roundDivWVW(rng *rand.Rand, n int) error {
	x := randVector(rng, n)
	d := arith.Word(rng.Uint32())
	if d == 0 {
		d = 1
	}
	seed := arith.Word(rng.Uint32()) % d

	// Round trip through the multiplier: p = x*d + seed, then divide
	// back in place with the escaping carry as the seed remainder.
	p := make([]arith.Word, n)
	c := arith.MulAddVWW(p, x, d, seed)
	rem := arith.DivWVW(p, c, d)

	if !wordsEqual(p, x) || rem != seed {
		return fmt.Errorf("n=%d d=%#x: division failed to undo multiplication (rem=%#x seed=%#x)",
			n, d, rem, seed)
	}
	return nil
}

func roundSqr(rng *rand.Rand, n int) error {
	x := randVector(rng, n)

	z := make([]arith.Word, 2*n)
	arith.Sqr(z, x)

	if want := new(big.Int).Mul(toBig(x), toBig(x)); toBig(z).Cmp(want) != 0 {
		return fmt.Errorf("n=%d: got %s, oracle %s", n, toBig(z), want)
	}
	return nil
}
