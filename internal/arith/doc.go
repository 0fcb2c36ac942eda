// Package arith implements the portable word-level kernels of
// multi-precision unsigned integer arithmetic: carry-propagating
// addition and subtraction, sub-word shifts, scalar multiplication,
// fused multiply-accumulate, single-word division and optimized
// squaring.
//
// A number is represented as a digit vector: a []Word with the least
// significant word at index 0, so that the value equals the sum of
// v[i] * 2^(32*i). The package enforces no sign and no leading-zero
// normalization; both belong to the caller.
//
// Every function is a pure, allocation-free, single-pass transformation
// over caller-owned buffers. Buffer-length relationships, shift ranges
// and divisor constraints are preconditions, not runtime checks: a
// violation is a programming error, caught only by the debug assertions
// compiled in when the debug constant is flipped on. Carries and
// borrows are threaded through a uint64 accumulator at every step, so
// no intermediate result can silently overflow a word.
package arith
