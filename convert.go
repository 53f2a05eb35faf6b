package numconv

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Checked converts src to D, succeeding only when the value survives the
// conversion exactly. The error's dynamic type is the narrowest shape that
// describes the failures the pair can produce, and it carries the rejected
// input.
//
// Checked is not offered from a float to an integer type, nor from float64
// to float32; those conversions cannot preserve every value and must be
// requested explicitly through Approx or ApproxBy. Calling Checked for such
// a pair panics.
func Checked[D, S Number](src S) (D, error) {
	sd, dd := describe[S](), describe[D]()
	r, ok := ruleFor(sd, dd, DefaultApprox, true)
	if !ok {
		panic(notOffered[D, S]("Checked", DefaultApprox))
	}
	return apply[D](src, sd, dd, r, DefaultApprox)
}

// Approx converts src to D under the DefaultApprox scheme.
func Approx[D, S Number](src S) (D, error) {
	return ApproxBy[D](src, DefaultApprox)
}

// ApproxBy converts src to D under the given approximation scheme. The
// conversion may approximate the value but never wraps or saturates it: if
// the approximated value is outside the destination's range, the conversion
// fails (except under Wrapping, which reduces modulo the width and cannot
// fail).
//
// Wrapping with a float on either side panics; rounding schemes applied to
// an integer source are the identity approximation and behave like
// DefaultApprox.
func ApproxBy[D, S Number](src S, scheme Scheme) (D, error) {
	sd, dd := describe[S](), describe[D]()
	r, ok := ruleFor(sd, dd, scheme, false)
	if !ok {
		panic(notOffered[D, S]("ApproxBy", scheme))
	}
	return apply[D](src, sd, dd, r, scheme)
}

// Exact converts src to D for pairs whose conversion is provably total,
// such as widening int8 to int64. Calling Exact for a pair that can fail
// for any input is a programmer error and panics; use Checked instead.
func Exact[D, S Number](src S) D {
	sd, dd := describe[S](), describe[D]()
	r, ok := ruleFor(sd, dd, DefaultApprox, true)
	if !ok || r.CanFail() {
		var d D
		panic(fmt.Sprintf("numconv: Exact: conversion from %T to %T can fail; use Checked", src, d))
	}
	return D(src)
}

// Wrap converts src to D keeping only the low-order bits, reducing the
// value modulo 2^(width of D). It never fails.
func Wrap[D, S Integer](src S) D {
	v, _ := ApproxBy[D](src, Wrapping)
	return v
}

func apply[D, S Number](src S, sd, dd Desc, r Rule, scheme Scheme) (D, error) {
	switch r.Strategy {
	case StrategyExact, StrategyWrap:
		return D(src), nil
	case StrategyNarrowLower, StrategyNarrowUpper, StrategyNarrowBoth:
		return narrowInt[D](src, sd, dd, r)
	case StrategyFloatNarrow:
		if sd.Float {
			return narrowFloat[D](src)
		}
		return intToFloat[D](src, sd, dd, r)
	default: // StrategyFloatToInt
		return floatToInt[D](src, sd, dd, scheme)
	}
}

// narrowInt checks an integer value against the destination's bounds. The
// lower bound is always tested first, so an input violating both bounds
// reports negative overflow.
func narrowInt[D, S Number](src S, sd, dd Desc, r Rule) (D, error) {
	if sd.Signed {
		v := int64(src)
		if r.CanNegOverflow && v < dd.IntMin {
			return 0, negErr(src, r)
		}
		if r.CanPosOverflow && v > 0 && uint64(v) > dd.IntMax {
			return 0, posErr(src, r)
		}
		return D(src), nil
	}
	if r.CanPosOverflow && uint64(src) > dd.IntMax {
		return 0, posErr(src, r)
	}
	return D(src), nil
}

// intToFloat performs the value-preserving integer-to-float check: the
// input must lie within the float's contiguously representable span, which
// is narrower than the integer range once the significand is exhausted.
func intToFloat[D, S Number](src S, sd, dd Desc, r Rule) (D, error) {
	span := dd.span()
	if sd.Signed {
		v := int64(src)
		if v < -int64(span) {
			return 0, negErr(src, r)
		}
		if v > 0 && uint64(v) > span {
			return 0, posErr(src, r)
		}
		return D(src), nil
	}
	if uint64(src) > span {
		return 0, posErr(src, r)
	}
	return D(src), nil
}

// narrowFloat approximates float64 to float32. Non-finite values pass
// through unchanged; finite values outside float32's range overflow.
func narrowFloat[D, S Number](src S) (D, error) {
	v := float64(src)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return D(src), nil
	}
	if v < -math.MaxFloat32 {
		return 0, RangeError[S]{Input: src, kind: NegOverflow}
	}
	if v > math.MaxFloat32 {
		return 0, RangeError[S]{Input: src, kind: PosOverflow}
	}
	return D(src), nil
}

// floatToInt converts a float source to an integer destination. The order
// of checks is significant: NaN is rejected first under every scheme, then
// the scheme's rounding is applied, then the rounded value is tested
// against the lower bound, then the upper. Infinities fail the bound checks
// like any other out-of-range value. The returned error always carries the
// original input, never the rounded value.
func floatToInt[D, S Number](src S, sd, dd Desc, scheme Scheme) (D, error) {
	var approx float64
	if sd.Bits == 32 {
		f := float32(src)
		if math32.IsNaN(f) {
			return 0, FloatError[S]{Input: src, kind: NotANumber}
		}
		approx = float64(round32(f, scheme))
	} else {
		f := float64(src)
		if math.IsNaN(f) {
			return 0, FloatError[S]{Input: src, kind: NotANumber}
		}
		approx = round64(f, scheme)
	}

	lo, hi := floatIntBounds(sd, dd)
	if approx < lo {
		return 0, FloatError[S]{Input: src, kind: NegOverflow}
	}
	if approx > hi {
		return 0, FloatError[S]{Input: src, kind: PosOverflow}
	}
	return D(approx), nil
}

func round32(f float32, scheme Scheme) float32 {
	switch scheme {
	case RoundToNearest:
		return math32.Round(f)
	case RoundToNegInf:
		return math32.Floor(f)
	case RoundToPosInf:
		return math32.Ceil(f)
	case RoundToZero:
		return math32.Trunc(f)
	}
	return f
}

func round64(f float64, scheme Scheme) float64 {
	switch scheme {
	case RoundToNearest:
		return math.Round(f)
	case RoundToNegInf:
		return math.Floor(f)
	case RoundToPosInf:
		return math.Ceil(f)
	case RoundToZero:
		return math.Trunc(f)
	}
	return f
}

// negErr and posErr build the narrowest error shape the rule allows: a
// one-sided overflow where only one bound can be violated, a RangeError
// where both can.
func negErr[S Number](src S, r Rule) error {
	if r.CanPosOverflow {
		return RangeError[S]{Input: src, kind: NegOverflow}
	}
	return NegOverflowError[S]{Input: src}
}

func posErr[S Number](src S, r Rule) error {
	if r.CanNegOverflow {
		return RangeError[S]{Input: src, kind: PosOverflow}
	}
	return PosOverflowError[S]{Input: src}
}

func notOffered[D, S Number](op string, scheme Scheme) string {
	var d D
	var s S
	if scheme == Wrapping {
		return fmt.Sprintf("numconv: %s: wrapping is not defined between %T and %T", op, s, d)
	}
	return fmt.Sprintf("numconv: %s: conversion from %T to %T is not offered; use Approx", op, s, d)
}
