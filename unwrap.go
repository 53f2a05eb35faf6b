package numconv

import (
	"errors"
	"fmt"
	"math"
)

// Saturate collapses overflow failures into the destination's nearest
// bound: negative overflow becomes the minimum and positive overflow the
// maximum. Failures with no saturation direction (not-a-number,
// unrepresentable) are returned unchanged as the residual error, forcing
// the caller to handle them explicitly.
//
// It is designed to wrap a conversion call directly:
//
//	v, err := numconv.Saturate(numconv.Approx[uint8](f))
func Saturate[D Number](v D, err error) (D, error) {
	if err == nil {
		return v, nil
	}
	var ce Error
	if !errors.As(err, &ce) {
		return v, err
	}
	switch ce.Kind() {
	case NegOverflow:
		return Min[D](), nil
	case PosOverflow:
		return Max[D](), nil
	}
	return v, err
}

// UnwrapOrSaturate returns the converted value, or the destination's
// minimum or maximum in the direction of overflow. It panics on an error
// with no saturation direction, such as a not-a-number failure; use
// Saturate when the source is a float.
func UnwrapOrSaturate[D Number](v D, err error) D {
	if err == nil {
		return v
	}
	switch k, _ := KindOf(err); k {
	case NegOverflow:
		return Min[D]()
	case PosOverflow:
		return Max[D]()
	}
	panic(fmt.Sprintf("numconv: UnwrapOrSaturate: no saturation direction for error: %v", err))
}

// UnwrapOrInvalid returns the converted value, or on any failure the
// destination type's invalid sentinel: the all-ones bit pattern for
// integers (the maximum for unsigned types, -1 for signed ones) and NaN
// for floats.
func UnwrapOrInvalid[D Number](v D, err error) D {
	if err == nil {
		return v
	}
	return invalidSentinel[D]()
}

// UnwrapOrInf returns the converted value, or saturates to infinity in the
// direction of overflow. It is only defined for float destinations, which
// are the only supported types with an infinity. Like UnwrapOrSaturate, it
// panics on an error with no direction.
func UnwrapOrInf[D Float](v D, err error) D {
	if err == nil {
		return v
	}
	switch k, _ := KindOf(err); k {
	case NegOverflow:
		return D(math.Inf(-1))
	case PosOverflow:
		return D(math.Inf(1))
	}
	panic(fmt.Sprintf("numconv: UnwrapOrInf: no overflow direction for error: %v", err))
}

// Must returns the converted value and panics on error.
func Must[D Number](v D, err error) D {
	if err != nil {
		panic(err)
	}
	return v
}

func invalidSentinel[D Number]() D {
	d := describe[D]()
	if d.Float {
		n := math.NaN()
		return D(n)
	}
	if d.Signed {
		m := int64(-1)
		return D(m)
	}
	return D(d.IntMax)
}
