package numconv

import (
	"errors"
	"fmt"
)

// Kind is the payload-free classification of a conversion failure. It is
// the simplified form every error in this package reduces to when the input
// value (and its type) no longer matter.
type Kind int

const (
	// NegOverflow means the input fell below the destination's minimum.
	NegOverflow Kind = iota + 1
	// PosOverflow means the input exceeded the destination's maximum.
	PosOverflow
	// NotANumber means a floating-point input was NaN, which no integer
	// destination can represent.
	NotANumber
	// Unrepresentable is the catch-all classification used only by the
	// most general error shape.
	Unrepresentable
)

func (k Kind) String() string {
	switch k {
	case NegOverflow:
		return "negative overflow"
	case PosOverflow:
		return "positive overflow"
	case NotANumber:
		return "not a number"
	case Unrepresentable:
		return "unrepresentable"
	}
	return "unknown"
}

// Error is implemented by every failure value this package produces. Kind
// reports the classification and Value the rejected input, which is always
// of the source type: a failed conversion never fabricates a
// destination-typed value.
type Error interface {
	error
	Kind() Kind
	Value() any
}

// KindOf extracts the payload-free classification from err. It reports
// false for nil and for errors that did not originate in this package.
// err may be wrapped.
func KindOf(err error) (Kind, bool) {
	var ce Error
	if errors.As(err, &ce) {
		return ce.Kind(), true
	}
	return 0, false
}

// NoError marks a conversion that cannot fail. It exists so generic code
// can name the error position of a total conversion; no value of NoError
// is ever produced by this package, and its methods are dead code paths
// that must never execute.
type NoError struct{}

func (NoError) Error() string { panic("numconv: NoError is unreachable") }

// Kind is unreachable; see NoError.
func (NoError) Kind() Kind { panic("numconv: NoError is unreachable") }

// Value is unreachable; see NoError.
func (NoError) Value() any { panic("numconv: NoError is unreachable") }

// NegOverflowError reports an input below the destination's minimum, from a
// conversion that can only fail in that direction (for example int8 to
// uint64).
type NegOverflowError[T Number] struct {
	Input T
}

func (e NegOverflowError[T]) Error() string {
	return fmt.Sprintf("conversion of %v resulted in negative overflow", e.Input)
}

// Kind returns NegOverflow.
func (e NegOverflowError[T]) Kind() Kind { return NegOverflow }

// Value returns the rejected input.
func (e NegOverflowError[T]) Value() any { return e.Input }

// Range widens the error into the two-sided shape.
func (e NegOverflowError[T]) Range() RangeError[T] {
	return RangeError[T]{Input: e.Input, kind: NegOverflow}
}

// Float widens the error into the floating-point shape.
func (e NegOverflowError[T]) Float() FloatError[T] {
	return FloatError[T]{Input: e.Input, kind: NegOverflow}
}

// General widens the error into the most general shape.
func (e NegOverflowError[T]) General() GeneralError[T] {
	return GeneralError[T]{Input: e.Input, kind: NegOverflow}
}

// PosOverflowError reports an input above the destination's maximum, from a
// conversion that can only fail in that direction (for example uint16 to
// uint8).
type PosOverflowError[T Number] struct {
	Input T
}

func (e PosOverflowError[T]) Error() string {
	return fmt.Sprintf("conversion of %v resulted in positive overflow", e.Input)
}

// Kind returns PosOverflow.
func (e PosOverflowError[T]) Kind() Kind { return PosOverflow }

// Value returns the rejected input.
func (e PosOverflowError[T]) Value() any { return e.Input }

// Range widens the error into the two-sided shape.
func (e PosOverflowError[T]) Range() RangeError[T] {
	return RangeError[T]{Input: e.Input, kind: PosOverflow}
}

// Float widens the error into the floating-point shape.
func (e PosOverflowError[T]) Float() FloatError[T] {
	return FloatError[T]{Input: e.Input, kind: PosOverflow}
}

// General widens the error into the most general shape.
func (e PosOverflowError[T]) General() GeneralError[T] {
	return GeneralError[T]{Input: e.Input, kind: PosOverflow}
}

// RangeError reports an input outside the destination's range, from a
// conversion that can overflow in either direction. Its kind is always
// NegOverflow or PosOverflow.
type RangeError[T Number] struct {
	Input T
	kind  Kind
}

func (e RangeError[T]) Error() string {
	return fmt.Sprintf("conversion of %v resulted in %v", e.Input, e.kind)
}

// Kind returns NegOverflow or PosOverflow.
func (e RangeError[T]) Kind() Kind { return e.kind }

// Value returns the rejected input.
func (e RangeError[T]) Value() any { return e.Input }

// Float widens the error into the floating-point shape.
func (e RangeError[T]) Float() FloatError[T] {
	return FloatError[T]{Input: e.Input, kind: e.kind}
}

// General widens the error into the most general shape.
func (e RangeError[T]) General() GeneralError[T] {
	return GeneralError[T]{Input: e.Input, kind: e.kind}
}

// FloatError reports a failed conversion from a floating-point source. Its
// kind is NegOverflow, PosOverflow, or NotANumber.
type FloatError[T Number] struct {
	Input T
	kind  Kind
}

func (e FloatError[T]) Error() string {
	if e.kind == NotANumber {
		return "conversion target does not support not-a-number"
	}
	return fmt.Sprintf("conversion of %v resulted in %v", e.Input, e.kind)
}

// Kind returns NegOverflow, PosOverflow, or NotANumber.
func (e FloatError[T]) Kind() Kind { return e.kind }

// Value returns the rejected input.
func (e FloatError[T]) Value() any { return e.Input }

// General widens the error into the most general shape. The widening is
// lossless: a not-a-number kind stays not-a-number.
func (e FloatError[T]) General() GeneralError[T] {
	return GeneralError[T]{Input: e.Input, kind: e.kind}
}

// UnrepresentableError reports an input the destination cannot represent
// for a reason with no overflow direction.
type UnrepresentableError[T Number] struct {
	Input T
}

func (e UnrepresentableError[T]) Error() string {
	return fmt.Sprintf("could not convert unrepresentable value %v", e.Input)
}

// Kind returns Unrepresentable.
func (e UnrepresentableError[T]) Kind() Kind { return Unrepresentable }

// Value returns the rejected input.
func (e UnrepresentableError[T]) Value() any { return e.Input }

// General widens the error into the most general shape.
func (e UnrepresentableError[T]) General() GeneralError[T] {
	return GeneralError[T]{Input: e.Input, kind: Unrepresentable}
}

// GeneralError subsumes every other error shape in this package. It exists
// as a catch-all for callers that need to unify conversions with different
// narrow error types under a single one.
type GeneralError[T Number] struct {
	Input T
	kind  Kind
}

func (e GeneralError[T]) Error() string {
	if e.kind == NotANumber {
		return "conversion target does not support not-a-number"
	}
	return fmt.Sprintf("conversion of %v resulted in %v", e.Input, e.kind)
}

// Kind returns the classification of the original failure.
func (e GeneralError[T]) Kind() Kind { return e.kind }

// Value returns the rejected input.
func (e GeneralError[T]) Value() any { return e.Input }

// Widen lifts any error produced by this package for source type T into the
// general shape, preserving kind and payload. It panics on a nil or foreign
// error, and on the (unreachable by construction) NoError marker.
func Widen[T Number](err error) GeneralError[T] {
	switch e := err.(type) {
	case NegOverflowError[T]:
		return e.General()
	case PosOverflowError[T]:
		return e.General()
	case RangeError[T]:
		return e.General()
	case FloatError[T]:
		return e.General()
	case UnrepresentableError[T]:
		return e.General()
	case GeneralError[T]:
		return e
	}
	panic(fmt.Sprintf("numconv: Widen: not a conversion error for this source type: %v", err))
}
