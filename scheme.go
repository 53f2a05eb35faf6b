package numconv

// Scheme selects how an approximate conversion reconciles a value with the
// destination type before the range check. The zero value is DefaultApprox.
type Scheme int

const (
	// DefaultApprox does whatever would generally be expected of a lossy
	// conversion with no further instruction. Float-to-integer conversion
	// checks the raw input against the destination's bounds and then
	// truncates toward zero; integer-to-float conversion rounds to the
	// nearest representable value.
	DefaultApprox Scheme = iota

	// Wrapping keeps the least significant bits of the input, reducing it
	// modulo the destination's width. It is the opposite of rounding:
	// rather than preserving the most significant bits, it preserves the
	// least significant ones. Wrapping is defined between integer types
	// only and never fails.
	Wrapping

	// RoundToNearest rounds to the nearest integer, ties away from zero.
	RoundToNearest

	// RoundToNegInf rounds toward negative infinity (floor).
	RoundToNegInf

	// RoundToPosInf rounds toward positive infinity (ceiling).
	RoundToPosInf

	// RoundToZero rounds toward zero (truncation).
	RoundToZero
)

func (s Scheme) String() string {
	switch s {
	case DefaultApprox:
		return "default"
	case Wrapping:
		return "wrapping"
	case RoundToNearest:
		return "round to nearest"
	case RoundToNegInf:
		return "round toward -inf"
	case RoundToPosInf:
		return "round toward +inf"
	case RoundToZero:
		return "round toward zero"
	}
	return "unknown"
}
