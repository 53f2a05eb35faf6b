package numconv

// Float-to-integer conversions start to lose precision before they reach
// the destination type's min and max: once the significand is exhausted,
// casting the integer bound to float does not round-trip. The constants
// below are the widest float values that still convert to a representable
// integer; one ULP further toward infinity does not.
//
// They were derived offline by stepping one representable float at a time
// from the integer bound and checking the round trip, and are fixed facts
// of the IEEE 754 formats, identical on every supported platform.
const (
	// MaxF32Int32 is the largest float32 representable in an int32.
	MaxF32Int32 float32 = 2.1474835e9
	// MinF32Int32 is the smallest float32 representable in an int32.
	MinF32Int32 float32 = -2.1474836e9
	// MaxF32Int64 is the largest float32 representable in an int64.
	MaxF32Int64 float32 = 9.2233715e18
	// MinF32Int64 is the smallest float32 representable in an int64.
	MinF32Int64 float32 = -9.223372e18
	// MaxF32Uint32 is the largest float32 representable in a uint32.
	MaxF32Uint32 float32 = 4.294967e9
	// MaxF32Uint64 is the largest float32 representable in a uint64.
	MaxF32Uint64 float32 = 1.8446743e19

	// MaxF64Int64 is the largest float64 representable in an int64.
	MaxF64Int64 float64 = 9.223372036854775e18
	// MinF64Int64 is the smallest float64 representable in an int64.
	MinF64Int64 float64 = -9.223372036854776e18
	// MaxF64Uint64 is the largest float64 representable in a uint64.
	MaxF64Uint64 float64 = 1.844674407370955e19
)

// floatIntBounds returns the inclusive accept range for converting the
// float type f into the integer type d. Pairs whose destination bounds are
// exactly representable in f use the destination's own min and max; the
// rest use the round-trip-safe constants above. Pointer-sized integers
// resolve to the 32- or 64-bit row through d.Bits.
//
// The bounds are returned as float64, which represents every float32 value
// exactly, so comparisons against them are exact for both source types.
func floatIntBounds(f, d Desc) (lo, hi float64) {
	if !d.Signed {
		switch {
		case d.Bits <= 16:
			hi = float64(d.IntMax)
		case d.Bits == 32:
			if f.Bits == 32 {
				hi = float64(MaxF32Uint32)
			} else {
				hi = float64(d.IntMax)
			}
		default:
			if f.Bits == 32 {
				hi = float64(MaxF32Uint64)
			} else {
				hi = MaxF64Uint64
			}
		}
		return 0, hi
	}
	switch {
	case d.Bits <= 16:
		lo, hi = float64(d.IntMin), float64(d.IntMax)
	case d.Bits == 32:
		if f.Bits == 32 {
			lo, hi = float64(MinF32Int32), float64(MaxF32Int32)
		} else {
			lo, hi = float64(d.IntMin), float64(d.IntMax)
		}
	default:
		if f.Bits == 32 {
			lo, hi = float64(MinF32Int64), float64(MaxF32Int64)
		} else {
			lo, hi = MinF64Int64, MaxF64Int64
		}
	}
	return lo, hi
}
