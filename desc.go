package numconv

import (
	"math"
	"math/bits"
)

// Desc describes the value domain of a primitive numeric type: its width,
// signedness, and representable integer range. Descriptors are constant
// facts; every conversion rule in this package is derived from the source
// and destination descriptors alone.
type Desc struct {
	// Bits is the storage width. int, uint, and uintptr report the
	// platform's pointer width.
	Bits uint

	// Signed reports whether the type can represent negative values.
	// Floating-point types are signed.
	Signed bool

	// Float reports whether the type is a floating-point format.
	Float bool

	// IntMin is the most negative representable integer (zero for
	// unsigned types).
	IntMin int64

	// IntMax is the largest representable integer magnitude. For floats
	// it is unused; see Mant.
	IntMax uint64

	// Mant is the significand width of a floating-point format, counting
	// the implicit leading bit. Integers beyond 2^Mant in magnitude are
	// no longer contiguously representable.
	Mant uint
}

// span returns the largest integer magnitude the float format represents
// contiguously.
func (d Desc) span() uint64 { return 1 << d.Mant }

func describe[T Number]() Desc {
	var z T
	switch any(z).(type) {
	case int8:
		return Desc{Bits: 8, Signed: true, IntMin: math.MinInt8, IntMax: math.MaxInt8}
	case int16:
		return Desc{Bits: 16, Signed: true, IntMin: math.MinInt16, IntMax: math.MaxInt16}
	case int32:
		return Desc{Bits: 32, Signed: true, IntMin: math.MinInt32, IntMax: math.MaxInt32}
	case int64:
		return Desc{Bits: 64, Signed: true, IntMin: math.MinInt64, IntMax: math.MaxInt64}
	case int:
		return Desc{Bits: bits.UintSize, Signed: true, IntMin: math.MinInt, IntMax: math.MaxInt}
	case uint8:
		return Desc{Bits: 8, IntMax: math.MaxUint8}
	case uint16:
		return Desc{Bits: 16, IntMax: math.MaxUint16}
	case uint32:
		return Desc{Bits: 32, IntMax: math.MaxUint32}
	case uint64:
		return Desc{Bits: 64, IntMax: math.MaxUint64}
	case uint:
		return Desc{Bits: bits.UintSize, IntMax: math.MaxUint}
	case uintptr:
		return Desc{Bits: bits.UintSize, IntMax: math.MaxUint}
	case float32:
		return Desc{Bits: 32, Signed: true, Float: true, Mant: 24}
	default: // float64
		return Desc{Bits: 64, Signed: true, Float: true, Mant: 53}
	}
}

// Min returns the smallest value representable by T. For floating-point
// types this is the negative value of largest magnitude.
func Min[T Number]() T {
	d := describe[T]()
	if d.Float {
		f := -math.MaxFloat64
		if d.Bits == 32 {
			f = -math.MaxFloat32
		}
		return T(f)
	}
	return T(d.IntMin)
}

// Max returns the largest value representable by T.
func Max[T Number]() T {
	d := describe[T]()
	if d.Float {
		f := math.MaxFloat64
		if d.Bits == 32 {
			f = math.MaxFloat32
		}
		return T(f)
	}
	return T(d.IntMax)
}
