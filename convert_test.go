package numconv

import (
	"math"
	"testing"
)

func TestCheckedIntToInt(t *testing.T) {
	t.Run("withinRange", func(t *testing.T) {
		got, err := Checked[int8](int16(127))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 127 {
			t.Fatalf("expected 127, got %d", got)
		}
	})

	t.Run("posOverflowCarriesInput", func(t *testing.T) {
		_, err := Checked[int8](int16(200))
		re, ok := err.(RangeError[int16])
		if !ok {
			t.Fatalf("expected RangeError[int16], got %T (%v)", err, err)
		}
		if re.Kind() != PosOverflow {
			t.Fatalf("expected positive overflow, got %v", re.Kind())
		}
		if re.Input != 200 {
			t.Fatalf("expected payload 200, got %v", re.Input)
		}
	})

	t.Run("negOverflowIsOneSided", func(t *testing.T) {
		_, err := Checked[uint8](int8(-1))
		ne, ok := err.(NegOverflowError[int8])
		if !ok {
			t.Fatalf("expected NegOverflowError[int8], got %T (%v)", err, err)
		}
		if ne.Input != -1 {
			t.Fatalf("expected payload -1, got %v", ne.Input)
		}
	})

	t.Run("posOverflowIsOneSidedFromUnsigned", func(t *testing.T) {
		_, err := Checked[uint8](uint16(400))
		pe, ok := err.(PosOverflowError[uint16])
		if !ok {
			t.Fatalf("expected PosOverflowError[uint16], got %T (%v)", err, err)
		}
		if pe.Input != 400 {
			t.Fatalf("expected payload 400, got %v", pe.Input)
		}
	})

	t.Run("negativeCheckedFirst", func(t *testing.T) {
		// int32 -> uint8 can overflow in both directions; a negative
		// input must always classify as negative overflow.
		_, err := Checked[uint8](int32(-5))
		if k, _ := KindOf(err); k != NegOverflow {
			t.Fatalf("expected negative overflow, got %v", err)
		}
	})

	t.Run("unsignedToWiderSignedIsTotal", func(t *testing.T) {
		got, err := Checked[int64](uint32(math.MaxUint32))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != math.MaxUint32 {
			t.Fatalf("expected %d, got %d", uint32(math.MaxUint32), got)
		}
	})

	t.Run("uint64ToInt64Bound", func(t *testing.T) {
		if _, err := Checked[int64](uint64(math.MaxInt64)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := Checked[int64](uint64(math.MaxInt64) + 1)
		if _, ok := err.(PosOverflowError[uint64]); !ok {
			t.Fatalf("expected PosOverflowError[uint64], got %T (%v)", err, err)
		}
	})
}

func TestCheckedIntToFloat(t *testing.T) {
	t.Run("exactWithinSpan", func(t *testing.T) {
		got, err := Checked[float32](int32(16_777_216))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 16_777_216.0 {
			t.Fatalf("expected 16777216.0, got %v", got)
		}
	})

	t.Run("beyondSpanOverflows", func(t *testing.T) {
		_, err := Checked[float32](int32(16_777_217))
		re, ok := err.(RangeError[int32])
		if !ok {
			t.Fatalf("expected RangeError[int32], got %T (%v)", err, err)
		}
		if re.Kind() != PosOverflow || re.Input != 16_777_217 {
			t.Fatalf("expected positive overflow of 16777217, got %v", err)
		}
	})

	t.Run("negativeSpanInclusive", func(t *testing.T) {
		if _, err := Checked[float32](int32(-16_777_216)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := Checked[float32](int32(-16_777_217)); err == nil {
			t.Fatalf("expected negative overflow")
		}
	})

	t.Run("unsignedUpperBoundOnly", func(t *testing.T) {
		_, err := Checked[float32](uint32(16_777_217))
		if _, ok := err.(PosOverflowError[uint32]); !ok {
			t.Fatalf("expected PosOverflowError[uint32], got %T (%v)", err, err)
		}
	})

	t.Run("int32ToFloat64IsTotal", func(t *testing.T) {
		got := Exact[float64](int32(math.MaxInt32))
		if got != float64(math.MaxInt32) {
			t.Fatalf("expected %v, got %v", float64(math.MaxInt32), got)
		}
	})

	t.Run("int64ToFloat64Span", func(t *testing.T) {
		if _, err := Checked[float64](int64(1) << 53); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := Checked[float64](int64(1)<<53 + 1); err == nil {
			t.Fatalf("expected positive overflow")
		}
	})
}

func TestApproxIntToFloatIsBlind(t *testing.T) {
	// Approximation rounds to the nearest representable float instead of
	// failing once the span is exceeded.
	got, err := Approx[float32](int32(16_777_217))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 16_777_216.0 {
		t.Fatalf("expected 16777216.0, got %v", got)
	}
}

func TestApproxFloatToInt(t *testing.T) {
	t.Run("defaultTruncatesInBounds", func(t *testing.T) {
		cases := map[float32]uint8{
			41.0: 41, 41.3: 41, 41.5: 41, 41.8: 41, 42.0: 42, 255.0: 255,
		}
		for in, want := range cases {
			got, err := Approx[uint8](in)
			if err != nil {
				t.Fatalf("unexpected error for %v: %v", in, err)
			}
			if got != want {
				t.Fatalf("expected %d for %v, got %d", want, in, got)
			}
		}
	})

	t.Run("defaultRejectsRawOutOfBounds", func(t *testing.T) {
		_, err := Approx[uint8](float32(256.0))
		fe, ok := err.(FloatError[float32])
		if !ok {
			t.Fatalf("expected FloatError[float32], got %T (%v)", err, err)
		}
		if fe.Kind() != PosOverflow || fe.Input != 256.0 {
			t.Fatalf("expected positive overflow of 256, got %v", err)
		}
	})

	t.Run("roundToNearestOverflows", func(t *testing.T) {
		_, err := ApproxBy[uint8](float32(255.5), RoundToNearest)
		fe, ok := err.(FloatError[float32])
		if !ok {
			t.Fatalf("expected FloatError[float32], got %T (%v)", err, err)
		}
		if fe.Kind() != PosOverflow {
			t.Fatalf("expected positive overflow, got %v", fe.Kind())
		}
		// The payload is the original input, not the rounded 256.
		if fe.Input != 255.5 {
			t.Fatalf("expected payload 255.5, got %v", fe.Input)
		}
	})

	t.Run("roundToZeroSucceeds", func(t *testing.T) {
		got, err := ApproxBy[uint8](float32(255.5), RoundToZero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 255 {
			t.Fatalf("expected 255, got %d", got)
		}
	})

	t.Run("widerDestinationAccepts", func(t *testing.T) {
		got, err := Approx[uint16](float32(255.5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 255 {
			t.Fatalf("expected 255, got %d", got)
		}
	})

	t.Run("negativeZeroTruncatesToZero", func(t *testing.T) {
		got, err := ApproxBy[uint64](float32(-0.3), RoundToZero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("rawNegativeFractionOverflowsUnsigned", func(t *testing.T) {
		_, err := Approx[uint64](float32(-0.3))
		if k, _ := KindOf(err); k != NegOverflow {
			t.Fatalf("expected negative overflow, got %v", err)
		}
	})
}

func TestRoundingMatrix(t *testing.T) {
	t.Run("positiveTie", func(t *testing.T) {
		cases := []struct {
			scheme Scheme
			want   uint8
		}{
			{DefaultApprox, 8},
			{RoundToZero, 8},
			{RoundToNegInf, 8},
			{RoundToPosInf, 9},
			{RoundToNearest, 9},
		}
		for _, c := range cases {
			got, err := ApproxBy[uint8](float32(8.5), c.scheme)
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", c.scheme, err)
			}
			if got != c.want {
				t.Fatalf("%v: expected %d, got %d", c.scheme, c.want, got)
			}
		}
	})

	t.Run("negativeTie", func(t *testing.T) {
		cases := []struct {
			scheme Scheme
			want   int8
		}{
			{DefaultApprox, -8},
			{RoundToZero, -8},
			{RoundToNegInf, -9},
			{RoundToPosInf, -8},
			{RoundToNearest, -9},
		}
		for _, c := range cases {
			got, err := ApproxBy[int8](float32(-8.5), c.scheme)
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", c.scheme, err)
			}
			if got != c.want {
				t.Fatalf("%v: expected %d, got %d", c.scheme, c.want, got)
			}
		}
	})

	t.Run("float64Ties", func(t *testing.T) {
		if got, _ := ApproxBy[int32](2.5, RoundToNearest); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
		if got, _ := ApproxBy[int32](-2.5, RoundToNearest); got != -3 {
			t.Fatalf("expected -3, got %d", got)
		}
	})
}

func TestNaNPrecedence(t *testing.T) {
	schemes := []Scheme{DefaultApprox, RoundToNearest, RoundToNegInf, RoundToPosInf, RoundToZero}

	t.Run("float32", func(t *testing.T) {
		nan := float32(math.NaN())
		for _, s := range schemes {
			_, err := ApproxBy[int32](nan, s)
			fe, ok := err.(FloatError[float32])
			if !ok {
				t.Fatalf("%v: expected FloatError[float32], got %T (%v)", s, err, err)
			}
			if fe.Kind() != NotANumber {
				t.Fatalf("%v: expected not-a-number, got %v", s, fe.Kind())
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		for _, s := range schemes {
			_, err := ApproxBy[uint8](math.NaN(), s)
			if k, _ := KindOf(err); k != NotANumber {
				t.Fatalf("%v: expected not-a-number, got %v", s, err)
			}
		}
	})
}

func TestInfinityOverflows(t *testing.T) {
	_, err := Approx[int32](math.Inf(1))
	if k, _ := KindOf(err); k != PosOverflow {
		t.Fatalf("expected positive overflow for +Inf, got %v", err)
	}
	_, err = Approx[int32](math.Inf(-1))
	if k, _ := KindOf(err); k != NegOverflow {
		t.Fatalf("expected negative overflow for -Inf, got %v", err)
	}
}

func TestWrapping(t *testing.T) {
	t.Run("reducesModuloWidth", func(t *testing.T) {
		got, err := ApproxBy[uint8](uint16(400), Wrapping)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 144 {
			t.Fatalf("expected 144, got %d", got)
		}
	})

	t.Run("signReinterpretation", func(t *testing.T) {
		if got := Wrap[int8](uint8(200)); got != -56 {
			t.Fatalf("expected -56, got %d", got)
		}
		if got := Wrap[uint8](int8(-1)); got != 255 {
			t.Fatalf("expected 255, got %d", got)
		}
		if got := Wrap[uint8](int16(math.MinInt16)); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("isModular", func(t *testing.T) {
		for _, v := range []int64{math.MinInt64, -129, -1, 0, 1, 255, 256, 1000, math.MaxInt64} {
			got := Wrap[uint8](v)
			if want := uint8(v); got != want {
				t.Fatalf("expected %d for %d, got %d", want, v, got)
			}
		}
	})
}

func TestFloat64ToFloat32(t *testing.T) {
	const over = math.MaxFloat32 * 2
	const under = -math.MaxFloat32 * 2

	t.Run("overflowBothSides", func(t *testing.T) {
		_, err := Approx[float32](over)
		re, ok := err.(RangeError[float64])
		if !ok || re.Kind() != PosOverflow {
			t.Fatalf("expected positive overflow RangeError[float64], got %T (%v)", err, err)
		}
		_, err = Approx[float32](under)
		if k, _ := KindOf(err); k != NegOverflow {
			t.Fatalf("expected negative overflow, got %v", err)
		}
	})

	t.Run("nonFinitePassesThrough", func(t *testing.T) {
		got, err := Approx[float32](math.Inf(1))
		if err != nil || !math.IsInf(float64(got), 1) {
			t.Fatalf("expected +Inf, got %v (err %v)", got, err)
		}
		got, err = Approx[float32](math.NaN())
		if err != nil || got == got {
			t.Fatalf("expected NaN, got %v (err %v)", got, err)
		}
	})

	t.Run("widensExactly", func(t *testing.T) {
		got := Exact[float64](float32(1.5))
		if got != 1.5 {
			t.Fatalf("expected 1.5, got %v", got)
		}
	})
}

func TestDefaultSchemeUsesDestinationBounds(t *testing.T) {
	// For pairs whose destination bounds are exactly representable, the
	// default scheme checks the raw input against the destination's own
	// min/max, while explicit truncation checks the rounded value. The
	// same input can therefore fail under one and succeed under the
	// other.
	if _, err := Approx[int32](float64(2_147_483_647.5)); err == nil {
		t.Fatalf("expected overflow from raw bound check")
	}
	got, err := ApproxBy[int32](float64(2_147_483_647.5), RoundToZero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != math.MaxInt32 {
		t.Fatalf("expected %d, got %d", int32(math.MaxInt32), got)
	}

	if _, err := Approx[int32](float64(-2_147_483_648.0)); err != nil {
		t.Fatalf("unexpected error at exact minimum: %v", err)
	}
	if _, err := Approx[int32](float64(-2_147_483_649.0)); err == nil {
		t.Fatalf("expected negative overflow")
	}
}

func TestExact(t *testing.T) {
	t.Run("roundTripsEveryInt8", func(t *testing.T) {
		for v := math.MinInt8; v <= math.MaxInt8; v++ {
			wide := Exact[int64](int8(v))
			back, err := Checked[int8](wide)
			if err != nil {
				t.Fatalf("unexpected error for %d: %v", v, err)
			}
			if int(back) != v {
				t.Fatalf("expected %d, got %d", v, back)
			}
		}
	})

	t.Run("panicsOnFalliblePair", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic from Exact on a fallible pair")
			}
		}()
		_ = Exact[int8](int16(0))
	})
}

func TestNotOfferedPanics(t *testing.T) {
	t.Run("checkedFloatToInt", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic from Checked on float to int")
			}
		}()
		_, _ = Checked[int32](float32(1.0))
	})

	t.Run("checkedFloat64ToFloat32", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic from Checked on float64 to float32")
			}
		}()
		_, _ = Checked[float32](float64(1.0))
	})

	t.Run("wrappingWithFloat", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic from Wrapping with a float source")
			}
		}()
		_, _ = ApproxBy[int32](float64(1.0), Wrapping)
	})
}
