package numconv

// Strategy identifies the checking algorithm a conversion rule applies.
type Strategy int

const (
	// StrategyExact converts directly; the destination's range covers the
	// source's, so the conversion never fails. Blind approximations
	// (integer to float under a lossy scheme) also use it.
	StrategyExact Strategy = iota

	// StrategyNarrowLower checks only the lower bound: the destination's
	// maximum is unreachable from the source, but negative inputs fail.
	StrategyNarrowLower

	// StrategyNarrowUpper checks only the upper bound.
	StrategyNarrowUpper

	// StrategyNarrowBoth checks both bounds, the lower one first.
	StrategyNarrowBoth

	// StrategyWrap reduces the input modulo the destination width. It
	// never fails and is defined between integers only.
	StrategyWrap

	// StrategyFloatNarrow checks against an explicit bound where a float
	// is involved and the destination's own limits are not exactly
	// representable: value-preserving integer-to-float conversion, and
	// float64-to-float32 approximation.
	StrategyFloatNarrow

	// StrategyFloatToInt rejects NaN, applies scheme rounding, checks the
	// rounded value against the boundary constant table, then truncates.
	StrategyFloatToInt
)

// Rule is the static fact describing how a (source, destination, scheme)
// triple converts. Rules are derived from the type descriptors; every
// offered combination has exactly one.
type Rule struct {
	Strategy Strategy

	// CanNegOverflow and CanPosOverflow report which overflow kinds the
	// rule's failure branches can produce; together with CanNaN they
	// determine the narrowest error shape the conversion returns.
	CanNegOverflow bool
	CanPosOverflow bool
	CanNaN         bool
}

// CanFail reports whether any input can make the conversion fail. Pairs
// for which it is false are safe to convert with Exact.
func (r Rule) CanFail() bool {
	return r.CanNegOverflow || r.CanPosOverflow || r.CanNaN
}

// ruleFor resolves the rule for a conversion from src to dst. valueExact
// selects value-preserving semantics (Checked and Exact) over approximation
// (Approx and ApproxBy). ok is false when the combination is not offered:
// value-preserving float-to-integer or float64-to-float32 conversion, and
// the Wrapping scheme with a float on either side.
func ruleFor(src, dst Desc, scheme Scheme, valueExact bool) (Rule, bool) {
	if scheme == Wrapping && (src.Float || dst.Float) {
		return Rule{}, false
	}

	switch {
	case src.Float && dst.Float:
		if dst.Bits >= src.Bits {
			return Rule{Strategy: StrategyExact}, true
		}
		if valueExact {
			// Narrowing a float loses precision for almost every
			// value; only an approximation is offered.
			return Rule{}, false
		}
		return Rule{Strategy: StrategyFloatNarrow, CanNegOverflow: true, CanPosOverflow: true}, true

	case src.Float:
		if valueExact {
			return Rule{}, false
		}
		return Rule{Strategy: StrategyFloatToInt, CanNegOverflow: true, CanPosOverflow: true, CanNaN: true}, true

	case dst.Float:
		if fitsFloat(src, dst) {
			return Rule{Strategy: StrategyExact}, true
		}
		if !valueExact {
			// The approximation is blind: every integer rounds to
			// some representable float.
			return Rule{Strategy: StrategyExact}, true
		}
		return Rule{Strategy: StrategyFloatNarrow, CanNegOverflow: src.Signed, CanPosOverflow: true}, true
	}

	if scheme == Wrapping {
		return Rule{Strategy: StrategyWrap}, true
	}
	return intRule(src, dst), true
}

// intRule classifies an integer-to-integer conversion by the relative
// domains of the two types.
func intRule(src, dst Desc) Rule {
	switch {
	case src.Signed == dst.Signed:
		if dst.Bits >= src.Bits {
			return Rule{Strategy: StrategyExact}
		}
		if src.Signed {
			return Rule{Strategy: StrategyNarrowBoth, CanNegOverflow: true, CanPosOverflow: true}
		}
		return Rule{Strategy: StrategyNarrowUpper, CanPosOverflow: true}

	case src.Signed:
		// Into an unsigned type: negative inputs always fail; the
		// upper bound matters only when the destination is narrower.
		if dst.Bits >= src.Bits {
			return Rule{Strategy: StrategyNarrowLower, CanNegOverflow: true}
		}
		return Rule{Strategy: StrategyNarrowBoth, CanNegOverflow: true, CanPosOverflow: true}

	default:
		// Unsigned into signed: widening is total, otherwise only the
		// upper bound can be violated.
		if dst.Bits > src.Bits {
			return Rule{Strategy: StrategyExact}
		}
		return Rule{Strategy: StrategyNarrowUpper, CanPosOverflow: true}
	}
}

// fitsFloat reports whether every value of the integer type src is exactly
// representable in the float type dst.
func fitsFloat(src, dst Desc) bool {
	span := dst.span()
	if src.Signed {
		// The magnitude of IntMin is IntMax+1, so strict comparison
		// of IntMax covers both ends.
		return src.IntMax < span
	}
	return src.IntMax <= span
}
