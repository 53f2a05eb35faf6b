// Package numconv provides checked conversions between the built-in numeric
// types, with explicit success/failure semantics and a selectable
// approximation scheme.
//
// A plain Go conversion between numeric types never fails: it silently
// truncates, wraps, or rounds. This package replaces that with conversions
// that either preserve the input exactly or reject it with a classified
// error carrying the original value.
//
// [Checked] is the general, value-preserving entry point: it succeeds only
// when the input survives the conversion exactly. [Approx] and [ApproxBy]
// perform lossy conversions under an explicit [Scheme] (truncation,
// round-to-nearest, floor, ceiling, or wrapping). [Exact] is reserved for
// pairs that can never fail, such as widening int8 to int64.
//
// Conversions use whichever error type most narrowly describes the failures
// the pair can produce: a widening signed-to-unsigned conversion can only
// fail with [NegOverflowError], general integer narrowing with [RangeError],
// and float-to-integer conversion with [FloatError], which adds a
// not-a-number case. Every narrower error widens losslessly into the broader
// shapes, and [KindOf] strips the payload when only the classification
// matters.
//
// Conversions the package does not offer, because they cannot be given
// value-preserving semantics, are programmer errors and panic: Checked from
// a float to an integer type (use Approx), Checked from float64 to float32,
// and the Wrapping scheme with a float on either side.
//
// For callers that have pre-decided a fallback policy, [Saturate],
// [UnwrapOrSaturate], [UnwrapOrInvalid], and [UnwrapOrInf] resolve failed
// outcomes into concrete substitute values.
//
// [FromAny] accepts dynamically typed input, routing numeric values through
// the checked engine and coercing everything else before range-checking it.
package numconv
