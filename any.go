package numconv

import (
	"github.com/spf13/cast"
)

// FromAny converts a dynamically typed value to D. Numeric inputs are
// routed through the checked conversion engine: integers use Checked,
// floats use Approx (so a float input to an integer destination truncates
// toward zero after a bounds check). Everything else (strings, bools,
// json.Number, and the other inputs [cast.ToE] understands) is first coerced
// into a wide numeric and then range-checked the same way, so no input can
// silently truncate into D. Inputs [cast.ToE] cannot make numeric return
// its error unchanged.
func FromAny[D Number](v any) (D, error) {
	switch s := v.(type) {
	case int:
		return Checked[D](s)
	case int8:
		return Checked[D](s)
	case int16:
		return Checked[D](s)
	case int32:
		return Checked[D](s)
	case int64:
		return Checked[D](s)
	case uint:
		return Checked[D](s)
	case uint8:
		return Checked[D](s)
	case uint16:
		return Checked[D](s)
	case uint32:
		return Checked[D](s)
	case uint64:
		return Checked[D](s)
	case uintptr:
		return Checked[D](s)
	case float32:
		return Approx[D](s)
	case float64:
		return Approx[D](s)
	}

	if describe[D]().Float {
		f, err := cast.ToE[float64](v)
		if err != nil {
			var zero D
			return zero, err
		}
		return Approx[D](f)
	}
	i, err := cast.ToE[int64](v)
	if err != nil {
		var zero D
		return zero, err
	}
	return Checked[D](i)
}
