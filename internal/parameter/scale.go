package parameter

import (
	"errors"
	"fmt"
	"math"
)

// Scale is the transform under which a parameter is estimated.
type Scale string

const (
	Lin   Scale = "lin"
	Log   Scale = "log"
	Log10 Scale = "log10"
)

// ErrInvalidScale is returned for a scale other than lin, log or log10.
var ErrInvalidScale = errors.New("invalid parameter scale")

// ParseScale reads a parameterScale cell. An empty cell means lin.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case "", Lin:
		return Lin, nil
	case Log:
		return Log, nil
	case Log10:
		return Log10, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScale, s)
	}
}

// ScaleValue maps a linear value to the given scale.
func ScaleValue(x float64, s Scale) (float64, error) {
	switch s {
	case Lin, "":
		return x, nil
	case Log:
		return math.Log(x), nil
	case Log10:
		return math.Log10(x), nil
	default:
		return math.NaN(), fmt.Errorf("%w: %q", ErrInvalidScale, s)
	}
}

// UnscaleValue maps a value on the given scale back to linear.
func UnscaleValue(x float64, s Scale) (float64, error) {
	switch s {
	case Lin, "":
		return x, nil
	case Log:
		return math.Exp(x), nil
	case Log10:
		return math.Pow(10, x), nil
	default:
		return math.NaN(), fmt.Errorf("%w: %q", ErrInvalidScale, s)
	}
}

// MapScale applies ScaleValue element-wise.
func MapScale(values []float64, scales []Scale) ([]float64, error) {
	if len(values) != len(scales) {
		return nil, fmt.Errorf("%d values but %d scales", len(values), len(scales))
	}

	out := make([]float64, len(values))
	for i := range values {
		v, err := ScaleValue(values[i], scales[i])
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}
