// Package angles implements the dial credential: three angular positions,
// their normalization onto the circle, and tolerance based matching.
package angles

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/dialkeeper/internal/common"
)

// FullTurn is the size of the circle in degrees.
const FullTurn = 360.0

// Slots is the number of dials in a credential.
const Slots = 3

// Angle is a dial position in degrees, normalized to [0, 360).
type Angle float64

// Normalize reduces x onto the half-open range [0, 360).
func Normalize(x float64) Angle {
	return Angle(math.Mod(math.Mod(x, FullTurn)+FullTurn, FullTurn))
}

// Degrees returns the angle as a plain float64.
func (a Angle) Degrees() float64 {
	return float64(a)
}

// toFloat accepts the numeric kinds a decoded request may carry.
func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, fmt.Errorf("%w: angle %v (%T) is not a number", common.ErrInvalidInput, v, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: angle %v is not a finite number", common.ErrInvalidInput, f)
	}
	return f, nil
}
