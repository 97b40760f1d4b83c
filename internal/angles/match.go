package angles

import (
	"fmt"
	"math"
)

// MaxDistance is the largest possible circular distance.
const MaxDistance = FullTurn / 2

// CircularDistance returns the shortest arc between a and b, in [0, 180].
func CircularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), FullTurn)
	if d > MaxDistance {
		return FullTurn - d
	}
	return d
}

// Matches reports whether every slot of submitted lies within tolerance of
// the same slot of stored. A single slot out of range fails the credential.
func Matches(submitted, stored Credential, tolerance float64) bool {
	for i := range submitted {
		if CircularDistance(submitted[i].Degrees(), stored[i].Degrees()) > tolerance {
			return false
		}
	}
	return true
}

// Matcher carries a deployment's tolerance.
type Matcher struct {
	tolerance float64
}

// NewMatcher returns a Matcher for the given tolerance, which must lie in
// [0, 180].
func NewMatcher(tolerance float64) (*Matcher, error) {
	if math.IsNaN(tolerance) || tolerance < 0 || tolerance > MaxDistance {
		return nil, fmt.Errorf("tolerance %v out of range [0, %v]", tolerance, MaxDistance)
	}
	return &Matcher{tolerance: tolerance}, nil
}

// Tolerance returns the configured tolerance in degrees.
func (m *Matcher) Tolerance() float64 {
	return m.tolerance
}

// Match applies Matches with the configured tolerance.
func (m *Matcher) Match(submitted, stored Credential) bool {
	return Matches(submitted, stored, m.tolerance)
}
