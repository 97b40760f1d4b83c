package angles

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/dialkeeper/internal/common"
)

// Credential is the ordered triple of dial positions: outer, middle, inner.
// Slots are compared positionally and never permuted.
type Credential [Slots]Angle

// New builds a credential from three raw degree values.
func New(outer, middle, inner float64) Credential {
	return Credential{Normalize(outer), Normalize(middle), Normalize(inner)}
}

// Parse validates a raw submission and normalizes it. The submission must be
// exactly three numeric values; anything else fails with ErrInvalidInput.
func Parse(raw []any) (Credential, error) {
	var c Credential
	if len(raw) != Slots {
		return c, fmt.Errorf("%w: expected %d angles, got %d", common.ErrInvalidInput, Slots, len(raw))
	}
	for i, v := range raw {
		f, err := toFloat(v)
		if err != nil {
			return Credential{}, err
		}
		c[i] = Normalize(f)
	}
	return c, nil
}

// Floats returns the credential as a slice of degrees.
func (c Credential) Floats() []float64 {
	out := make([]float64, Slots)
	for i, a := range c {
		out[i] = float64(a)
	}
	return out
}

// MarshalText stores the credential as a JSON array, e.g. [10,200,300].
func (c Credential) MarshalText() ([]byte, error) {
	return json.Marshal(c.Floats())
}

// Encode is MarshalText returning a string, the form kept in the database.
func (c Credential) Encode() (string, error) {
	b, err := c.MarshalText()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a stored credential. Anything other than a JSON array of
// exactly three finite numbers yields ErrDataCorrupt.
func Decode(stored string) (Credential, error) {
	var values []*float64
	if err := json.Unmarshal([]byte(stored), &values); err != nil {
		return Credential{}, fmt.Errorf("%w: %v", common.ErrDataCorrupt, err)
	}
	if len(values) != Slots {
		return Credential{}, fmt.Errorf("%w: expected %d angles, found %d", common.ErrDataCorrupt, Slots, len(values))
	}
	var c Credential
	for i, f := range values {
		if f == nil {
			return Credential{}, fmt.Errorf("%w: slot %d is null", common.ErrDataCorrupt, i)
		}
		c[i] = Normalize(*f)
	}
	return c, nil
}
