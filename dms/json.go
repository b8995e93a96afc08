package dms

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Angle is an angle in decimal degrees that decodes from a JSON number or
// from any text Parse reads ("116.7", "116°42′", "3 37 12W").
type Angle float64

func (a Angle) Degrees() float64 {
	return float64(a)
}

func (a *Angle) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		d, err := ParseAngle(s)
		if err != nil {
			return err
		}
		*a = Angle(d)
		return nil
	}

	var d float64
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("%w: '%s'", ErrInvalidAngle, data)
	}
	*a = Angle(d)
	return nil
}
