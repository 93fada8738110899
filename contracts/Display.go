package contracts

import (
	"errors"
	"strconv"
)

// Display renders the value the way the sheet shows it to the user.
func (v ResolvedValue) Display() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueError:
		if errors.Is(v.Err, CircularReferenceError) {
			return CircularReferenceLabel
		}
		return MalformedInputLabel
	default:
		return ""
	}
}
