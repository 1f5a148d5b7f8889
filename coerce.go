package simplejs

import (
	"math"
	"strconv"
	"strings"
)

// ToNumberValue applies the ToNumber conversion to v. Strings that do not
// parse as a number convert to NaN; objects and functions have no numeric
// value here and fail with a TypeError, which callers propagate unchanged.
func ToNumberValue(v JSValue) (float64, error) {
	switch v.Type {
	case JSUndefined:
		return math.NaN(), nil
	case JSNull:
		return 0, nil
	case JSBoolean:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case JSNumber:
		return v.Number, nil
	case JSString:
		s := strings.TrimSpace(v.String)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), nil
		}
		return n, nil
	default:
		return 0, newTypeError("cannot convert %s to a number", v.Type.String())
	}
}

const twoPow32 = 4294967296

// numberToUint32 truncates n per the ToUint32 abstract operation: NaN,
// infinities and zero map to 0, everything else is truncated and reduced
// modulo 2^32 into the unsigned range.
func numberToUint32(n float64) uint32 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n == 0 {
		return 0
	}
	m := math.Mod(math.Trunc(n), twoPow32)
	if m < 0 {
		m += twoPow32
	}
	return uint32(m)
}
