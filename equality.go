package pubsub

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Equality reports whether two listener ids address the same listener.
type Equality func(a, b any) bool

type EqualityMode string

const (
	EqualityStrict EqualityMode = "strict"
	EqualityLoose  EqualityMode = "loose"
)

func ParseEqualityMode(s string) (EqualityMode, error) {
	switch m := EqualityMode(strings.ToLower(strings.TrimSpace(s))); m {
	case EqualityStrict, EqualityLoose:
		return m, nil
	default:
		return "", errors.Wrapf(ErrUnknownEqualityMode, "%q", s)
	}
}

func (m EqualityMode) Equality() Equality {
	if m == EqualityLoose {
		return LooseEqual
	}
	return StrictEqual
}

// StrictEqual compares ids with ==. Values of different dynamic types, or of
// types that cannot be compared, are never equal. This includes structs and
// arrays whose interface fields hold non-comparable values.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual is a == b, reporting false where == would panic.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// LooseEqual extends StrictEqual with coercion between scalar kinds: numbers,
// bools and strings compare by value regardless of their Go type, so 1, 1.0,
// uint8(1), "1" and true are all equal. The empty string equals 0.
//
// Strings are converted to numbers the way JavaScript does: surrounding
// whitespace is ignored, "Infinity" with an optional sign is accepted, and
// the 0x, 0o and 0b prefixes select the base. Go-only forms such as "inf",
// "NaN", hex floats and digit separators are not numbers.
func LooseEqual(a, b any) bool {
	if StrictEqual(a, b) {
		return true
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return false
	}

	if va.Kind() == reflect.String && vb.Kind() == reflect.String {
		return va.String() == vb.String()
	}

	fa, ok := toNumber(va)
	if !ok {
		return false
	}
	fb, ok := toNumber(vb)
	if !ok {
		return false
	}
	return fa == fb
}

func toNumber(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f, !math.IsNaN(f)
	case reflect.Bool:
		if v.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.String:
		return parseNumber(v.String())
	default:
		return 0, false
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.Contains(s, "_") {
				return 0, false
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	// Letters ParseFloat understands beyond the exponent marker: inf, nan,
	// hex floats and separators.
	if strings.ContainsAny(strings.ToLower(s), "_inpx") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
