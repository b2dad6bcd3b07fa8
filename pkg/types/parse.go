package types

import (
	"fmt"
	"strconv"
)

// ParseValue converts raw text into a Value of the given column type.
//
// Number text must be a base 10 unsigned 64 bit integer. Boolean text must
// be exactly "true" or "false". Varchar text within the column capacity is
// kept as is; longer text fails unless allowTruncate is set, in which case
// the first MaxLen bytes are kept. Truncation counts bytes, not runes, so it
// can split a multi byte sequence. Callers that need well formed text must
// validate it before storing.
func ParseValue(col ColumnType, text string, allowTruncate bool) (Value, error) {
	switch col.Kind {
	case NumberKind:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid number", text)
		}
		return NewNumberValue(n), nil
	case BooleanKind:
		switch text {
		case "true":
			return NewBoolValue(true), nil
		case "false":
			return NewBoolValue(false), nil
		default:
			return nil, fmt.Errorf(`%q is not a valid boolean, want "true" or "false"`, text)
		}
	case VarcharKind:
		if len(text) <= col.MaxLen {
			return NewVarcharValue(text), nil
		}
		if allowTruncate {
			return NewVarcharValue(text[:col.MaxLen]), nil
		}
		return nil, fmt.Errorf("%q is %d bytes and does not fit %s", text, len(text), col)
	default:
		return nil, fmt.Errorf("unsupported column type %s", col)
	}
}
