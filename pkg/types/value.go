package types

import "strconv"

// Value is a runtime value produced by statement literals, CSV parsing or
// page decoding. Type reports the inferred type: a varchar value infers the
// byte length it actually holds, not a declared capacity.
type Value interface {
	Type() ColumnType
	String() string
}

// VarcharValue holds string content of any byte length.
type VarcharValue struct {
	Value string
}

func NewVarcharValue(s string) VarcharValue {
	return VarcharValue{Value: s}
}

func (v VarcharValue) Type() ColumnType {
	return VarcharType(len(v.Value))
}

func (v VarcharValue) String() string {
	return v.Value
}

// NumberValue holds an unsigned 64 bit integer.
type NumberValue struct {
	Value uint64
}

func NewNumberValue(n uint64) NumberValue {
	return NumberValue{Value: n}
}

func (v NumberValue) Type() ColumnType {
	return NumberType
}

func (v NumberValue) String() string {
	return strconv.FormatUint(v.Value, 10)
}

// BoolValue holds a boolean.
type BoolValue struct {
	Value bool
}

func NewBoolValue(b bool) BoolValue {
	return BoolValue{Value: b}
}

func (v BoolValue) Type() ColumnType {
	return BooleanType
}

func (v BoolValue) String() string {
	return strconv.FormatBool(v.Value)
}
