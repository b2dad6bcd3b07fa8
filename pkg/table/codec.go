package table

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"merlin/pkg/row"
	"merlin/pkg/types"
)

// encodeRow writes a row into its slot, big endian. Each entry occupies
// exactly Entry.Size bytes: varchar as an 8 byte content length, the content
// and zero padding up to capacity; number as 8 bytes; boolean as one byte.
func encodeRow(slot []byte, r row.Row) {
	off := 0
	for _, e := range r {
		switch v := e.Value.(type) {
		case types.VarcharValue:
			binary.BigEndian.PutUint64(slot[off:], uint64(len(v.Value)))
			copy(slot[off+8:], v.Value)
			clear(slot[off+8+len(v.Value) : off+e.Size])
		case types.NumberValue:
			binary.BigEndian.PutUint64(slot[off:], v.Value)
		case types.BoolValue:
			if v.Value {
				slot[off] = 1
			} else {
				slot[off] = 0
			}
		}
		off += e.Size
	}
}

// decodeRow reads one slot back into named values for re-validation. A
// length prefix beyond the column capacity or non UTF-8 content means the
// slot bytes cannot be trusted and decoding fails.
func decodeRow(slot []byte, schema []types.ColumnSpec) (map[string]types.Value, error) {
	values := make(map[string]types.Value, len(schema))
	off := 0
	for _, col := range schema {
		size := col.Type.EncodedLength()
		raw := slot[off : off+size]
		switch col.Type.Kind {
		case types.VarcharKind:
			n := binary.BigEndian.Uint64(raw)
			if n > uint64(col.Type.MaxLen) {
				return nil, fmt.Errorf("column %q: stored length %d exceeds capacity %d",
					col.Name, n, col.Type.MaxLen)
			}
			content := raw[8 : 8+n]
			if !utf8.Valid(content) {
				return nil, fmt.Errorf("column %q: stored bytes are not valid UTF-8", col.Name)
			}
			values[col.Name] = types.NewVarcharValue(string(content))
		case types.NumberKind:
			values[col.Name] = types.NewNumberValue(binary.BigEndian.Uint64(raw))
		case types.BooleanKind:
			values[col.Name] = types.NewBoolValue(raw[0] == 1)
		}
		off += size
	}
	return values, nil
}
