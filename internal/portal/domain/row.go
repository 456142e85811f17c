package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ValueKind discriminates the scalar types a spreadsheet cell can hold.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
)

// Value is a tagged scalar cell value. Uploaded sheets are open-ended, but
// every cell is one of string, number, or null — never a nested structure.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
}

func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Num: f} }
func NullValue() Value            { return Value{Kind: KindNull} }

// Falsy reports whether the cell counts as empty when deciding to drop a
// fully-empty row: null, the empty string, or numeric zero.
func (v Value) Falsy() bool {
	switch v.Kind {
	case KindString:
		return v.Str == ""
	case KindNumber:
		return v.Num == 0
	default:
		return true
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	parsed, err := valueFromToken(tok)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func valueFromToken(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return NumberValue(f), nil
	case bool:
		// Booleans show up in hand-edited documents; keep them as text.
		if t {
			return StringValue("true"), nil
		}
		return StringValue("false"), nil
	default:
		return Value{}, errors.New("domain: row cell must be a scalar")
	}
}

// Row is one parsed spreadsheet row: an ordered mapping of header name to
// cell value. Column order is preserved through JSON round-trips so rendered
// tables match the uploaded file.
type Row struct {
	keys  []string
	cells map[string]Value
}

// Set stores a cell, appending the header to the column order on first use.
func (r *Row) Set(key string, v Value) {
	if r.cells == nil {
		r.cells = make(map[string]Value)
	}
	if _, exists := r.cells[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.cells[key] = v
}

// Get returns the cell for the given header.
func (r Row) Get(key string) (Value, bool) {
	v, ok := r.cells[key]
	return v, ok
}

// Keys returns the headers in original column order.
func (r Row) Keys() []string { return r.keys }

// Len returns the number of cells.
func (r Row) Len() int { return len(r.keys) }

// Empty reports whether every cell is falsy (or the row has no cells).
func (r Row) Empty() bool {
	for _, v := range r.cells {
		if !v.Falsy() {
			return false
		}
	}
	return true
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := r.cells[key].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Row) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("domain: row must be a JSON object")
	}

	*r = Row{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("domain: unexpected row key %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		v, err := valueFromToken(valTok)
		if err != nil {
			return err
		}
		r.Set(key, v)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
