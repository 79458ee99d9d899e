package decoder

import (
	"fmt"
	"strings"
)

// FieldKind describes the binary layout of a single table entry.
type FieldKind int

const (
	// KindInt is a 4-byte signed integer (a McIDAS "word").
	KindInt FieldKind = iota

	// KindBytes is a fixed-length byte string.
	KindBytes

	// KindPad consumes bytes without storing a value.
	KindPad
)

// Transform converts a raw decoded value before storage.
//
// Transforms are pure functions with no hidden state. Raw values are int32
// for KindInt fields and string for KindBytes fields.
type Transform func(raw any) any

// Field is one entry of a declarative block schema. A Field with an empty
// Name and KindPad denotes anonymous padding.
type Field struct {
	Name      string
	Kind      FieldKind
	Width     int
	Transform Transform
}

// Schema is an ordered field table describing one fixed-layout block.
// Decoding is strictly sequential: every byte of the layout is consumed
// exactly once, in declaration order.
type Schema []Field

// Size returns the total number of bytes the schema consumes.
func (s Schema) Size() int {
	n := 0
	for _, f := range s {
		n += f.Width
	}
	return n
}

// word declares a named 4-byte signed integer field.
func word(name string) Field {
	return Field{Name: name, Kind: KindInt, Width: 4}
}

// wordT declares a 4-byte signed integer field with a value transform.
func wordT(name string, t Transform) Field {
	return Field{Name: name, Kind: KindInt, Width: 4, Transform: t}
}

// str declares a fixed-length byte string field.
func str(name string, width int) Field {
	return Field{Name: name, Kind: KindBytes, Width: width}
}

// strT declares a byte string field with a value transform.
func strT(name string, width int, t Transform) Field {
	return Field{Name: name, Kind: KindBytes, Width: width, Transform: t}
}

// pad declares anonymous padding of n bytes.
func pad(n int) Field {
	return Field{Kind: KindPad, Width: n}
}

// repeatWords expands a repeating group of word fields into repeat*len(names)
// flat fields named name1..nameN. Repeated groups stay flat, in table order,
// so byte offsets match the on-disk layout exactly.
func repeatWords(names []string, repeat int) []Field {
	fields := make([]Field, 0, repeat*len(names))
	for n := 1; n <= repeat; n++ {
		for _, name := range names {
			fields = append(fields, word(fmt.Sprintf("%s%d", name, n)))
		}
	}
	return fields
}

// decodeStrip removes NUL bytes and surrounding whitespace from a raw
// byte-string value.
func decodeStrip(raw any) any {
	return strings.TrimSpace(strings.ReplaceAll(raw.(string), "\x00", ""))
}

// Record holds the named fields decoded from one block schema.
//
// Values are int32 for plain integer fields, string for byte-string fields,
// and whatever the field's transform produced otherwise.
type Record struct {
	Block  string
	names  []string
	fields map[string]any
}

// Names returns the stored field names in declaration order.
func (r *Record) Names() []string {
	return r.names
}

// Has reports whether the record contains the named field.
func (r *Record) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Get returns the raw stored value for the named field.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Int returns the named field as an int32. Missing or non-integer fields
// return zero.
func (r *Record) Int(name string) int32 {
	if v, ok := r.fields[name].(int32); ok {
		return v
	}
	return 0
}

// Float returns the named field as a float64, converting integer fields.
func (r *Record) Float(name string) float64 {
	switch v := r.fields[name].(type) {
	case float64:
		return v
	case int32:
		return float64(v)
	}
	return 0
}

// Str returns the named field as a string. Missing or non-string fields
// return the empty string.
func (r *Record) Str(name string) string {
	if v, ok := r.fields[name].(string); ok {
		return v
	}
	return ""
}

// DecodeSchema reads every field of the schema from the stream, in order,
// and returns the named-field record. Padding entries are consumed and
// discarded. A stream exhausted mid-table is a format error for the block.
func DecodeSchema(s *ByteStream, block string, schema Schema) (*Record, error) {
	rec := &Record{
		Block:  block,
		fields: make(map[string]any, len(schema)),
	}

	for _, f := range schema {
		switch f.Kind {
		case KindPad:
			if _, err := s.ReadBytes(f.Width); err != nil {
				return nil, &ErrFormat{
					Block:  block,
					Reason: fmt.Sprintf("exhausted at padding: %v", err),
				}
			}

		case KindInt:
			v, err := s.ReadInt(f.Width, true)
			if err != nil {
				return nil, &ErrFormat{
					Block:  block,
					Reason: fmt.Sprintf("exhausted at field %q: %v", f.Name, err),
				}
			}
			rec.store(f, v)

		case KindBytes:
			b, err := s.ReadBytes(f.Width)
			if err != nil {
				return nil, &ErrFormat{
					Block:  block,
					Reason: fmt.Sprintf("exhausted at field %q: %v", f.Name, err),
				}
			}
			rec.store(f, string(b))
		}
	}

	return rec, nil
}

// store applies the field transform and records the value under the field
// name. A duplicate name overwrites the earlier value; byte offsets are
// unaffected since decoding is sequential.
func (r *Record) store(f Field, raw any) {
	v := raw
	if f.Transform != nil {
		v = f.Transform(raw)
	}
	if !r.Has(f.Name) {
		r.names = append(r.names, f.Name)
	}
	r.fields[f.Name] = v
}
