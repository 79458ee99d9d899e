package decoder

import (
	"encoding/binary"
	"errors"
	"testing"
)

// TestDecodeSchemaTotalConsumption tests exact sequential consumption:
// a table whose widths sum to N bytes consumes exactly N bytes and
// produces exactly the declared non-padding fields, in order.
func TestDecodeSchemaTotalConsumption(t *testing.T) {
	schema := Schema{
		word("first"),
		pad(4),
		word("second"),
		str("tag", 4),
	}
	if schema.Size() != 16 {
		t.Fatalf("Expected schema size 16, got %d", schema.Size())
	}

	data := make([]byte, 16)
	binary.BigEndian.PutUint32(data[0:], 10)
	binary.BigEndian.PutUint32(data[4:], 0xdeadbeef) // padding, discarded
	binary.BigEndian.PutUint32(data[8:], 20)
	copy(data[12:], "RECT")

	s := NewByteStream(data)
	s.SetByteOrder(binary.BigEndian)

	rec, err := DecodeSchema(s, "test", schema)
	if err != nil {
		t.Fatalf("DecodeSchema failed: %v", err)
	}

	if s.Remaining() != 0 {
		t.Errorf("Expected full consumption, %d bytes remain", s.Remaining())
	}

	names := rec.Names()
	expected := []string{"first", "second", "tag"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d fields, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Field %d: expected %q, got %q", i, name, names[i])
		}
	}

	if rec.Int("first") != 10 || rec.Int("second") != 20 {
		t.Errorf("Unexpected integer values: %d, %d",
			rec.Int("first"), rec.Int("second"))
	}
	if rec.Str("tag") != "RECT" {
		t.Errorf("Expected tag RECT, got %q", rec.Str("tag"))
	}
	if rec.Has("") {
		t.Error("Padding should not be stored as a field")
	}
}

// TestDecodeSchemaTransforms tests per-field value transforms
func TestDecodeSchemaTransforms(t *testing.T) {
	schema := Schema{
		strT("memo", 8, decodeStrip),
		wordT("coord", dmsDecimal),
	}

	data := make([]byte, 12)
	copy(data[0:], "HI\x00\x00  \x00\x00")
	binary.BigEndian.PutUint32(data[8:], 451530) // 045 15 30

	s := NewByteStream(data)
	s.SetByteOrder(binary.BigEndian)

	rec, err := DecodeSchema(s, "test", schema)
	if err != nil {
		t.Fatalf("DecodeSchema failed: %v", err)
	}

	if rec.Str("memo") != "HI" {
		t.Errorf("Expected memo stripped to HI, got %q", rec.Str("memo"))
	}

	want := 45 + 15.0/60 + 30.0/3600
	if got := rec.Float("coord"); got != want {
		t.Errorf("Expected DMS transform %v, got %v", want, got)
	}
}

// TestDecodeSchemaExhausted tests the mid-table exhaustion failure
func TestDecodeSchemaExhausted(t *testing.T) {
	schema := Schema{word("a"), word("b")}

	s := NewByteStream(make([]byte, 6))
	s.SetByteOrder(binary.BigEndian)

	_, err := DecodeSchema(s, "directory", schema)
	if err == nil {
		t.Fatal("Expected format error on exhausted stream")
	}

	var formatErr *ErrFormat
	if !errors.As(err, &formatErr) {
		t.Fatalf("Expected ErrFormat, got %T", err)
	}
	if formatErr.Block != "directory" {
		t.Errorf("Expected block name in error, got %q", formatErr.Block)
	}
}

// TestRepeatWords tests flat expansion of repeated field groups
func TestRepeatWords(t *testing.T) {
	fields := repeatWords([]string{"mag", "phase"}, 3)

	if len(fields) != 6 {
		t.Fatalf("Expected 6 expanded fields, got %d", len(fields))
	}

	expected := []string{"mag1", "phase1", "mag2", "phase2", "mag3", "phase3"}
	for i, name := range expected {
		if fields[i].Name != name {
			t.Errorf("Field %d: expected %q, got %q", i, name, fields[i].Name)
		}
		if fields[i].Width != 4 {
			t.Errorf("Field %q: expected width 4, got %d", name, fields[i].Width)
		}
	}
}

// TestRecordDuplicateName tests that a duplicated field name keeps the
// last value without disturbing byte offsets of later fields.
func TestRecordDuplicateName(t *testing.T) {
	schema := Schema{word("x"), word("x"), word("y")}

	data := make([]byte, 12)
	binary.BigEndian.PutUint32(data[0:], 1)
	binary.BigEndian.PutUint32(data[4:], 2)
	binary.BigEndian.PutUint32(data[8:], 3)

	s := NewByteStream(data)
	s.SetByteOrder(binary.BigEndian)

	rec, err := DecodeSchema(s, "test", schema)
	if err != nil {
		t.Fatalf("DecodeSchema failed: %v", err)
	}

	if rec.Int("x") != 2 {
		t.Errorf("Expected last duplicate value 2, got %d", rec.Int("x"))
	}
	if rec.Int("y") != 3 {
		t.Errorf("Expected y=3 unaffected by duplicate, got %d", rec.Int("y"))
	}
}
