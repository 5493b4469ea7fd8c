package ti83f

import (
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

func testEntry(t *testing.T) Entry {
	t.Helper()
	name, err := NameOf("A")
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	return Entry{
		Type:  TypeReal,
		Name:  name,
		Value: RealValue(mustReal(t, true, 2, "314")),
	}
}

func TestEntryRoundTrip(t *testing.T) {
	t.Parallel()

	e := testEntry(t)
	wire, err := appendEntry(nil, e)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(wire) != entryHeaderSize+RealSize+entryTrailerSize {
		t.Fatalf("wire size: got %d", len(wire))
	}
	if binary.LittleEndian.Uint16(wire) != RealSize {
		t.Fatalf("leading length: got %d", binary.LittleEndian.Uint16(wire))
	}
	if binary.LittleEndian.Uint16(wire[len(wire)-2:]) != RealSize {
		t.Fatalf("trailing length: got %d", binary.LittleEndian.Uint16(wire[len(wire)-2:]))
	}

	got, n, err := decodeEntry(wire, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != len(wire) {
		t.Fatalf("consumed: got %d want %d", n, len(wire))
	}
	if !reflect.DeepEqual(got, e) {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, e)
	}
}

func TestDecodeEntryTrailingLengthMismatch(t *testing.T) {
	t.Parallel()

	wire, err := appendEntry(nil, testEntry(t))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	binary.LittleEndian.PutUint16(wire[len(wire)-2:], RealSize+1)
	if _, _, err := decodeEntry(wire, 0); !errors.Is(err, ErrTrailingLengthMismatch) {
		t.Fatalf("expected ErrTrailingLengthMismatch, got %v", err)
	}
}

func TestDecodeEntryInvalidName(t *testing.T) {
	t.Parallel()

	wire, err := appendEntry(nil, testEntry(t))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	wire[3] = 0x1F // name field starts after length and tag
	if _, _, err := decodeEntry(wire, 0); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestDecodeEntryTruncated(t *testing.T) {
	t.Parallel()

	wire, err := appendEntry(nil, testEntry(t))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, cut := range []int{1, entryHeaderSize - 1, len(wire) - 1} {
		if _, _, err := decodeEntry(wire[:cut], 0); !errors.Is(err, ErrTruncatedEntry) {
			t.Fatalf("cut at %d: expected ErrTruncatedEntry, got %v", cut, err)
		}
	}
}

func TestDecodeEntryUnknownTagRoundTripsOpaque(t *testing.T) {
	t.Parallel()

	name, _ := NameOf("MYSTERY")
	e := Entry{
		Type:    TypeID(0x42),
		Name:    name,
		Version: 3,
		Flags:   FlagArchived,
		Value:   OpaqueValue([]byte{0xCA, 0xFE, 0xBA, 0xBE}),
	}
	wire, err := appendEntry(nil, e)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, _, err := decodeEntry(wire, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Value.Kind() != KindRawOpaque {
		t.Fatalf("unknown tag kind: got %s", got.Value.Kind())
	}
	if !got.Archived() {
		t.Fatalf("archived flag lost")
	}
	again, err := appendEntry(nil, got)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !reflect.DeepEqual(again, wire) {
		t.Fatalf("unknown tag not byte-identical:\n got % X\nwant % X", again, wire)
	}
}

func TestAppendEntryFieldOverflow(t *testing.T) {
	t.Parallel()

	name, _ := NameOf("BIG")
	e := Entry{
		Type:  TypeAppVar,
		Name:  name,
		Value: OpaqueValue(make([]byte, 0x10000)),
	}
	if _, err := appendEntry(nil, e); !errors.Is(err, ErrFieldOverflow) {
		t.Fatalf("expected ErrFieldOverflow, got %v", err)
	}
}
