package ti83f

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

func testFile(t *testing.T) *File {
	t.Helper()
	nameA, _ := NameOf("A")
	namePrgm, _ := NameOf("FIB")
	return &File{
		Format:  FormatTI83F,
		Comment: NewComment("Exported by tivar", false),
		Entries: []Entry{
			{
				Type:  TypeReal,
				Name:  nameA,
				Value: RealValue(mustReal(t, true, 2, "314")),
			},
			{
				Type:    TypeProgram,
				Name:    namePrgm,
				Version: 0x0B,
				Flags:   FlagArchived,
				Value:   ProgramValue([]byte{0xDE, 0x2A, 0x46, 0x49, 0x42, 0x2A}),
			},
		},
	}
}

func TestContainerRoundTrip(t *testing.T) {
	t.Parallel()

	f := testFile(t)
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("**TI83F*\x1A\x0A\x00")) {
		t.Fatalf("signature: got % X", data[:SignatureSize])
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, f) {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, f)
	}

	// Encoding a decode of an encode must be byte-identical.
	again, err := got.Encode()
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(again, data) {
		t.Fatalf("re-encode not byte-identical")
	}
}

func TestDecodeRejectsUnknownSignature(t *testing.T) {
	t.Parallel()

	data, err := testFile(t).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data[2] = 'X'
	if _, err := Decode(data); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Decode(data[:4]); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("short input: expected ErrUnknownFormat, got %v", err)
	}
}

func TestDecodeChecksumMismatch(t *testing.T) {
	t.Parallel()

	data, err := testFile(t).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Flip one program body byte; the stored checksum goes stale. The
	// byte sits inside an opaque token stream so entry parsing still
	// succeeds and the checksum check must be the one that fires.
	data[len(data)-5] ^= 0x01
	if _, err := Decode(data); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestDecodeTruncatedRegion(t *testing.T) {
	t.Parallel()

	data, err := testFile(t).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Declare the region one byte short of the real entry bytes and drop
	// that byte so the overall file stays consistent. The final entry can
	// no longer be read in full.
	regionLen := binary.LittleEndian.Uint16(data[headerSize-2:])
	region := data[headerSize : headerSize+int(regionLen)-1]

	short := make([]byte, 0, len(data)-1)
	short = append(short, data[:headerSize-2]...)
	short = binary.LittleEndian.AppendUint16(short, regionLen-1)
	short = append(short, region...)
	short = binary.LittleEndian.AppendUint16(short, Checksum(region))

	if _, err := Decode(short); !errors.Is(err, ErrTruncatedEntry) {
		t.Fatalf("expected ErrTruncatedEntry, got %v", err)
	}
}

func TestDecodeRegionLargerThanFile(t *testing.T) {
	t.Parallel()

	data, err := testFile(t).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	binary.LittleEndian.PutUint16(data[headerSize-2:], 0xFFFF)
	if _, err := Decode(data); !errors.Is(err, ErrTruncatedEntry) {
		t.Fatalf("expected ErrTruncatedEntry, got %v", err)
	}
}

func TestDecodeTrailingGarbage(t *testing.T) {
	t.Parallel()

	data, err := testFile(t).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data = append(data, 0x00)
	if _, err := Decode(data); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestEncodeChecksumNeverStale(t *testing.T) {
	t.Parallel()

	f := testFile(t)
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	region := data[headerSize : len(data)-checksumSize]
	stored := binary.LittleEndian.Uint16(data[len(data)-checksumSize:])
	if stored != Checksum(region) {
		t.Fatalf("stored checksum 0x%04X does not match region sum 0x%04X", stored, Checksum(region))
	}
}

func TestFileEntryLookup(t *testing.T) {
	t.Parallel()

	f := testFile(t)
	name, _ := NameOf("FIB")
	e := f.Entry(name)
	if e == nil {
		t.Fatalf("entry FIB not found")
	}
	body, err := e.Value.AsProgramBytes()
	if err != nil {
		t.Fatalf("program bytes: %v", err)
	}
	if len(body) != 6 {
		t.Fatalf("program body: got %d bytes", len(body))
	}

	missing, _ := NameOf("NOPE")
	if f.Entry(missing) != nil {
		t.Fatalf("lookup of missing entry must return nil")
	}
}

func TestDecodeEmptyRegion(t *testing.T) {
	t.Parallel()

	f := &File{Format: FormatTI83, Comment: NewComment("", true)}
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Entries) != 0 || got.Format != FormatTI83 {
		t.Fatalf("empty container mismatch: %+v", got)
	}
}
