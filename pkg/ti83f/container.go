package ti83f

import (
	"encoding/binary"
	"fmt"
)

// File is a decoded container: the signature family, the comment field
// and the ordered variable entries. The data-length and checksum fields
// exist only on the wire; Encode recomputes both so a caller can never
// ship a stale checksum.
type File struct {
	Format  Format
	Comment Comment
	Entries []Entry
}

// Decode parses a complete container from data. The first error halts
// decoding; there is no partial result for truncated or corrupt input.
func Decode(data []byte) (*File, error) {
	if len(data) < SignatureSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a signature", ErrUnknownFormat, len(data))
	}
	format := formatOf(data)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: % X", ErrUnknownFormat, data[:SignatureSize])
	}
	if len(data) < headerSize+checksumSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a header and checksum", ErrTruncatedEntry, len(data))
	}

	f := &File{Format: format}
	copy(f.Comment[:], data[SignatureSize:SignatureSize+CommentSize])

	regionLen := int(binary.LittleEndian.Uint16(data[headerSize-2:]))
	if headerSize+regionLen+checksumSize > len(data) {
		return nil, fmt.Errorf("%w: declared region of %d bytes exceeds file", ErrTruncatedEntry, regionLen)
	}
	if headerSize+regionLen+checksumSize < len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after checksum",
			ErrLengthMismatch, len(data)-headerSize-regionLen-checksumSize)
	}
	region := data[headerSize : headerSize+regionLen]

	for off := 0; off < regionLen; {
		e, n, err := decodeEntry(region, off)
		if err != nil {
			return nil, err
		}
		f.Entries = append(f.Entries, e)
		off += n
	}

	want := binary.LittleEndian.Uint16(data[headerSize+regionLen:])
	if !VerifyChecksum(region, want) {
		return nil, fmt.Errorf("%w: stored 0x%04X, computed 0x%04X", ErrChecksumMismatch, want, Checksum(region))
	}
	return f, nil
}

// Encode serializes the container. Entries are written in stored order;
// the data length and checksum are computed from the serialized region.
func (f *File) Encode() ([]byte, error) {
	if f.Format == FormatUnknown {
		return nil, fmt.Errorf("%w: file has no format", ErrUnknownFormat)
	}

	var region []byte
	for i, e := range f.Entries {
		var err error
		region, err = appendEntry(region, e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	if len(region) > 0xFFFF {
		return nil, fmt.Errorf("%w: entry region of %d bytes", ErrFieldOverflow, len(region))
	}

	out := make([]byte, 0, headerSize+len(region)+checksumSize)
	sig := f.Format.Signature()
	out = append(out, sig[:]...)
	out = append(out, f.Comment[:]...)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(region)))
	out = append(out, region...)
	out = binary.LittleEndian.AppendUint16(out, Checksum(region))
	return out, nil
}

// Entry returns the first entry with the given name, or nil.
func (f *File) Entry(name Name) *Entry {
	for i := range f.Entries {
		if f.Entries[i].Name == name {
			return &f.Entries[i]
		}
	}
	return nil
}
