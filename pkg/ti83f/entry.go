package ti83f

import (
	"encoding/binary"
	"fmt"
)

// FlagArchived marks an entry stored in flash archive rather than RAM.
const FlagArchived = 0x80

// Entry is one named variable inside a container.
//
// On the wire an entry is framed as
//
//	[len:2][tag:1][name:8][version:1][flags:1][payload:len][len':2]
//
// with both length fields little-endian and required to agree. The
// redundant trailing length is part of the format's integrity story and
// is recomputed, compared and never collapsed into the leading one.
type Entry struct {
	Type    TypeID
	Name    Name
	Version byte
	Flags   byte
	Value   Value
}

// Archived reports the flash-archive flag.
func (e Entry) Archived() bool {
	return e.Flags&FlagArchived != 0
}

// decodeEntry reads one entry starting at off and returns it together
// with the number of bytes consumed.
func decodeEntry(region []byte, off int) (Entry, int, error) {
	rest := region[off:]
	if len(rest) < entryHeaderSize {
		return Entry{}, 0, fmt.Errorf("%w: %d bytes left, entry header needs %d", ErrTruncatedEntry, len(rest), entryHeaderSize)
	}
	length := int(binary.LittleEndian.Uint16(rest))
	total := entryHeaderSize + length + entryTrailerSize
	if len(rest) < total {
		return Entry{}, 0, fmt.Errorf("%w: entry wants %d bytes, %d left in region", ErrTruncatedEntry, total, len(rest))
	}

	var e Entry
	e.Type = TypeID(rest[2])
	copy(e.Name[:], rest[3:3+NameSize])
	e.Version = rest[3+NameSize]
	e.Flags = rest[4+NameSize]

	if !e.Name.valid() {
		return Entry{}, 0, fmt.Errorf("%w: % X", ErrInvalidName, e.Name[:])
	}

	trailing := int(binary.LittleEndian.Uint16(rest[entryHeaderSize+length:]))
	if trailing != length {
		return Entry{}, 0, fmt.Errorf("%w: leading %d, trailing %d", ErrTrailingLengthMismatch, length, trailing)
	}

	v, err := decodeValue(e.Type, rest[entryHeaderSize:entryHeaderSize+length])
	if err != nil {
		return Entry{}, 0, fmt.Errorf("entry %s: %w", e.Name, err)
	}
	e.Value = v
	return e, total, nil
}

// appendEntry appends the wire form of an entry.
func appendEntry(dst []byte, e Entry) ([]byte, error) {
	if !e.Name.valid() {
		return nil, fmt.Errorf("%w: % X", ErrInvalidName, e.Name[:])
	}
	payload, err := encodeValue(nil, e.Type, e.Value)
	if err != nil {
		return nil, err
	}
	if len(payload) > 0xFFFF {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrFieldOverflow, len(payload))
	}

	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(payload)))
	dst = append(dst, byte(e.Type))
	dst = append(dst, e.Name[:]...)
	dst = append(dst, e.Version, e.Flags)
	dst = append(dst, payload...)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(payload)))
	return dst, nil
}
