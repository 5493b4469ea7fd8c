// Package ti83f implements the TI-83/84 Plus link file format.
//
// A link file is the container a calculator (or emulator) produces when a
// variable is exported: an 11-byte signature, a 42-byte comment, a 16-bit
// length, a region of variable entries and a trailing 16-bit checksum over
// that region. The package decodes and encodes the container, the entry
// records inside it and the typed payloads the entries carry (reals,
// complex numbers, lists, matrices, strings and programs).
//
// Decoding and encoding are pure functions over in-memory buffers. A
// decoded File owns all of its data; the input buffer may be reused or
// unmapped as soon as Decode returns.
package ti83f

import "fmt"

// Fixed field widths shared by every supported signature family.
const (
	SignatureSize = 0x0B
	CommentSize   = 0x2A
	NameSize      = 8

	headerSize   = SignatureSize + CommentSize + 2
	checksumSize = 2

	// Entry framing: leading length, tag, name, version, flags ... trailing length.
	entryHeaderSize  = 2 + 1 + NameSize + 1 + 1
	entryTrailerSize = 2
)

// Format identifies the signature family of a container.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatTI82
	FormatTI83
	FormatTI83F
)

var signatures = map[Format][SignatureSize]byte{
	FormatTI82:  {'*', '*', 'T', 'I', '8', '2', '*', '*', 0x1A, 0x0A, 0x00},
	FormatTI83:  {'*', '*', 'T', 'I', '8', '3', '*', '*', 0x1A, 0x0A, 0x00},
	FormatTI83F: {'*', '*', 'T', 'I', '8', '3', 'F', '*', 0x1A, 0x0A, 0x00},
}

func (f Format) String() string {
	switch f {
	case FormatTI82:
		return "TI82"
	case FormatTI83:
		return "TI83"
	case FormatTI83F:
		return "TI83F"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Signature returns the 11 magic bytes for the format.
func (f Format) Signature() [SignatureSize]byte {
	return signatures[f]
}

func formatOf(sig []byte) Format {
	for f, want := range signatures {
		if len(sig) >= SignatureSize && string(sig[:SignatureSize]) == string(want[:]) {
			return f
		}
	}
	return FormatUnknown
}

// TypeID is the on-wire type tag of a variable entry.
type TypeID byte

const (
	TypeReal             TypeID = 0x00
	TypeRealList         TypeID = 0x01
	TypeMatrix           TypeID = 0x02
	TypeEquation         TypeID = 0x03
	TypeString           TypeID = 0x04
	TypeProgram          TypeID = 0x05
	TypeProtectedProgram TypeID = 0x06
	TypePicture          TypeID = 0x07
	TypeGDB              TypeID = 0x08
	TypeComplex          TypeID = 0x0C
	TypeComplexList      TypeID = 0x0D
	TypeApplication      TypeID = 0x14
	TypeAppVar           TypeID = 0x15
	TypeGroup            TypeID = 0x17
)

func (t TypeID) String() string {
	switch t {
	case TypeReal:
		return "real"
	case TypeRealList:
		return "list"
	case TypeMatrix:
		return "matrix"
	case TypeEquation:
		return "equation"
	case TypeString:
		return "string"
	case TypeProgram:
		return "program"
	case TypeProtectedProgram:
		return "protected-program"
	case TypePicture:
		return "picture"
	case TypeGDB:
		return "gdb"
	case TypeComplex:
		return "complex"
	case TypeComplexList:
		return "complex-list"
	case TypeApplication:
		return "application"
	case TypeAppVar:
		return "appvar"
	case TypeGroup:
		return "group"
	default:
		return fmt.Sprintf("type(0x%02X)", byte(t))
	}
}
