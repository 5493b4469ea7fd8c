package ti83f

import (
	"fmt"
	"strings"
)

// Name is the fixed-width variable name field, zero-padded on the right.
//
// Plain names are made of the calculator letter tokens A-Z and theta plus
// digits. System variables (lists, matrices, strings, equations, pictures,
// GDBs) instead start with a lead token followed by an index byte.
type Name [NameSize]byte

// Lead tokens for indexed system variables.
const (
	nameLeadMatrix   = 0x5C
	nameLeadList     = 0x5D
	nameLeadEquation = 0x5E
	nameLeadPicture  = 0x60
	nameLeadGDB      = 0x61
	nameLeadString   = 0xAA
	nameTheta        = 0x5B
)

// NameOf encodes a plain ASCII variable name. Lowercase letters are
// accepted and upcased, "theta" is not expressible here; build indexed
// names directly as byte arrays.
func NameOf(s string) (Name, error) {
	var n Name
	if len(s) == 0 {
		return n, fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if len(s) > NameSize {
		return n, fmt.Errorf("%w: name %q exceeds %d bytes", ErrFieldOverflow, s, NameSize)
	}
	up := strings.ToUpper(s)
	for i := 0; i < len(up); i++ {
		n[i] = up[i]
	}
	if !n.valid() {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return n, nil
}

// String renders the name for display. Theta becomes "θ", lead tokens
// become their class name plus index, anything unprintable is hex.
func (n Name) String() string {
	raw := n.trimmed()
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case nameLeadMatrix, nameLeadList, nameLeadEquation, nameLeadPicture, nameLeadGDB, nameLeadString:
		if len(raw) == 2 {
			return fmt.Sprintf("%s%d", leadClass(raw[0]), raw[1])
		}
	}
	var sb strings.Builder
	for _, b := range raw {
		switch {
		case b == nameTheta:
			sb.WriteRune('θ')
		case b >= 0x20 && b < 0x7F:
			sb.WriteByte(b)
		default:
			fmt.Fprintf(&sb, "\\x%02X", b)
		}
	}
	return sb.String()
}

func leadClass(b byte) string {
	switch b {
	case nameLeadMatrix:
		return "Mat"
	case nameLeadList:
		return "L"
	case nameLeadEquation:
		return "Y"
	case nameLeadPicture:
		return "Pic"
	case nameLeadGDB:
		return "GDB"
	case nameLeadString:
		return "Str"
	default:
		return fmt.Sprintf("0x%02X", b)
	}
}

// trimmed returns the name bytes up to the zero padding. Lead-token
// names keep their index byte even when it is zero (Str0, Pic0, ...).
func (n Name) trimmed() []byte {
	if isNameLead(n[0]) {
		return n[:2]
	}
	for i, b := range n {
		if b == 0 {
			return n[:i]
		}
	}
	return n[:]
}

func isNameLead(b byte) bool {
	switch b {
	case nameLeadMatrix, nameLeadList, nameLeadEquation, nameLeadPicture, nameLeadGDB, nameLeadString:
		return true
	}
	return false
}

// valid reports whether the bytes form a well-formed name: either a lead
// token plus index byte, or letters/theta/digits not starting with a
// digit. Padding must be contiguous zeros.
func (n Name) valid() bool {
	raw := n.trimmed()
	for _, b := range n[len(raw):] {
		if b != 0 {
			return false
		}
	}
	if len(raw) == 0 {
		return false
	}
	if isNameLead(raw[0]) {
		return len(raw) == 2
	}
	if raw[0] >= '0' && raw[0] <= '9' {
		return false
	}
	for _, b := range raw {
		switch {
		case b >= 'A' && b <= 'Z':
		case b == nameTheta:
		case b >= '0' && b <= '9':
		default:
			return false
		}
	}
	return true
}
