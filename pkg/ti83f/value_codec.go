package ti83f

import (
	"encoding/binary"
	"fmt"
)

// decodeValue interprets payload according to the entry's type tag.
// It reads exactly len(payload) bytes or fails; nothing partial is
// ever returned. The payload slice is never retained: every variant
// copies what it keeps.
func decodeValue(t TypeID, payload []byte) (Value, error) {
	switch kindForType(t) {
	case KindReal:
		if len(payload) != RealSize {
			return Value{}, fmt.Errorf("%w: real payload is %d bytes, want %d", ErrLengthMismatch, len(payload), RealSize)
		}
		r, err := decodeReal(payload)
		if err != nil {
			return Value{}, err
		}
		return RealValue(r), nil

	case KindComplex:
		if len(payload) != ComplexSize {
			return Value{}, fmt.Errorf("%w: complex payload is %d bytes, want %d", ErrLengthMismatch, len(payload), ComplexSize)
		}
		c, err := decodeComplex(payload)
		if err != nil {
			return Value{}, err
		}
		return ComplexValue(c), nil

	case KindRealList:
		count, err := listCount(payload, RealSize)
		if err != nil {
			return Value{}, err
		}
		rs := make([]Real, count)
		for i := range rs {
			r, err := decodeReal(payload[2+i*RealSize:])
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			rs[i] = r
		}
		return RealListValue(rs), nil

	case KindComplexList:
		count, err := listCount(payload, ComplexSize)
		if err != nil {
			return Value{}, err
		}
		cs := make([]Complex, count)
		for i := range cs {
			c, err := decodeComplex(payload[2+i*ComplexSize:])
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			cs[i] = c
		}
		return ComplexListValue(cs), nil

	case KindMatrix:
		if len(payload) < 2 {
			return Value{}, fmt.Errorf("%w: matrix payload is %d bytes, want at least 2", ErrLengthMismatch, len(payload))
		}
		rows, cols := int(payload[0]), int(payload[1])
		if len(payload)-2 != rows*cols*RealSize {
			return Value{}, fmt.Errorf("%w: %dx%d matrix wants %d payload bytes, have %d",
				ErrLengthMismatch, rows, cols, 2+rows*cols*RealSize, len(payload))
		}
		cells := make([]Real, rows*cols)
		for i := range cells {
			r, err := decodeReal(payload[2+i*RealSize:])
			if err != nil {
				return Value{}, fmt.Errorf("cell %d: %w", i, err)
			}
			cells[i] = r
		}
		return MatrixValue(Matrix{Rows: rows, Cols: cols, Cells: cells}), nil

	case KindString:
		return StringValue(cloneBytes(payload)), nil

	case KindProgram:
		if len(payload) < 2 {
			return Value{}, fmt.Errorf("%w: program payload is %d bytes, want at least 2", ErrLengthMismatch, len(payload))
		}
		body := int(binary.LittleEndian.Uint16(payload))
		if body != len(payload)-2 {
			return Value{}, fmt.Errorf("%w: program body length %d does not match payload %d",
				ErrLengthMismatch, body, len(payload)-2)
		}
		return ProgramValue(cloneBytes(payload[2:])), nil

	default:
		return OpaqueValue(cloneBytes(payload)), nil
	}
}

// encodeValue appends the payload bytes for a value stored under the
// given tag. The value's variant must match the tag's class.
func encodeValue(dst []byte, t TypeID, v Value) ([]byte, error) {
	if want := kindForType(t); v.kind != want {
		return nil, fmt.Errorf("%w: tag %s stores %s values, have %s", ErrTypeMismatch, t, want, v.kind)
	}
	switch v.kind {
	case KindReal:
		return appendReal(dst, v.real), nil

	case KindComplex:
		return appendComplex(dst, v.cplx), nil

	case KindRealList:
		if len(v.reals) > 0xFFFF {
			return nil, fmt.Errorf("%w: list of %d elements", ErrFieldOverflow, len(v.reals))
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(len(v.reals)))
		for _, r := range v.reals {
			dst = appendReal(dst, r)
		}
		return dst, nil

	case KindComplexList:
		if len(v.cplxs) > 0xFFFF {
			return nil, fmt.Errorf("%w: list of %d elements", ErrFieldOverflow, len(v.cplxs))
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(len(v.cplxs)))
		for _, c := range v.cplxs {
			dst = appendComplex(dst, c)
		}
		return dst, nil

	case KindMatrix:
		m := v.matrix
		if m.Rows < 0 || m.Rows > 0xFF || m.Cols < 0 || m.Cols > 0xFF {
			return nil, fmt.Errorf("%w: %dx%d matrix", ErrFieldOverflow, m.Rows, m.Cols)
		}
		if len(m.Cells) != m.Rows*m.Cols {
			return nil, fmt.Errorf("%w: %dx%d matrix with %d cells", ErrLengthMismatch, m.Rows, m.Cols, len(m.Cells))
		}
		dst = append(dst, byte(m.Rows), byte(m.Cols))
		for _, r := range m.Cells {
			dst = appendReal(dst, r)
		}
		return dst, nil

	case KindString:
		return append(dst, v.payload...), nil

	case KindProgram:
		if len(v.payload) > 0xFFFF {
			return nil, fmt.Errorf("%w: program body of %d bytes", ErrFieldOverflow, len(v.payload))
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(len(v.payload)))
		return append(dst, v.payload...), nil

	default:
		return append(dst, v.payload...), nil
	}
}

// listCount validates a list payload's count prefix against its length.
func listCount(payload []byte, elemSize int) (int, error) {
	if len(payload) < 2 {
		return 0, fmt.Errorf("%w: list payload is %d bytes, want at least 2", ErrLengthMismatch, len(payload))
	}
	count := int(binary.LittleEndian.Uint16(payload))
	if len(payload)-2 != count*elemSize {
		return 0, fmt.Errorf("%w: %d elements of %d bytes want %d payload bytes, have %d",
			ErrLengthMismatch, count, elemSize, 2+count*elemSize, len(payload))
	}
	return count, nil
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return []byte{}
	}
	return append([]byte(nil), b...)
}
