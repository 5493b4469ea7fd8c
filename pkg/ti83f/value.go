package ti83f

import "fmt"

// Kind discriminates the closed set of decoded value variants.
type Kind uint8

const (
	KindReal Kind = iota + 1
	KindComplex
	KindRealList
	KindComplexList
	KindMatrix
	KindString
	KindProgram
	KindRawOpaque
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	case KindRealList:
		return "real-list"
	case KindComplexList:
		return "complex-list"
	case KindMatrix:
		return "matrix"
	case KindString:
		return "string"
	case KindProgram:
		return "program"
	case KindRawOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Matrix is a row-major grid of reals.
type Matrix struct {
	Rows  int
	Cols  int
	Cells []Real
}

// At returns the cell at row r, column c.
func (m Matrix) At(r, c int) Real {
	return m.Cells[r*m.Cols+c]
}

// Value is the decoded payload of a variable entry: exactly one of the
// variants is populated, selected by Kind. Values are built through the
// constructors and read through the typed accessors; an accessor for the
// wrong variant reports ErrTypeMismatch.
type Value struct {
	kind Kind

	real    Real
	cplx    Complex
	reals   []Real
	cplxs   []Complex
	matrix  Matrix
	payload []byte // string bytes, program body or opaque payload
}

func RealValue(r Real) Value           { return Value{kind: KindReal, real: r} }
func ComplexValue(c Complex) Value     { return Value{kind: KindComplex, cplx: c} }
func RealListValue(rs []Real) Value    { return Value{kind: KindRealList, reals: rs} }
func ComplexListValue(cs []Complex) Value {
	return Value{kind: KindComplexList, cplxs: cs}
}
func MatrixValue(m Matrix) Value { return Value{kind: KindMatrix, matrix: m} }

// StringValue holds raw bytes in the calculator character set.
func StringValue(b []byte) Value { return Value{kind: KindString, payload: b} }

// ProgramValue holds the tokenized program body. The bytes are carried
// verbatim; tokenization is a consumer concern.
func ProgramValue(body []byte) Value { return Value{kind: KindProgram, payload: body} }

// OpaqueValue preserves an uninterpreted payload byte-for-byte.
func OpaqueValue(raw []byte) Value { return Value{kind: KindRawOpaque, payload: raw} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, want)
}

func (v Value) AsReal() (Real, error) {
	if v.kind != KindReal {
		return Real{}, v.mismatch(KindReal)
	}
	return v.real, nil
}

func (v Value) AsComplex() (Complex, error) {
	if v.kind != KindComplex {
		return Complex{}, v.mismatch(KindComplex)
	}
	return v.cplx, nil
}

func (v Value) AsRealList() ([]Real, error) {
	if v.kind != KindRealList {
		return nil, v.mismatch(KindRealList)
	}
	return v.reals, nil
}

func (v Value) AsComplexList() ([]Complex, error) {
	if v.kind != KindComplexList {
		return nil, v.mismatch(KindComplexList)
	}
	return v.cplxs, nil
}

func (v Value) AsMatrix() (Matrix, error) {
	if v.kind != KindMatrix {
		return Matrix{}, v.mismatch(KindMatrix)
	}
	return v.matrix, nil
}

func (v Value) AsStringBytes() ([]byte, error) {
	if v.kind != KindString {
		return nil, v.mismatch(KindString)
	}
	return v.payload, nil
}

func (v Value) AsProgramBytes() ([]byte, error) {
	if v.kind != KindProgram {
		return nil, v.mismatch(KindProgram)
	}
	return v.payload, nil
}

func (v Value) AsOpaqueBytes() ([]byte, error) {
	if v.kind != KindRawOpaque {
		return nil, v.mismatch(KindRawOpaque)
	}
	return v.payload, nil
}

// kindForType maps a wire type tag to the value variant it decodes into.
// Unrecognized tags, and tag classes this package does not interpret
// (pictures, GDBs, apps, appvars, groups), map to KindRawOpaque.
func kindForType(t TypeID) Kind {
	switch t {
	case TypeReal:
		return KindReal
	case TypeComplex:
		return KindComplex
	case TypeRealList:
		return KindRealList
	case TypeComplexList:
		return KindComplexList
	case TypeMatrix:
		return KindMatrix
	case TypeString, TypeEquation:
		return KindString
	case TypeProgram, TypeProtectedProgram:
		return KindProgram
	default:
		return KindRawOpaque
	}
}
