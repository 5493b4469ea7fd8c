package ti83f

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// RealSize is the wire width of one real record: a flags byte, a
	// biased exponent byte and seven packed-decimal mantissa bytes.
	RealSize = 9

	mantissaBytes  = 7
	MantissaDigits = 2 * mantissaBytes

	exponentBias = 0x80
	flagNegative = 0x80
)

// Real is a calculator floating-point number: a 14-digit decimal mantissa
// with the radix point after the first digit, scaled by a decimal exponent.
//
// Flags carries the raw first byte of the record. Bit 7 is the sign;
// the calculator uses some of the remaining bits to mark complex
// components, and those survive a round-trip untouched.
type Real struct {
	Flags    byte
	Exponent int8
	Mantissa [mantissaBytes]byte
}

// NewReal builds a real from a sign, a decimal exponent and a digit
// string. Digits beyond the mantissa width are rejected, non-digit
// characters are rejected, and missing digits are zero-filled.
func NewReal(negative bool, exponent int8, digits string) (Real, error) {
	var r Real
	if negative {
		r.Flags = flagNegative
	}
	r.Exponent = exponent
	if len(digits) > MantissaDigits {
		return Real{}, fmt.Errorf("%w: %d digits exceed mantissa width %d", ErrFieldOverflow, len(digits), MantissaDigits)
	}
	for i := 0; i < len(digits); i++ {
		d := digits[i]
		if d < '0' || d > '9' {
			return Real{}, fmt.Errorf("%w: %q", ErrMalformedDigit, d)
		}
		r.setDigit(i, d-'0')
	}
	return r, nil
}

// Negative reports the sign bit.
func (r Real) Negative() bool {
	return r.Flags&flagNegative != 0
}

// Digit returns mantissa digit i, most significant first.
func (r Real) Digit(i int) byte {
	b := r.Mantissa[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

func (r *Real) setDigit(i int, d byte) {
	if i%2 == 0 {
		r.Mantissa[i/2] = r.Mantissa[i/2]&0x0F | d<<4
	} else {
		r.Mantissa[i/2] = r.Mantissa[i/2]&0xF0 | d
	}
}

// Digits returns the mantissa as a 14-character decimal string.
func (r Real) Digits() string {
	var sb strings.Builder
	sb.Grow(MantissaDigits)
	for i := 0; i < MantissaDigits; i++ {
		sb.WriteByte('0' + r.Digit(i))
	}
	return sb.String()
}

// IsZero reports whether every mantissa digit is zero.
func (r Real) IsZero() bool {
	for _, b := range r.Mantissa {
		if b != 0 {
			return false
		}
	}
	return true
}

// Float64 converts the value to the nearest float64.
func (r Real) Float64() float64 {
	var m uint64
	for i := 0; i < MantissaDigits; i++ {
		m = m*10 + uint64(r.Digit(i))
	}
	f := float64(m) / 1e13
	if r.Exponent != 0 {
		p, _ := strconv.ParseFloat("1e"+strconv.Itoa(int(r.Exponent)), 64)
		f *= p
	}
	if r.Negative() {
		f = -f
	}
	return f
}

// RealFromFloat64 converts a float64 to the calculator representation,
// rounding to 14 significant decimal digits.
func RealFromFloat64(f float64) (Real, error) {
	if f != f || f-f != 0 {
		return Real{}, fmt.Errorf("%w: non-finite value", ErrFieldOverflow)
	}
	if f == 0 {
		return Real{}, nil
	}
	s := strconv.FormatFloat(f, 'e', MantissaDigits-1, 64)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	mant, expStr, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return Real{}, fmt.Errorf("%w: exponent %q", ErrFieldOverflow, expStr)
	}
	// Calculators only display |exp| <= 99 but the biased byte holds more.
	if exp < -128 || exp > 127 {
		return Real{}, fmt.Errorf("%w: exponent %d out of range", ErrFieldOverflow, exp)
	}
	digits := strings.ReplaceAll(mant, ".", "")
	return NewReal(neg, int8(exp), digits)
}

// String renders the value in scientific notation, trimming trailing
// zero digits.
func (r Real) String() string {
	digits := strings.TrimRight(r.Digits(), "0")
	if digits == "" {
		digits = "0"
	}
	var sb strings.Builder
	if r.Negative() {
		sb.WriteByte('-')
	}
	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	if r.Exponent != 0 {
		sb.WriteByte('e')
		sb.WriteString(strconv.Itoa(int(r.Exponent)))
	}
	return sb.String()
}

// appendReal appends the 9-byte wire form.
func appendReal(dst []byte, r Real) []byte {
	dst = append(dst, r.Flags, byte(int(r.Exponent)+exponentBias))
	return append(dst, r.Mantissa[:]...)
}

// decodeReal decodes one 9-byte real record. Every mantissa nibble must
// be a decimal digit.
func decodeReal(b []byte) (Real, error) {
	if len(b) < RealSize {
		return Real{}, fmt.Errorf("%w: real record needs %d bytes, have %d", ErrLengthMismatch, RealSize, len(b))
	}
	var r Real
	r.Flags = b[0]
	r.Exponent = int8(int(b[1]) - exponentBias)
	copy(r.Mantissa[:], b[2:RealSize])
	for i := 0; i < MantissaDigits; i++ {
		if d := r.Digit(i); d > 9 {
			return Real{}, fmt.Errorf("%w: nibble %X at digit %d", ErrMalformedDigit, d, i)
		}
	}
	return r, nil
}

// ComplexSize is the wire width of a complex record: two real records.
const ComplexSize = 2 * RealSize

// Complex is a pair of reals, stored real part first.
type Complex struct {
	Re Real
	Im Real
}

func (c Complex) String() string {
	if c.Im.Negative() {
		im := c.Im
		im.Flags &^= flagNegative
		return c.Re.String() + "-" + im.String() + "i"
	}
	return c.Re.String() + "+" + c.Im.String() + "i"
}

func appendComplex(dst []byte, c Complex) []byte {
	dst = appendReal(dst, c.Re)
	return appendReal(dst, c.Im)
}

func decodeComplex(b []byte) (Complex, error) {
	if len(b) < ComplexSize {
		return Complex{}, fmt.Errorf("%w: complex record needs %d bytes, have %d", ErrLengthMismatch, ComplexSize, len(b))
	}
	re, err := decodeReal(b[:RealSize])
	if err != nil {
		return Complex{}, err
	}
	im, err := decodeReal(b[RealSize:ComplexSize])
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: im}, nil
}
