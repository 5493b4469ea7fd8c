package ti83f

import (
	"errors"
	"math"
	"testing"
)

func TestRealRoundTrip(t *testing.T) {
	t.Parallel()

	r, err := NewReal(true, 2, "314")
	if err != nil {
		t.Fatalf("new real: %v", err)
	}
	wire := appendReal(nil, r)
	if len(wire) != RealSize {
		t.Fatalf("wire size: got %d want %d", len(wire), RealSize)
	}
	if wire[0] != 0x80 {
		t.Fatalf("flags byte: got 0x%02X want 0x80", wire[0])
	}
	if wire[1] != 0x82 {
		t.Fatalf("biased exponent: got 0x%02X want 0x82", wire[1])
	}
	if wire[2] != 0x31 || wire[3] != 0x40 {
		t.Fatalf("packed mantissa: got % X", wire[2:4])
	}

	got, err := decodeReal(wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != r {
		t.Fatalf("round-trip mismatch: got %+v want %+v", got, r)
	}
	if !got.Negative() || got.Exponent != 2 {
		t.Fatalf("sign/exponent: got neg=%v exp=%d", got.Negative(), got.Exponent)
	}
	if got.Digits()[:3] != "314" {
		t.Fatalf("digits: got %q", got.Digits())
	}
}

func TestDecodeRealRejectsMalformedNibble(t *testing.T) {
	t.Parallel()

	wire := []byte{0x00, 0x80, 0xA1, 0, 0, 0, 0, 0, 0}
	if _, err := decodeReal(wire); !errors.Is(err, ErrMalformedDigit) {
		t.Fatalf("expected ErrMalformedDigit, got %v", err)
	}
}

func TestNewRealRejectsBadDigits(t *testing.T) {
	t.Parallel()

	if _, err := NewReal(false, 0, "31x"); !errors.Is(err, ErrMalformedDigit) {
		t.Fatalf("expected ErrMalformedDigit, got %v", err)
	}
	if _, err := NewReal(false, 0, "123456789012345"); !errors.Is(err, ErrFieldOverflow) {
		t.Fatalf("expected ErrFieldOverflow, got %v", err)
	}
}

func TestRealFloat64(t *testing.T) {
	t.Parallel()

	cases := []struct {
		negative bool
		exponent int8
		digits   string
		want     float64
	}{
		{false, 0, "5", 5},
		{true, 2, "314", -314},
		{false, -2, "25", 0.025},
		{false, 0, "", 0},
	}
	for _, tc := range cases {
		r, err := NewReal(tc.negative, tc.exponent, tc.digits)
		if err != nil {
			t.Fatalf("new real %q: %v", tc.digits, err)
		}
		if got := r.Float64(); math.Abs(got-tc.want) > 1e-9*math.Abs(tc.want) {
			t.Fatalf("float64 of %q e%d: got %g want %g", tc.digits, tc.exponent, got, tc.want)
		}
	}
}

func TestRealFromFloat64RoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{0, 1, -1, 3.14, -314, 0.025, 1.25e10} {
		r, err := RealFromFloat64(f)
		if err != nil {
			t.Fatalf("from float %g: %v", f, err)
		}
		if got := r.Float64(); math.Abs(got-f) > 1e-12*math.Abs(f) {
			t.Fatalf("round-trip %g: got %g", f, got)
		}
	}
	if _, err := RealFromFloat64(math.Inf(1)); !errors.Is(err, ErrFieldOverflow) {
		t.Fatalf("expected ErrFieldOverflow for +Inf, got %v", err)
	}
	if _, err := RealFromFloat64(math.NaN()); !errors.Is(err, ErrFieldOverflow) {
		t.Fatalf("expected ErrFieldOverflow for NaN, got %v", err)
	}
}

func TestRealString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		negative bool
		exponent int8
		digits   string
		want     string
	}{
		{false, 0, "5", "5"},
		{true, 2, "314", "-3.14e2"},
		{false, -1, "5", "5e-1"},
		{false, 0, "", "0"},
	}
	for _, tc := range cases {
		r, err := NewReal(tc.negative, tc.exponent, tc.digits)
		if err != nil {
			t.Fatalf("new real: %v", err)
		}
		if got := r.String(); got != tc.want {
			t.Fatalf("string: got %q want %q", got, tc.want)
		}
	}
}

func TestComplexRoundTrip(t *testing.T) {
	t.Parallel()

	re, _ := NewReal(false, 0, "1")
	im, _ := NewReal(true, 0, "2")
	c := Complex{Re: re, Im: im}

	wire := appendComplex(nil, c)
	if len(wire) != ComplexSize {
		t.Fatalf("wire size: got %d want %d", len(wire), ComplexSize)
	}
	got, err := decodeComplex(wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != c {
		t.Fatalf("round-trip mismatch: got %+v want %+v", got, c)
	}
	if s := c.String(); s != "1-2i" {
		t.Fatalf("string: got %q want %q", s, "1-2i")
	}
}
