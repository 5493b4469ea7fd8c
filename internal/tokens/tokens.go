// Package tokens renders TI-83/84 Plus token streams as text.
//
// Program and string variables store tokenized TI-Basic: most tokens are
// one byte, a handful of lead bytes start two-byte tokens. The codec
// keeps those bytes opaque; this package exists so inspection tooling
// can show something readable. Rendering is lossy display only, never a
// parse, and unknown tokens fall back to a hex escape.
package tokens

import (
	"fmt"
	"strings"
)

// Two-byte token lead bytes.
const (
	leadMatrix   = 0x5C
	leadList     = 0x5D
	leadEquation = 0x5E
	leadPicture  = 0x60
	leadGDB      = 0x61
	leadStatVar  = 0x62
	leadWindow   = 0x63
	leadFormat   = 0x7E
	leadString   = 0xAA
	leadMisc     = 0xBB
	leadTI84     = 0xEF
)

var single = map[byte]string{
	0x01: "►DMS", 0x02: "►Dec", 0x03: "►Frac", 0x04: "→",
	0x06: "[", 0x07: "]", 0x08: "{", 0x09: "}",
	0x0B: "°", 0x0C: "⁻¹", 0x0D: "²", 0x0E: "ᵀ", 0x0F: "³",
	0x10: "(", 0x11: ")",
	0x12: "round(", 0x13: "pxl-Test(", 0x14: "augment(",
	0x19: "max(", 0x1A: "min(", 0x1F: "median(",
	0x21: "mean(", 0x22: "solve(", 0x23: "seq(",
	0x24: "fnInt(", 0x25: "nDeriv(",
	0x29: " ", 0x2A: "\"", 0x2B: ",", 0x2C: "i", 0x2D: "!",
	0x3A: ".", 0x3B: "ᴇ",
	0x3C: " or ", 0x3D: " xor ", 0x3E: ":", 0x3F: "\n",
	0x40: " and ",
	0x5B: "θ",
	0x64: "Radian", 0x65: "Degree", 0x66: "Normal", 0x67: "Sci",
	0x68: "Eng", 0x69: "Float",
	0x6A: "=", 0x6B: "<", 0x6C: ">", 0x6D: "≤", 0x6E: "≥", 0x6F: "≠",
	0x70: "+", 0x71: "-", 0x72: "Ans", 0x73: "Fix ",
	0x82: "*", 0x83: "/",
	0x85: "ClrDraw", 0x93: "Text(",
	0x94: " nPr ", 0x95: " nCr ",
	0x9C: "Line(", 0x9E: "Pt-On(", 0x9F: "Pt-Off(",
	0xA1: "Pxl-On(", 0xA2: "Pxl-Off(", 0xA5: "Circle(",
	0xAB: "rand", 0xAC: "π", 0xAD: "getKey", 0xAE: "'", 0xAF: "?",
	0xB0: "⁻", 0xB1: "int(", 0xB2: "abs(", 0xB3: "det(",
	0xB4: "identity(", 0xB5: "dim(", 0xB6: "sum(", 0xB7: "prod(",
	0xB8: "not(", 0xB9: "iPart(", 0xBA: "fPart(",
	0xBC: "√(", 0xBD: "³√(", 0xBE: "ln(", 0xBF: "e^(",
	0xC0: "log(", 0xC1: "10^(",
	0xC2: "sin(", 0xC3: "sin⁻¹(", 0xC4: "cos(", 0xC5: "cos⁻¹(",
	0xC6: "tan(", 0xC7: "tan⁻¹(",
	0xC8: "sinh(", 0xC9: "sinh⁻¹(", 0xCA: "cosh(", 0xCB: "cosh⁻¹(",
	0xCC: "tanh(", 0xCD: "tanh⁻¹(",
	0xCE: "If ", 0xCF: "Then", 0xD0: "Else", 0xD1: "While ",
	0xD2: "Repeat ", 0xD3: "For(", 0xD4: "End", 0xD5: "Return",
	0xD6: "Lbl ", 0xD7: "Goto ", 0xD8: "Pause ", 0xD9: "Stop",
	0xDA: "IS>(", 0xDB: "DS<(",
	0xDC: "Input ", 0xDD: "Prompt ", 0xDE: "Disp ", 0xDF: "DispGraph",
	0xE0: "Output(", 0xE1: "ClrHome", 0xE2: "Fill(",
	0xE3: "SortA(", 0xE4: "SortD(", 0xE5: "DispTable", 0xE6: "Menu(",
	0xE7: "Send(", 0xE8: "Get(",
	0xEB: "∟",
	0xF0: "^", 0xF1: "ˣ√",
}

var miscTwo = map[byte]string{
	0x0A: "randInt(", 0x0B: "randBin(", 0x0C: "sub(", 0x0D: "stdDev(",
	0x0E: "variance(", 0x0F: "inString(", 0x10: "normalcdf(",
	0x25: "conj(", 0x26: "real(", 0x27: "imag(", 0x28: "angle(",
	0x29: "cumSum(", 0x2A: "expr(", 0x2B: "length(", 0x2C: "ΔList(",
	0x2D: "ref(", 0x2E: "rref(", 0x31: "logBASE(",
	0x52: "randNorm(",
}

// Detokenize renders a token stream. Unknown one-byte tokens appear as
// [NN] and unknown two-byte tokens as [NNMM].
func Detokenize(body []byte) string {
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		b := body[i]
		switch {
		case b >= '0' && b <= '9', b >= 'A' && b <= 'Z':
			sb.WriteByte(b)
		case isLead(b) && i+1 < len(body):
			i++
			sb.WriteString(twoByte(b, body[i]))
		default:
			if s, ok := single[b]; ok {
				sb.WriteString(s)
			} else {
				fmt.Fprintf(&sb, "[%02X]", b)
			}
		}
	}
	return sb.String()
}

func isLead(b byte) bool {
	switch b {
	case leadMatrix, leadList, leadEquation, leadPicture, leadGDB,
		leadStatVar, leadWindow, leadFormat, leadString, leadMisc, leadTI84:
		return true
	}
	return false
}

func twoByte(lead, idx byte) string {
	switch lead {
	case leadMatrix:
		if idx <= 9 {
			return fmt.Sprintf("[%c]", 'A'+idx)
		}
	case leadList:
		if idx <= 5 {
			return fmt.Sprintf("L%d", idx+1)
		}
	case leadEquation:
		// Function equations Y1-Y9, Y0.
		if idx >= 0x10 && idx <= 0x19 {
			return fmt.Sprintf("Y%d", (idx-0x0F)%10)
		}
	case leadPicture:
		return fmt.Sprintf("Pic%d", (idx+1)%10)
	case leadGDB:
		return fmt.Sprintf("GDB%d", (idx+1)%10)
	case leadString:
		return fmt.Sprintf("Str%d", (idx+1)%10)
	case leadMisc:
		if s, ok := miscTwo[idx]; ok {
			return s
		}
	}
	return fmt.Sprintf("[%02X%02X]", lead, idx)
}
