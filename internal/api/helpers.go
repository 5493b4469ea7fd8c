package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/calctools/tivar/pkg/ti83f"
)

func writeBadRequest(c *echo.Context, msg, kind string) error {
	return writeError(c, http.StatusBadRequest, msg, kind)
}

func writeError(c *echo.Context, status int, msg, kind string) error {
	return writeJSON(c, status, map[string]any{
		"error": ErrorDoc{Message: msg, Kind: kind},
	})
}

// errorKind maps codec sentinels to stable wire strings so clients can
// tell a bad checksum from a bad length without parsing messages.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ti83f.ErrUnknownFormat):
		return "unknown_format"
	case errors.Is(err, ti83f.ErrTruncatedEntry):
		return "truncated_entry"
	case errors.Is(err, ti83f.ErrTrailingLengthMismatch):
		return "trailing_length_mismatch"
	case errors.Is(err, ti83f.ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, ti83f.ErrMalformedDigit):
		return "malformed_digit"
	case errors.Is(err, ti83f.ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, ti83f.ErrChecksumMismatch):
		return "checksum_mismatch"
	case errors.Is(err, ti83f.ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, ti83f.ErrFieldOverflow):
		return "field_overflow"
	default:
		return "decode_error"
	}
}
