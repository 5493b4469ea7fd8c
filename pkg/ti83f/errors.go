package ti83f

import "errors"

var (
	// ErrUnknownFormat is returned when the signature bytes match none of
	// the supported families.
	ErrUnknownFormat = errors.New("ti83f: unknown format signature")

	// ErrTruncatedEntry is returned when the declared entry region ends in
	// the middle of a variable entry, or the container itself is cut short.
	ErrTruncatedEntry = errors.New("ti83f: truncated entry")

	// ErrTrailingLengthMismatch is returned when an entry's two length
	// fields disagree.
	ErrTrailingLengthMismatch = errors.New("ti83f: trailing length mismatch")

	// ErrLengthMismatch is returned when a payload's declared element
	// counts do not account for its byte length.
	ErrLengthMismatch = errors.New("ti83f: payload length mismatch")

	// ErrMalformedDigit is returned when a packed-decimal nibble is
	// outside 0-9.
	ErrMalformedDigit = errors.New("ti83f: malformed packed-decimal digit")

	// ErrInvalidName is returned when an entry name contains bytes outside
	// the variable-name character set.
	ErrInvalidName = errors.New("ti83f: invalid variable name")

	// ErrChecksumMismatch is returned when the stored checksum does not
	// equal the sum of the entry-region bytes.
	ErrChecksumMismatch = errors.New("ti83f: checksum mismatch")

	// ErrTypeMismatch is returned by typed accessors when the stored
	// variant differs from the requested one, and on encode when a value's
	// kind does not fit the entry's type tag.
	ErrTypeMismatch = errors.New("ti83f: value type mismatch")

	// ErrFieldOverflow is returned on encode when a value does not fit its
	// fixed-width field.
	ErrFieldOverflow = errors.New("ti83f: field overflow")
)
