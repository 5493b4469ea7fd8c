package ti83f

import "bytes"

// Comment is the fixed 42-byte text field following the signature. The
// calculator leaves it empty; tooling writes free-form text, either
// zero-terminated or right-padded with spaces. The raw bytes round-trip
// untouched.
type Comment [CommentSize]byte

// NewComment stores a string, truncating to the field width. The
// remainder is zero-terminated when zeroTerminated is set and
// space-padded otherwise.
func NewComment(s string, zeroTerminated bool) Comment {
	var c Comment
	n := copy(c[:], s)
	for i := n; i < CommentSize; i++ {
		if zeroTerminated {
			c[i] = 0
		} else {
			c[i] = ' '
		}
	}
	return c
}

// String returns the comment text without terminator or space padding.
func (c Comment) String() string {
	if i := bytes.IndexByte(c[:], 0); i >= 0 {
		return string(c[:i])
	}
	return string(bytes.TrimRight(c[:], " "))
}

// Len returns the text length, ignoring terminator and padding.
func (c Comment) Len() int {
	if i := bytes.IndexByte(c[:], 0); i >= 0 {
		return i
	}
	return CommentSize - trailingSpaces(c[:])
}

// ZeroTerminated reports whether the field contains a zero byte. A
// comment that fills the whole field is padded by definition.
func (c Comment) ZeroTerminated() bool {
	return bytes.IndexByte(c[:], 0) >= 0
}

// MakeZeroTerminated rewrites space padding into a zero terminator. A
// full-width comment has no room for one and is left alone.
func (c *Comment) MakeZeroTerminated() {
	if c.ZeroTerminated() {
		return
	}
	pad := trailingSpaces(c[:])
	if pad == 0 {
		return
	}
	c[CommentSize-pad] = 0
}

// MakePadded rewrites a zero terminator and everything after it into
// space padding.
func (c *Comment) MakePadded() {
	i := bytes.IndexByte(c[:], 0)
	if i < 0 {
		return
	}
	for ; i < CommentSize; i++ {
		c[i] = ' '
	}
}

func trailingSpaces(b []byte) int {
	n := 0
	for i := len(b) - 1; i >= 0 && b[i] == ' '; i-- {
		n++
	}
	return n
}
