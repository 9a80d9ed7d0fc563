package bytestring

import (
	"bytes"
	"unicode/utf8"
)

// BString is an owned, growable byte sequence that tolerates arbitrary
// bytes. It is the owning counterpart of BStr: construction copies the
// operand into the buffer, mutators grow the buffer in place, and BStr
// projects a view over the current contents without copying.
//
// The zero value is an empty buffer ready for use. A BString is owned by
// one site at a time; it is not safe for concurrent mutation.
type BString struct {
	b []byte
}

// NewBString copies the operand's bytes into a fresh owned buffer.
func NewBString[B Bytes](b B) *BString {
	return &BString{b: bytes.Clone(asBytes(b))}
}

// BStr projects a view over the buffer's current contents. The view aliases
// the buffer; writes through the view are visible in the buffer. Any
// mutator that grows or truncates the buffer invalidates the view.
func (s *BString) BStr() BStr {
	return BStr(s.b)
}

// Bytes returns the buffer's current contents. The slice aliases the buffer
// under the same rule as BStr.
func (s *BString) Bytes() []byte {
	return s.b
}

// Len returns the number of bytes in the buffer.
func (s *BString) Len() int {
	return len(s.b)
}

// Cap returns the buffer's current capacity.
func (s *BString) Cap() int {
	return cap(s.b)
}

// Grow ensures space for n more bytes without reallocation. It panics if n
// is negative.
func (s *BString) Grow(n int) {
	if n < 0 {
		panic("bytestring: negative grow count")
	}
	if cap(s.b)-len(s.b) >= n {
		return
	}
	buf := make([]byte, len(s.b), len(s.b)+n)
	copy(buf, s.b)
	s.b = buf
}

// Append appends the given bytes to the buffer.
func (s *BString) Append(p []byte) {
	s.b = append(s.b, p...)
}

// AppendString appends the UTF-8 bytes of str to the buffer.
func (s *BString) AppendString(str string) {
	s.b = append(s.b, str...)
}

// AppendByte appends a single byte to the buffer.
func (s *BString) AppendByte(c byte) {
	s.b = append(s.b, c)
}

// AppendRune appends the UTF-8 encoding of r to the buffer.
func (s *BString) AppendRune(r rune) {
	s.b = utf8.AppendRune(s.b, r)
}

// Truncate discards all but the first n bytes. It panics if n is out of
// range.
func (s *BString) Truncate(n int) {
	if n < 0 || n > len(s.b) {
		panic("bytestring: truncation out of range")
	}
	s.b = s.b[:n]
}

// Reset empties the buffer, retaining its storage.
func (s *BString) Reset() {
	s.b = s.b[:0]
}

// Clone returns an independent copy of the buffer.
func (s *BString) Clone() *BString {
	return &BString{b: bytes.Clone(s.b)}
}

// IsUTF8 reports whether the buffer holds valid UTF-8.
func (s *BString) IsUTF8() bool {
	return utf8.Valid(s.b)
}

// ToUTF8 returns an owned text copy of the buffer when it decodes as UTF-8,
// or a *UTF8Error locating the first invalid byte.
func (s *BString) ToUTF8() (string, error) {
	if utf8.Valid(s.b) {
		return string(s.b), nil
	}
	return "", &UTF8Error{Offset: invalidOffset(s.b)}
}

// Hash returns the digest of the raw bytes under the default hash.
func (s *BString) Hash() uint64 {
	return s.BStr().Hash()
}

// Compare orders two buffers byte-lexicographically, returning -1, 0, or 1.
func (s *BString) Compare(other *BString) int {
	return bytes.Compare(s.b, other.b)
}

// EqualTo reports whether the buffer holds the same bytes as other.
func (s *BString) EqualTo(other *BString) bool {
	return bytes.Equal(s.b, other.b)
}
