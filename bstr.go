// Package bytestring provides string-like primitives over arbitrary byte
// sequences, including sequences that are not valid UTF-8. BStr is a
// borrowed view over bytes owned elsewhere; BString owns a growable buffer.
// Both print, compare, and hash like ordinary strings while preserving the
// underlying bytes exactly.
package bytestring

import (
	"bytes"
	"unicode/utf8"
	"unsafe"

	"bytestring/hashing"
	"bytestring/utf8chunk"
)

// ReplacementChar is substituted by Display rendering for each undecodable
// byte run.
const ReplacementChar = '�'

// Bytes covers every operand that can be viewed as a run of bytes: byte
// slices, strings, and any named variant of either, which includes BStr
// itself.
type Bytes interface {
	~[]byte | ~string
}

// BStr is a string slice that tolerates arbitrary bytes.
//
// BStr is a named byte slice, so a BStr and the []byte it views are
// interchangeable by type conversion; neither direction copies. A view
// obtained from a []byte operand is writable and aliases the operand. A
// view obtained from a string operand must be treated as read-only.
type BStr []byte

// asBytes views any bytes-convertible operand as a byte slice without
// copying. The string header is a prefix of the slice header, so reading
// the operand through a string yields the data pointer and length for both
// representations. Views over string-backed operands must not be written
// through.
func asBytes[B Bytes](b B) []byte {
	s := *(*string)(unsafe.Pointer(&b))
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// New returns a view of the operand's bytes. The view aliases the operand;
// no bytes are copied.
func New[B Bytes](b B) BStr {
	return BStr(asBytes(b))
}

// Bytes returns the underlying byte run. The slice aliases the view.
func (s BStr) Bytes() []byte {
	return []byte(s)
}

// Len returns the number of bytes in the view.
func (s BStr) Len() int {
	return len(s)
}

// IsUTF8 reports whether the view holds valid UTF-8.
func (s BStr) IsUTF8() bool {
	return utf8.Valid(s)
}

// ToUTF8 returns the view's bytes as text when they decode as UTF-8. The
// returned string aliases the view without copying and must not be retained
// across writes to the underlying bytes. Otherwise a *UTF8Error locating
// the first invalid byte is returned.
func (s BStr) ToUTF8() (string, error) {
	if utf8.Valid(s) {
		b := []byte(s)
		return unsafe.String(unsafe.SliceData(b), len(b)), nil
	}
	return "", &UTF8Error{Offset: invalidOffset(s)}
}

// invalidOffset walks the chunk partition to the first undecodable byte.
// The input is known to contain one.
func invalidOffset(b []byte) int {
	off := 0
	it := utf8chunk.Iterate(b)
	for {
		c, ok := it.Next()
		if !ok {
			return off
		}
		off += len(c.Valid())
		if len(c.Invalid()) > 0 {
			return off
		}
	}
}

// Hash returns the digest of the raw bytes under the default hash.
func (s BStr) Hash() uint64 {
	return hashing.Sum(s)
}

// Compare orders two views byte-lexicographically, returning -1, 0, or 1.
func (s BStr) Compare(other BStr) int {
	return bytes.Compare(s, other)
}

// Equal reports whether two bytes-convertible operands hold identical byte
// sequences.
func Equal[A, B Bytes](a A, b B) bool {
	return bytes.Equal(asBytes(a), asBytes(b))
}

// Compare orders two bytes-convertible operands byte-lexicographically,
// returning -1, 0, or 1.
func Compare[A, B Bytes](a A, b B) int {
	return bytes.Compare(asBytes(a), asBytes(b))
}
