// Package utf8chunk splits a byte sequence into maximal alternating runs
// of valid UTF-8 and undecodable bytes.
package utf8chunk

import "unicode/utf8"

// Chunk

// Chunk is one (valid, invalid) pair of the partition. Valid is a run of
// bytes guaranteed to decode as UTF-8; Invalid is the contiguous run of
// bytes after it that the UTF-8 automaton rejects. Either run may be empty,
// but only the final chunk of a sequence has an empty Invalid.
type Chunk struct {
	valid   []byte
	invalid []byte
}

// Valid returns the decodable prefix of the chunk. The slice aliases the
// iterated bytes; it must not be mutated while the chunk is in use.
func (c Chunk) Valid() []byte {
	return c.valid
}

// Invalid returns the undecodable run following the valid prefix.
func (c Chunk) Invalid() []byte {
	return c.invalid
}

// Iter

// Iter walks a byte sequence chunk by chunk. It holds no state beyond the
// unconsumed tail, materializes one chunk at a time and is not restartable.
type Iter struct {
	rest []byte
}

// Iterate returns an iterator over the chunk partition of b. The
// concatenation of Valid and Invalid over all chunks, in order, reconstructs
// b exactly. An empty input yields no chunks.
func Iterate(b []byte) Iter {
	return Iter{rest: b}
}

// Next consumes and returns the next chunk. The second result is false once
// the input is exhausted.
func (it *Iter) Next() (Chunk, bool) {
	b := it.rest
	if len(b) == 0 {
		return Chunk{}, false
	}

	// Maximal valid prefix.
	i := 0
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		i += size
	}

	// Extend the invalid run until a position where a scalar decodes again.
	// A truncated sequence at the end of the input never re-synchronizes and
	// is consumed whole.
	j := i
	for j < len(b) {
		if b[j] < utf8.RuneSelf {
			break
		}
		if r, size := utf8.DecodeRune(b[j:]); r != utf8.RuneError || size > 1 {
			break
		}
		j++
	}

	it.rest = b[j:]
	return Chunk{valid: b[:i], invalid: b[i:j]}, true
}
