package bytestring

import "fmt"

// UTF8Error reports the first undecodable byte found by a try-decode
// operation.
type UTF8Error struct {
	// Offset is the index of the first byte that does not decode.
	Offset int
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte offset %d", e.Offset)
}
