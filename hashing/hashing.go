// Package hashing provides the byte hashing used by the byte-string
// primitives.
package hashing

import (
	"hash/crc32"
	"hash/fnv"
)

// HashFunc maps a byte run to a 64-bit digest.
type HashFunc func(data []byte) uint64

// Config

// Config selects the hash applied by Sum.
type Config struct {
	HashFunc HashFunc
}

// DefaultConfig hashes with 64-bit FNV-1a.
var DefaultConfig = &Config{
	HashFunc: FNV64a,
}

// FNV64a returns the 64-bit FNV-1a digest of data.
func FNV64a(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// CRC32 returns the IEEE CRC-32 checksum of data widened to 64 bits.
func CRC32(data []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(data))
}

// Sum digests data with the configured hash. Equal byte runs always hash
// equal.
func Sum(data []byte) uint64 {
	return DefaultConfig.HashFunc(data)
}
