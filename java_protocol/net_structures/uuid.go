package net_structures

import (
	"encoding/binary"
	"fmt"
	"io"

	guuid "github.com/google/uuid"
)

// UUID is a 128-bit universally unique identifier, encoded on the wire
// as two big-endian 64-bit integers (most significant bits first).
// Parsing/formatting delegates to google/uuid rather than hand-rolling
// hyphen-stripping and hex decoding; only the wire layer (the 16 raw
// bytes, and the MSB/LSB split some packets address directly) is this
// package's own concern.
type UUID [16]byte

// NilUUID is the zero UUID (all zeros).
var NilUUID = UUID{}

// Encode writes the UUID to w.
func (u UUID) Encode(w io.Writer) error {
	_, err := w.Write(u[:])
	return err
}

// DecodeUUID reads a UUID from r.
func DecodeUUID(r io.Reader) (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice.
func UUIDFromBytes(b []byte) (UUID, error) {
	if len(b) != 16 {
		return UUID{}, fmt.Errorf("invalid UUID byte length: %d", len(b))
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// UUIDFromString parses a UUID from its string representation, hyphenated
// or not.
func UUIDFromString(s string) (UUID, error) {
	parsed, err := guuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID string: %w", err)
	}
	return UUID(parsed), nil
}

// String returns the UUID in standard hyphenated format.
func (u UUID) String() string {
	return guuid.UUID(u).String()
}

// MostSignificantBits returns the first 64 bits of the UUID.
func (u UUID) MostSignificantBits() int64 {
	return int64(binary.BigEndian.Uint64(u[0:8]))
}

// LeastSignificantBits returns the last 64 bits of the UUID.
func (u UUID) LeastSignificantBits() int64 {
	return int64(binary.BigEndian.Uint64(u[8:16]))
}

// UUIDFromInt64s creates a UUID from most and least significant bits.
func UUIDFromInt64s(msb, lsb int64) UUID {
	var u UUID
	binary.BigEndian.PutUint64(u[0:8], uint64(msb))
	binary.BigEndian.PutUint64(u[8:16], uint64(lsb))
	return u
}

// IsNil returns true if this is the nil UUID (all zeros).
func (u UUID) IsNil() bool {
	return u == NilUUID
}

// ValidateUUID reports whether s parses as a UUID, hyphenated or not.
func ValidateUUID(s string) bool {
	_, err := guuid.Parse(s)
	return err == nil
}
