package net_structures

import (
	"encoding/binary"
	"io"
)

// Primitive type definitions for the Minecraft protocol.
// All multi-byte integers are big-endian unless otherwise specified.
//
// Every fixed-width numeric type below is a distinct named type over a
// builtin, but they all share the same wire shape: write/read N bytes
// big-endian. encoding/binary.Write/Read already know how to do that for
// any fixed-size type via reflection, so the per-type Encode/Decode pairs
// just delegate instead of hand-rolling a PutUintN/UintN call each.

// Boolean is a single byte (0x00 = false, 0x01 = true).
type Boolean bool

// Encode writes the Boolean to w.
func (v Boolean) Encode(w io.Writer) error {
	var b byte
	if v {
		b = 0x01
	}
	_, err := w.Write([]byte{b})
	return err
}

// DecodeBoolean reads a Boolean from r.
func DecodeBoolean(r io.Reader) (Boolean, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// Int8 is a signed 8-bit integer (-128 to 127).
type Int8 int8

// Encode writes the Int8 to w.
func (v Int8) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, int8(v))
}

// DecodeInt8 reads an Int8 from r.
func DecodeInt8(r io.Reader) (Int8, error) {
	var v int8
	err := binary.Read(r, binary.BigEndian, &v)
	return Int8(v), err
}

// Uint8 is an unsigned 8-bit integer (0 to 255).
type Uint8 uint8

// Encode writes the Uint8 to w.
func (v Uint8) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, uint8(v))
}

// DecodeUint8 reads a Uint8 from r.
func DecodeUint8(r io.Reader) (Uint8, error) {
	var v uint8
	err := binary.Read(r, binary.BigEndian, &v)
	return Uint8(v), err
}

// Int16 is a big-endian signed 16-bit integer.
type Int16 int16

// Encode writes the Int16 to w.
func (v Int16) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, int16(v))
}

// DecodeInt16 reads an Int16 from r.
func DecodeInt16(r io.Reader) (Int16, error) {
	var v int16
	err := binary.Read(r, binary.BigEndian, &v)
	return Int16(v), err
}

// Uint16 is a big-endian unsigned 16-bit integer.
type Uint16 uint16

// Encode writes the Uint16 to w.
func (v Uint16) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, uint16(v))
}

// DecodeUint16 reads a Uint16 from r.
func DecodeUint16(r io.Reader) (Uint16, error) {
	var v uint16
	err := binary.Read(r, binary.BigEndian, &v)
	return Uint16(v), err
}

// Int32 is a big-endian signed 32-bit integer.
type Int32 int32

// Encode writes the Int32 to w.
func (v Int32) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, int32(v))
}

// DecodeInt32 reads an Int32 from r.
func DecodeInt32(r io.Reader) (Int32, error) {
	var v int32
	err := binary.Read(r, binary.BigEndian, &v)
	return Int32(v), err
}

// Int64 is a big-endian signed 64-bit integer.
type Int64 int64

// Encode writes the Int64 to w.
func (v Int64) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, int64(v))
}

// DecodeInt64 reads an Int64 from r.
func DecodeInt64(r io.Reader) (Int64, error) {
	var v int64
	err := binary.Read(r, binary.BigEndian, &v)
	return Int64(v), err
}

// Float32 is a big-endian IEEE 754 single-precision float.
type Float32 float32

// Encode writes the Float32 to w.
func (v Float32) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, float32(v))
}

// DecodeFloat32 reads a Float32 from r.
func DecodeFloat32(r io.Reader) (Float32, error) {
	var v float32
	err := binary.Read(r, binary.BigEndian, &v)
	return Float32(v), err
}

// Float64 is a big-endian IEEE 754 double-precision float.
type Float64 float64

// Encode writes the Float64 to w.
func (v Float64) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, float64(v))
}

// DecodeFloat64 reads a Float64 from r.
func DecodeFloat64(r io.Reader) (Float64, error) {
	var v float64
	err := binary.Read(r, binary.BigEndian, &v)
	return Float64(v), err
}
