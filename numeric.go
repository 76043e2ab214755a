package packetbuf

import "math"

// --- Fixed-width pack operations ---

// PackInt8 encodes v as 1 byte.
func PackInt8(v int8) []byte { return putFixed(v, 1) }

// PackUint8 encodes v as 1 byte.
func PackUint8(v uint8) []byte { return putFixed(v, 1) }

// PackInt16 encodes v as 2 big-endian bytes.
func PackInt16(v int16) []byte { return putFixed(v, 2) }

// PackUint16 encodes v as 2 big-endian bytes.
func PackUint16(v uint16) []byte { return putFixed(v, 2) }

// PackInt32 encodes v as 4 big-endian bytes.
func PackInt32(v int32) []byte { return putFixed(v, 4) }

// PackUint32 encodes v as 4 big-endian bytes.
func PackUint32(v uint32) []byte { return putFixed(v, 4) }

// PackInt64 encodes v as 8 big-endian bytes.
func PackInt64(v int64) []byte { return putFixed(v, 8) }

// PackUint64 encodes v as 8 big-endian bytes.
func PackUint64(v uint64) []byte { return putFixed(v, 8) }

// PackBool encodes v as a single byte, 0x01 or 0x00.
func PackBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// PackFloat32 encodes the IEEE 754 bits of v as 4 big-endian bytes.
func PackFloat32(v float32) []byte { return putFixed(math.Float32bits(v), 4) }

// PackFloat64 encodes the IEEE 754 bits of v as 8 big-endian bytes.
func PackFloat64(v float64) []byte { return putFixed(math.Float64bits(v), 8) }

// --- Fixed-width unpack operations ---
//
// Each fails with ErrUnderflow when too few bytes remain.

// UnpackInt8 reads 1 byte at the cursor.
func (b *Buffer) UnpackInt8() (int8, error) { return readFixed[int8](b, 1) }

// UnpackUint8 reads 1 byte at the cursor.
func (b *Buffer) UnpackUint8() (uint8, error) { return readFixed[uint8](b, 1) }

// UnpackInt16 reads 2 big-endian bytes at the cursor.
func (b *Buffer) UnpackInt16() (int16, error) { return readFixed[int16](b, 2) }

// UnpackUint16 reads 2 big-endian bytes at the cursor.
func (b *Buffer) UnpackUint16() (uint16, error) { return readFixed[uint16](b, 2) }

// UnpackInt32 reads 4 big-endian bytes at the cursor.
func (b *Buffer) UnpackInt32() (int32, error) { return readFixed[int32](b, 4) }

// UnpackUint32 reads 4 big-endian bytes at the cursor.
func (b *Buffer) UnpackUint32() (uint32, error) { return readFixed[uint32](b, 4) }

// UnpackInt64 reads 8 big-endian bytes at the cursor.
func (b *Buffer) UnpackInt64() (int64, error) { return readFixed[int64](b, 8) }

// UnpackUint64 reads 8 big-endian bytes at the cursor.
func (b *Buffer) UnpackUint64() (uint64, error) { return readFixed[uint64](b, 8) }

// UnpackBool reads one byte; any nonzero value is true.
func (b *Buffer) UnpackBool() (bool, error) {
	c, err := b.ReadByte()
	if err != nil {
		return false, err
	}
	return c != 0, nil
}

// UnpackFloat32 reads a 4-byte IEEE 754 value at the cursor.
func (b *Buffer) UnpackFloat32() (float32, error) {
	u, err := readFixed[uint32](b, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// UnpackFloat64 reads an 8-byte IEEE 754 value at the cursor.
func (b *Buffer) UnpackFloat64() (float64, error) {
	u, err := readFixed[uint64](b, 8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}
