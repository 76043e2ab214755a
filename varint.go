package packetbuf

import (
	"fmt"
	"math"
)

const (
	// MaxVarIntLen is the longest encoding of a 32-bit VarInt.
	MaxVarIntLen  = 5
	// MaxVarLongLen is the longest encoding of a 64-bit VarLong.
	MaxVarLongLen = 10

	segmentBits = 0x7F
	continueBit = 0x80
)

// PackVarInt encodes v as a VarInt: the two's-complement bit pattern of the
// 32-bit value, 7 bits per byte starting with the least significant group,
// high bit set while more bytes follow. Negative values always take 5 bytes.
// v must fit in an int32, otherwise ErrRange is returned and nothing is encoded.
func PackVarInt(v int64) ([]byte, error) {
	if !inRange(v, math.MinInt32, math.MaxInt32) {
		return nil, fmt.Errorf("%w: %d does not fit in a 32-bit signed integer", ErrRange, v)
	}
	return AppendVarInt(make([]byte, 0, MaxVarIntLen), int32(v)), nil
}

// AppendVarInt appends the VarInt encoding of v to dst.
func AppendVarInt(dst []byte, v int32) []byte {
	u := uint32(v)
	for u&^segmentBits != 0 {
		dst = append(dst, byte(u&segmentBits)|continueBit)
		u >>= 7
	}
	return append(dst, byte(u))
}

// VarIntSize returns the number of bytes PackVarInt produces for v.
func VarIntSize(v int32) int {
	u := uint32(v)
	n := 1
	for u >= continueBit {
		u >>= 7
		n++
	}
	return n
}

// UnpackVarInt decodes a VarInt at the cursor. It fails with ErrUnderflow if
// the data ends mid-value and ErrProtocol if no terminating byte appears
// within 5 bytes. On failure the cursor is left where the value started.
func (b *Buffer) UnpackVarInt() (int32, error) {
	start := b.pos
	var u uint32
	for i := 0; ; i++ {
		if i == MaxVarIntLen {
			b.seek(start)
			return 0, fmt.Errorf("%w: VarInt is too big", ErrProtocol)
		}
		c, err := b.ReadByte()
		if err != nil {
			b.seek(start)
			return 0, err
		}
		u |= uint32(c&segmentBits) << (7 * i)
		if c&continueBit == 0 {
			return int32(u), nil
		}
	}
}

// PackVarLong encodes v with the VarInt scheme over its 64-bit pattern.
func PackVarLong(v int64) []byte {
	return AppendVarLong(make([]byte, 0, MaxVarLongLen), v)
}

// AppendVarLong appends the VarLong encoding of v to dst.
func AppendVarLong(dst []byte, v int64) []byte {
	u := uint64(v)
	for u&^segmentBits != 0 {
		dst = append(dst, byte(u&segmentBits)|continueBit)
		u >>= 7
	}
	return append(dst, byte(u))
}

// UnpackVarLong decodes a VarLong at the cursor, at most 10 bytes.
func (b *Buffer) UnpackVarLong() (int64, error) {
	start := b.pos
	var u uint64
	for i := 0; ; i++ {
		if i == MaxVarLongLen {
			b.seek(start)
			return 0, fmt.Errorf("%w: VarLong is too big", ErrProtocol)
		}
		c, err := b.ReadByte()
		if err != nil {
			b.seek(start)
			return 0, err
		}
		u |= uint64(c&segmentBits) << (7 * i)
		if c&continueBit == 0 {
			return int64(u), nil
		}
	}
}

// PackOptionalVarInt encodes an integer-or-absent value without a flag byte:
// nil becomes VarInt(0) and any other value VarInt(*v + 1). ErrRange is
// returned when *v + 1 does not fit in an int32.
func PackOptionalVarInt(v *int64) ([]byte, error) {
	if v == nil {
		return []byte{0}, nil
	}
	if *v == math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d does not fit in a 32-bit signed integer", ErrRange, *v)
	}
	return PackVarInt(*v + 1)
}

// UnpackOptionalVarInt decodes a value written by PackOptionalVarInt,
// returning nil for absence.
func (b *Buffer) UnpackOptionalVarInt() (*int64, error) {
	v, err := b.UnpackVarInt()
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return nil, nil
	}
	return Ptr(int64(v) - 1), nil
}
