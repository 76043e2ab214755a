package packetbuf

import (
	"fmt"
	"math"
)

// Tag identifies one of the fixed-width primitive types. The values are the
// struct-format letters used by protocol documentation.
type Tag byte

const (
	TagInt8    Tag = 'b'
	TagUint8   Tag = 'B'
	TagBool    Tag = '?'
	TagInt16   Tag = 'h'
	TagUint16  Tag = 'H'
	TagInt32   Tag = 'i'
	TagUint32  Tag = 'I'
	TagInt64   Tag = 'q'
	TagUint64  Tag = 'Q'
	TagFloat32 Tag = 'f'
	TagFloat64 Tag = 'd'
)

// Size returns the encoded width of the tag in bytes, or 0 for an unknown tag.
func (t Tag) Size() int {
	switch t {
	case TagInt8, TagUint8, TagBool:
		return 1
	case TagInt16, TagUint16:
		return 2
	case TagInt32, TagUint32, TagFloat32:
		return 4
	case TagInt64, TagUint64, TagFloat64:
		return 8
	}
	return 0
}

// Valid reports whether t is one of the known fixed-width tags.
func (t Tag) Valid() bool { return t.Size() != 0 }

// String returns the tag letter, or Tag(0x..) for an unknown tag.
func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tag(%#02x)", byte(t))
	}
	return string(rune(t))
}

func (t Tag) signed() bool {
	switch t {
	case TagInt8, TagInt16, TagInt32, TagInt64:
		return true
	}
	return false
}

// bounds returns the signed range of a signed tag, or the unsigned maximum
// of an unsigned one.
func (t Tag) bounds() (lo, hi int64, umax uint64) {
	switch t {
	case TagInt8:
		return math.MinInt8, math.MaxInt8, 0
	case TagInt16:
		return math.MinInt16, math.MaxInt16, 0
	case TagInt32:
		return math.MinInt32, math.MaxInt32, 0
	case TagInt64:
		return math.MinInt64, math.MaxInt64, 0
	case TagUint8:
		return 0, 0, math.MaxUint8
	case TagUint16:
		return 0, 0, math.MaxUint16
	case TagUint32:
		return 0, 0, math.MaxUint32
	}
	return 0, 0, math.MaxUint64
}

// Pack encodes v with the fixed-width layout selected by tag. Integer tags
// accept any Go integer type as long as the value fits the tag's range.
func Pack(tag Tag, v any) ([]byte, error) {
	switch tag {
	case TagBool:
		bv, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %T for tag %s", ErrTypeMismatch, v, tag)
		}
		return PackBool(bv), nil
	case TagFloat32, TagFloat64:
		var f float64
		switch fv := v.(type) {
		case float32:
			f = float64(fv)
		case float64:
			f = fv
		default:
			return nil, fmt.Errorf("%w: %T for tag %s", ErrTypeMismatch, v, tag)
		}
		if tag == TagFloat64 {
			return PackFloat64(f), nil
		}
		if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
			return nil, fmt.Errorf("%w: %v does not fit in float32", ErrRange, f)
		}
		return PackFloat32(float32(f)), nil
	}

	if !tag.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}

	s, u, isSigned, ok := asInteger(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T for tag %s", ErrTypeMismatch, v, tag)
	}
	lo, hi, umax := tag.bounds()
	var fits bool
	switch {
	case tag.signed() && isSigned:
		fits = inRange(s, lo, hi)
	case tag.signed():
		fits = u <= uint64(hi)
	case isSigned:
		fits = s >= 0 && uint64(s) <= umax
	default:
		fits = u <= umax
	}
	if !fits {
		return nil, fmt.Errorf("%w: %v does not fit in tag %s", ErrRange, v, tag)
	}
	if isSigned {
		return putFixed(s, tag.Size()), nil
	}
	return putFixed(u, tag.Size()), nil
}

// Unpack decodes one value of the given tag at the cursor. The dynamic type
// of the result is the Go type matching the tag (int8 for TagInt8, bool for
// TagBool, float32 for TagFloat32, and so on).
func (b *Buffer) Unpack(tag Tag) (any, error) {
	switch tag {
	case TagInt8:
		return b.UnpackInt8()
	case TagUint8:
		return b.UnpackUint8()
	case TagBool:
		return b.UnpackBool()
	case TagInt16:
		return b.UnpackInt16()
	case TagUint16:
		return b.UnpackUint16()
	case TagInt32:
		return b.UnpackInt32()
	case TagUint32:
		return b.UnpackUint32()
	case TagInt64:
		return b.UnpackInt64()
	case TagUint64:
		return b.UnpackUint64()
	case TagFloat32:
		return b.UnpackFloat32()
	case TagFloat64:
		return b.UnpackFloat64()
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
}

func asInteger(v any) (s int64, u uint64, isSigned bool, ok bool) {
	switch n := v.(type) {
	case int:
		return int64(n), 0, true, true
	case int8:
		return int64(n), 0, true, true
	case int16:
		return int64(n), 0, true, true
	case int32:
		return int64(n), 0, true, true
	case int64:
		return n, 0, true, true
	case uint:
		return 0, uint64(n), false, true
	case uint8:
		return 0, uint64(n), false, true
	case uint16:
		return 0, uint64(n), false, true
	case uint32:
		return 0, uint64(n), false, true
	case uint64:
		return 0, n, false, true
	}
	return 0, 0, false, false
}
