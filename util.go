package packetbuf

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every fixed-width value on the wire (network order).
var Order binary.ByteOrder = binary.BigEndian

func Ptr[T any](v T) *T { return &v } // Ptr makes optional values and test setup cleaner.

// putFixed encodes the low size bytes of v in Order.
func putFixed[T constraints.Integer](v T, size int) []byte {
	p := make([]byte, size)
	u := uint64(v)
	switch size {
	case 1:
		p[0] = byte(u)
	case 2:
		Order.PutUint16(p, uint16(u))
	case 4:
		Order.PutUint32(p, uint32(u))
	case 8:
		Order.PutUint64(p, u)
	}
	return p
}

// readFixed decodes size bytes at the cursor in Order.
func readFixed[T constraints.Integer](b *Buffer, size int) (T, error) {
	p, err := b.ReadN(size)
	if err != nil {
		return 0, err
	}
	switch size {
	case 1:
		return T(p[0]), nil
	case 2:
		return T(Order.Uint16(p)), nil
	case 4:
		return T(Order.Uint32(p)), nil
	default:
		return T(Order.Uint64(p)), nil
	}
}

// inRange reports whether v lies in [lo, hi].
func inRange[T constraints.Ordered](v, lo, hi T) bool { return v >= lo && v <= hi }
