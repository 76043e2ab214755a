package packetbuf

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. Using a concurrent map makes it safe across goroutines.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed packs and unpacks any struct `Payload` composed only of fixed-width
// fields, field by field in network byte order, with no padding. It saves
// writing one Pack/Unpack call per field for headers like
// {Protocol uint16; Flags uint8; Entity int64}.
//
// Constraint: `Payload` MUST NOT contain slices, maps, strings or VarInts;
// Size reports -1 for such types and every operation fails with ErrTypeMismatch.
type Fixed[Payload any] struct {
	Payload Payload
}

// Size returns the encoded size of the payload in bytes.
// The result is cached per type to avoid reflection overhead on subsequent calls.
func (c *Fixed[Payload]) Size() int {
	bodyType := reflect.TypeOf((*Payload)(nil)).Elem()

	if size, ok := sizeCache.Load(bodyType); ok {
		return size
	}

	size := binary.Size(&c.Payload)
	sizeCache.Store(bodyType, size)
	return size
}

// Pack encodes the payload into a new byte slice.
func (c *Fixed[Payload]) Pack() ([]byte, error) {
	size := c.Size()
	if size < 0 {
		return nil, fmt.Errorf("%w: %T is not fixed-width", ErrTypeMismatch, c.Payload)
	}
	buf := make([]byte, size)
	if _, err := binary.Encode(buf, Order, &c.Payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return buf, nil
}

// PackTo appends the encoded payload to b.
func (c *Fixed[Payload]) PackTo(b *Buffer) error {
	p, err := c.Pack()
	if err != nil {
		return err
	}
	_, _ = b.Write(p)
	return nil
}

// UnpackFrom decodes the payload at the cursor of b, failing with
// ErrUnderflow when fewer than Size bytes remain.
func (c *Fixed[Payload]) UnpackFrom(b *Buffer) error {
	size := c.Size()
	if size < 0 {
		return fmt.Errorf("%w: %T is not fixed-width", ErrTypeMismatch, c.Payload)
	}
	start := b.pos
	p, err := b.ReadN(size)
	if err != nil {
		return err
	}
	if _, err := binary.Decode(p, Order, &c.Payload); err != nil {
		b.seek(start)
		return fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return nil
}

// MarshalBinary implements the standard `encoding.BinaryMarshaler` interface.
func (c *Fixed[Payload]) MarshalBinary() ([]byte, error) { return c.Pack() }

// UnmarshalBinary implements the standard `encoding.BinaryUnmarshaler` interface.
// Trailing bytes beyond Size are rejected with ErrTrailingData.
func (c *Fixed[Payload]) UnmarshalBinary(data []byte) error {
	b := NewBuffer(data)
	if err := c.UnpackFrom(b); err != nil {
		return err
	}
	if b.Remaining() > 0 {
		return fmt.Errorf("%w: %d bytes after payload", ErrTrailingData, b.Remaining())
	}
	return nil
}
