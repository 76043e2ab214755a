package packetbuf

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fixed-width packet header.
type mockHeader struct {
	Protocol uint16
	Flags    uint8
	Entity   int64
}

type mockCodec = Fixed[mockHeader]

func TestFixed_PackUnpack(t *testing.T) {
	c := &mockCodec{mockHeader{Protocol: 754, Flags: 0x03, Entity: -2}}

	b := New()
	require.NoError(t, c.PackTo(b))
	_, _ = b.Write(PackBool(true))

	assert.Equal(t, []byte{
		0x02, 0xF2, // Protocol
		0x03, // Flags
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE, // Entity
		0x01, // trailing bool
	}, b.Bytes())

	var out mockCodec
	require.NoError(t, out.UnpackFrom(b))
	assert.Equal(t, c.Payload, out.Payload)

	v, err := b.UnpackBool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestFixed_SizeCache(t *testing.T) {
	c := &mockCodec{mockHeader{Protocol: 1}}
	expectedSize := 11 // uint16(2) + uint8(1) + int64(8)

	// The first call populates the cache.
	assert.Equal(t, expectedSize, c.Size())
	// The second call hits the cache.
	assert.Equal(t, expectedSize, c.Size())

	// The cache is shared globally.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c2 := &mockCodec{mockHeader{Protocol: 2}}
			assert.Equal(t, expectedSize, c2.Size())
		}()
	}
	wg.Wait()
}

func TestFixed_Errors(t *testing.T) {
	t.Run("UnpackTruncated", func(t *testing.T) {
		c := &mockCodec{}
		valid, err := c.MarshalBinary()
		require.NoError(t, err)

		b := NewBuffer(valid[:len(valid)-1])
		assert.ErrorIs(t, c.UnpackFrom(b), ErrUnderflow)
		assert.Zero(t, b.Pos())
	})

	t.Run("UnmarshalWithTrailingData", func(t *testing.T) {
		c := &mockCodec{}
		valid, _ := c.MarshalBinary()
		trailing := append(valid, 0x01, 0x02, 0x03)

		err := c.UnmarshalBinary(trailing)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("DecodeFailureIsTypeMismatch", func(t *testing.T) {
		type staleHeader struct{ ID uint32 }
		// A cached size smaller than the real layout makes binary.Decode fail after ReadN.
		sizeCache.Store(reflect.TypeOf(staleHeader{}), 2)
		defer sizeCache.Delete(reflect.TypeOf(staleHeader{}))

		c := &Fixed[staleHeader]{}
		b := NewBuffer([]byte{0, 0, 0, 1})
		err := c.UnpackFrom(b)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.NotErrorIs(t, err, ErrUnderflow)
		assert.Zero(t, b.Pos())
	})

	t.Run("VariableWidthPayload", func(t *testing.T) {
		c := &Fixed[struct{ Name string }]{}
		assert.Equal(t, -1, c.Size())
		_, err := c.Pack()
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.ErrorIs(t, c.UnpackFrom(NewBuffer([]byte{1})), ErrTypeMismatch)
	})
}
