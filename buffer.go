package packetbuf

import (
	"fmt"
	"io"
)

// Buffer is a growable byte sequence with a read cursor.
//
// Writes always append at the end and never move the cursor. Reads start at the
// cursor, are bounds-checked against the remaining bytes and advance it.
// A Buffer is meant to be owned by a single goroutine for the lifetime of one
// packet; it is not safe for concurrent use.
type Buffer struct {
	data   []byte // written bytes
	pos    int    // current read position, 0 <= pos <= len(data)
	pooled bool   // storage owned by bufferPool
}

// New creates an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewBuffer creates a Buffer reading from b. The Buffer takes ownership of b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Bytes returns all written data regardless of the cursor.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes held by the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Pos returns the read position.
func (b *Buffer) Pos() int { return b.pos }

// Remaining returns the number of bytes available for reading.
func (b *Buffer) Remaining() int {
	length := len(b.data) - b.pos
	if length <= 0 {
		return 0
	}
	return length
}

// Reset moves the cursor back to the start; data is unchanged.
func (b *Buffer) Reset() { b.pos = 0 }

// Truncate drops all data and resets the cursor, so the Buffer can be reused.
func (b *Buffer) Truncate() {
	b.data = b.data[:0]
	b.pos = 0
}

// ReadN returns the next n bytes and advances the cursor by n.
// The returned slice aliases the buffer's storage.
func (b *Buffer) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if n > b.Remaining() {
		return nil, fmt.Errorf("%w: want %d bytes, %d remaining at offset %d", ErrUnderflow, n, b.Remaining(), b.pos)
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n
	return p, nil
}

// ReadRest returns every byte from the cursor to the end and moves the cursor
// to the end. It returns an empty slice when nothing is left.
func (b *Buffer) ReadRest() []byte {
	if b.pos >= len(b.data) {
		return []byte{}
	}
	p := b.data[b.pos:]
	b.pos = len(b.data)
	return p
}

// Read implements the [io.Reader] interface.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.pos >= len(b.data) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += n
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (b *Buffer) ReadByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, fmt.Errorf("%w: want 1 byte at offset %d", ErrUnderflow, b.pos)
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

// WriteTo implements the [io.WriterTo] interface. It drains the unread bytes
// into w, typically a transport connection.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrWriteToNil
	}
	if b.pos >= len(b.data) {
		return 0, nil
	}

	n, err := w.Write(b.data[b.pos:])
	if n < 0 || n > b.Remaining() {
		return 0, ErrInvalidWrite
	}
	b.pos += n
	if err != nil {
		return int64(n), err
	}
	if b.pos < len(b.data) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// seek restores the cursor to an offset previously returned by Pos.
func (b *Buffer) seek(pos int) { b.pos = pos }
