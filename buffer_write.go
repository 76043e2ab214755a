package packetbuf

import "io"

// Write implements the [io.Writer] interface. It appends p at the end of the
// buffer and never fails; the cursor is not moved.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString implements the [io.StringWriter] interface.
func (b *Buffer) WriteString(s string) (int, error) {
	b.data = append(b.data, s...)
	return len(s), nil
}

// WriteByte implements the [io.ByteWriter] interface.
func (b *Buffer) WriteByte(c byte) error {
	b.data = append(b.data, c)
	return nil
}

// ReadFrom implements the [io.ReaderFrom] interface, appending everything r
// yields until EOF. Transports use it to fill a Buffer with one complete frame.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	if r == nil {
		return 0, ErrReadFromNil
	}

	bufPtr := chunkPool.Get().(*[]byte)
	defer chunkPool.Put(bufPtr)
	chunk := *bufPtr

	var n int64
	for {
		read, err := r.Read(chunk)
		if read < 0 || read > len(chunk) {
			return n, ErrInvalidRead
		}
		b.data = append(b.data, chunk[:read]...)
		n += int64(read)
		if err != nil {
			if err == io.EOF { // EOF is the signal for a successful end.
				return n, nil
			}
			return n, err
		}
	}
}
