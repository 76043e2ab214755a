package packetbuf

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// PackString encodes s as a VarInt byte length followed by its UTF-8 bytes.
// A string holding invalid UTF-8 fails with ErrEncoding and nothing is encoded.
func PackString(s string) ([]byte, error) {
	if len(s) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: string of %d bytes", ErrRange, len(s))
	}
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: %d bytes", ErrEncoding, len(s))
	}
	p := AppendVarInt(make([]byte, 0, VarIntSize(int32(len(s)))+len(s)), int32(len(s)))
	return append(p, s...), nil
}

// UnpackString decodes a length-prefixed string at the cursor. Invalid UTF-8
// fails with ErrEncoding. On failure the cursor is left where the value started.
func (b *Buffer) UnpackString() (string, error) {
	start := b.pos
	p, err := b.unpackPrefixed()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		b.seek(start)
		return "", fmt.Errorf("%w: %d bytes at offset %d", ErrEncoding, len(p), start)
	}
	return string(p), nil
}

// PackByteArray encodes p as a VarInt length followed by the raw bytes.
func PackByteArray(p []byte) ([]byte, error) {
	if len(p) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: byte array of %d bytes", ErrRange, len(p))
	}
	out := AppendVarInt(make([]byte, 0, VarIntSize(int32(len(p)))+len(p)), int32(len(p)))
	return append(out, p...), nil
}

// UnpackByteArray decodes a length-prefixed byte array into a new slice.
func (b *Buffer) UnpackByteArray() ([]byte, error) {
	p, err := b.unpackPrefixed()
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), p...), nil
}

// unpackPrefixed reads a VarInt length and that many bytes, restoring the
// cursor when either part fails.
func (b *Buffer) unpackPrefixed() ([]byte, error) {
	start := b.pos
	n, err := b.UnpackVarInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		b.seek(start)
		return nil, fmt.Errorf("%w: negative length prefix %d", ErrProtocol, n)
	}
	p, err := b.ReadN(int(n))
	if err != nil {
		b.seek(start)
		return nil, err
	}
	return p, nil
}
