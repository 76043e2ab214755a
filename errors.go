package packetbuf

import "errors"

var (
	// ErrUnderflow indicates a read asked for more bytes than remain after the cursor.
	// A truncated payload or a protocol mismatch between the two endpoints.
	ErrUnderflow = errors.New("packetbuf: not enough data in buffer")

	// ErrRange indicates a value falls outside what its target encoding can represent.
	// Nothing is written when it is returned.
	ErrRange = errors.New("packetbuf: value out of range")

	// ErrProtocol indicates a malformed wire value, e.g. a VarInt that never terminates.
	ErrProtocol = errors.New("packetbuf: protocol violation")

	// ErrEncoding indicates string bytes that are not valid UTF-8.
	ErrEncoding = errors.New("packetbuf: invalid utf-8 string")

	// ErrParse indicates JSON text that is not syntactically valid.
	ErrParse = errors.New("packetbuf: invalid json")

	// ErrUnmarshal indicates valid JSON that cannot be stored in the destination value.
	ErrUnmarshal = errors.New("packetbuf: json value does not fit destination")

	// ErrMarshal indicates a value that cannot be serialized as JSON.
	ErrMarshal = errors.New("packetbuf: value is not json serializable")

	// ErrNegativeLength indicates a raw read was requested with a negative byte count.
	ErrNegativeLength = errors.New("packetbuf: negative read length")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("packetbuf: WriteTo called with a nil io.Writer")

	// ErrReadFromNil indicates a ReadFrom operation was attempted on a nil io.Reader.
	ErrReadFromNil = errors.New("packetbuf: ReadFrom called with a nil io.Reader")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative or outbound) count from Write.
	ErrInvalidWrite = errors.New("packetbuf: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("packetbuf: reader returned invalid count from Read")

	// ErrTrailingData is returned by UnmarshalBinary when bytes remain after the payload.
	ErrTrailingData = errors.New("packetbuf: trailing data found after decoding")

	// ErrUnknownTag indicates a format tag outside the closed set of fixed-width types.
	ErrUnknownTag = errors.New("packetbuf: unknown format tag")

	// ErrTypeMismatch indicates a Go value whose type does not fit the given format tag.
	ErrTypeMismatch = errors.New("packetbuf: value type does not match tag")
)
