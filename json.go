package packetbuf

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PackJSON serializes v to canonical JSON text (map keys sorted, no HTML
// escaping, no trailing newline) and encodes it as a string.
func PackJSON(v any) ([]byte, error) {
	var text bytes.Buffer
	enc := json.NewEncoder(&text)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	return PackString(string(bytes.TrimSuffix(text.Bytes(), []byte{'\n'})))
}

// UnpackJSON decodes a JSON string at the cursor into dst. Text that is not
// JSON fails with ErrParse; valid JSON that does not fit dst (or a dst that is
// not a non-nil pointer) fails with ErrUnmarshal.
func (b *Buffer) UnpackJSON(dst any) error {
	start := b.pos
	text, err := b.UnpackString()
	if err != nil {
		return err
	}
	if !json.Valid([]byte(text)) {
		b.seek(start)
		return fmt.Errorf("%w: %d bytes at offset %d", ErrParse, len(text), start)
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		b.seek(start)
		return fmt.Errorf("%w: %v", ErrUnmarshal, err)
	}
	return nil
}

// UnpackJSONValue decodes a JSON string at the cursor into generic Go values:
// map[string]any, []any, string, bool, nil and json.Number.
func (b *Buffer) UnpackJSONValue() (any, error) {
	var v any
	if err := b.UnpackJSON(&v); err != nil {
		return nil, err
	}
	return v, nil
}
