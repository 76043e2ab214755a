package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/oy3o/packetbuf"
)

var (
	errUnknownKind = errors.New("wiredump: unknown field kind")
	errEmptyLayout = errors.New("wiredump: empty layout")
)

// fixedKinds maps layout names to fixed-width tags.
var fixedKinds = map[string]packetbuf.Tag{
	"i8":   packetbuf.TagInt8,
	"u8":   packetbuf.TagUint8,
	"bool": packetbuf.TagBool,
	"i16":  packetbuf.TagInt16,
	"u16":  packetbuf.TagUint16,
	"i32":  packetbuf.TagInt32,
	"u32":  packetbuf.TagUint32,
	"i64":  packetbuf.TagInt64,
	"u64":  packetbuf.TagUint64,
	"f32":  packetbuf.TagFloat32,
	"f64":  packetbuf.TagFloat64,
}

// layoutFile is the TOML document holding named layouts:
//
//	[layouts]
//	handshake = "varint,string,u16,varint"
type layoutFile struct {
	Layouts map[string]string `toml:"layouts"`
}

func loadLayouts(path string) (map[string]string, error) {
	var f layoutFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("load layouts %s: %w", path, err)
	}
	return f.Layouts, nil
}

// parseLayout resolves a named layout or splits a comma separated list of kinds.
func parseLayout(layout string, named map[string]string) ([]string, error) {
	if l, ok := named[layout]; ok {
		layout = l
	}
	var kinds []string
	for _, k := range strings.Split(layout, ",") {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if !knownKind(k) {
			return nil, fmt.Errorf("%w: %q", errUnknownKind, k)
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, errEmptyLayout
	}
	return kinds, nil
}

func knownKind(k string) bool {
	if _, ok := fixedKinds[k]; ok {
		return true
	}
	switch k {
	case "varint", "varlong", "optvarint", "string", "bytes", "json", "rest":
		return true
	}
	return false
}

// decodeField reads one value of the given kind at the cursor.
func decodeField(b *packetbuf.Buffer, kind string) (any, error) {
	if tag, ok := fixedKinds[kind]; ok {
		return b.Unpack(tag)
	}
	switch kind {
	case "varint":
		return b.UnpackVarInt()
	case "varlong":
		return b.UnpackVarLong()
	case "optvarint":
		v, err := b.UnpackOptionalVarInt()
		if err != nil || v == nil {
			return nil, err
		}
		return *v, nil
	case "string":
		return b.UnpackString()
	case "bytes":
		return b.UnpackByteArray()
	case "json":
		return b.UnpackJSONValue()
	case "rest":
		return b.ReadRest(), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
}

// encodeField packs a single textual value as the given kind.
func encodeField(kind, value string) ([]byte, error) {
	if tag, ok := fixedKinds[kind]; ok {
		v, err := parseFixed(tag, value)
		if err != nil {
			return nil, err
		}
		return packetbuf.Pack(tag, v)
	}
	switch kind {
	case "varint":
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return nil, err
		}
		return packetbuf.PackVarInt(v)
	case "varlong":
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return nil, err
		}
		return packetbuf.PackVarLong(v), nil
	case "optvarint":
		if value == "" || value == "none" {
			return packetbuf.PackOptionalVarInt(nil)
		}
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return nil, err
		}
		return packetbuf.PackOptionalVarInt(&v)
	case "string":
		return packetbuf.PackString(value)
	case "json":
		if err := validJSON(value); err != nil {
			return nil, err
		}
		return packetbuf.PackString(value)
	}
	return nil, fmt.Errorf("%w: %q cannot be encoded", errUnknownKind, kind)
}

func parseFixed(tag packetbuf.Tag, value string) (any, error) {
	switch tag {
	case packetbuf.TagBool:
		return strconv.ParseBool(value)
	case packetbuf.TagFloat32, packetbuf.TagFloat64:
		return strconv.ParseFloat(value, 64)
	case packetbuf.TagUint64:
		return strconv.ParseUint(value, 0, 64)
	}
	return strconv.ParseInt(value, 0, 64)
}

// validJSON round-trips value through the JSON codec so malformed input is
// reported with the same error a decoder would give.
func validJSON(value string) error {
	p, err := packetbuf.PackString(value)
	if err != nil {
		return err
	}
	_, err = packetbuf.NewBuffer(p).UnpackJSONValue()
	return err
}
