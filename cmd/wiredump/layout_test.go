package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/packetbuf"
)

func handshakePayload(t *testing.T) []byte {
	t.Helper()
	b := packetbuf.New()
	for _, kv := range [][2]string{
		{"varint", "754"},
		{"string", "localhost"},
		{"u16", "25565"},
		{"varint", "1"},
	} {
		p, err := encodeField(kv[0], kv[1])
		require.NoError(t, err)
		_, _ = b.Write(p)
	}
	return b.Bytes()
}

func TestParseLayout(t *testing.T) {
	kinds, err := parseLayout(" VarInt, string ,u16,,varint", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"varint", "string", "u16", "varint"}, kinds)

	kinds, err = parseLayout("handshake", map[string]string{"handshake": "varint,string"})
	require.NoError(t, err)
	assert.Equal(t, []string{"varint", "string"}, kinds)

	_, err = parseLayout("varint,uuid", nil)
	assert.ErrorIs(t, err, errUnknownKind)

	_, err = parseLayout(" , ", nil)
	assert.ErrorIs(t, err, errEmptyLayout)
}

func TestLoadLayouts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layouts]\nhandshake = \"varint,string,u16,varint\"\n"), 0o644))

	named, err := loadLayouts(path)
	require.NoError(t, err)
	assert.Equal(t, "varint,string,u16,varint", named["handshake"])

	_, err = loadLayouts(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	var out bytes.Buffer
	err := decode(&out, packetbuf.NewBuffer(handshakePayload(t)), []string{"varint", "string", "u16", "varint"})
	require.NoError(t, err)
	assert.Equal(t, "0\tvarint\t754\n1\tstring\t\"localhost\"\n2\tu16\t25565\n3\tvarint\t1\n", out.String())

	out.Reset()
	err = decode(&out, packetbuf.NewBuffer([]byte{0x80}), []string{"varint"})
	assert.ErrorIs(t, err, packetbuf.ErrUnderflow)
}

func TestEncodeField(t *testing.T) {
	cases := []struct {
		kind, value, want string
	}{
		{"varint", "300", "ac02"},
		{"varint", "-1", "ffffffff0f"},
		{"optvarint", "none", "00"},
		{"optvarint", "0", "01"},
		{"string", "Å", "02c385"},
		{"json", `{"a":1}`, "077b2261223a317d"},
		{"u16", "0xBBCC", "bbcc"},
		{"bool", "true", "01"},
		{"i8", "-1", "ff"},
	}
	for _, tc := range cases {
		p, err := encodeField(tc.kind, tc.value)
		require.NoError(t, err, "%s %s", tc.kind, tc.value)
		assert.Equal(t, tc.want, hex.EncodeToString(p), "%s %s", tc.kind, tc.value)
	}

	_, err := encodeField("varint", "2147483648")
	assert.ErrorIs(t, err, packetbuf.ErrRange)
	_, err = encodeField("json", "{")
	assert.ErrorIs(t, err, packetbuf.ErrParse)
	_, err = encodeField("rest", "x")
	assert.ErrorIs(t, err, errUnknownKind)
}

func TestCommands(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"encode", "varint", "25565"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "ddc701\n", out.String())

	out.Reset()
	rootCmd.SetArgs([]string{"decode", "--layout", "varint,rest", "ddc701 0a00"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "0\tvarint\t25565\n1\trest\t0a00\n", out.String())

	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, handshakePayload(t), 0o644))
	out.Reset()
	rootCmd.SetArgs([]string{"decode", "-l", "varint,string,u16,varint", "@" + path})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "\"localhost\"")
}
