// Package packetbuf is the read/write cursor every protocol packet is built on.
//
// Pack functions turn typed values into bytes; a Buffer collects them with
// Write and hands them back, in order, through the Unpack methods.
//
// Wire layout:
//
//	fixed-width   N bytes, big-endian
//	bool          1 byte, 0x00 or 0x01
//	VarInt        1-5 bytes, 7 bits per byte, low group first, 0x80 = more follows
//	optional      VarInt(v+1), or VarInt(0) when absent
//	string        VarInt byte length, then UTF-8 bytes
//	JSON          string holding the JSON text
package packetbuf
