// Package endian provides the byte order engine used to read prefetch
// binary structures.
//
// The package combines the ByteOrder and AppendByteOrder interfaces of
// Go's standard encoding/binary package into a single EndianEngine
// interface so decoding code can take one value for both read and
// append operations.
//
// The SCCA format stores every integer field little-endian, so all
// decoding in this module goes through Engine():
//
//	engine := endian.Engine()
//	version := engine.Uint32(data[0:4])
//
// The returned engine is immutable, stateless and safe for concurrent
// use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary into a single interface. It is satisfied by
// binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Engine returns the little-endian engine. Prefetch files are always
// little-endian regardless of the host byte order.
func Engine() EndianEngine {
	return binary.LittleEndian
}
