// Package buf contains overflow-safe size arithmetic and host byte-order
// helpers shared by the formatters and the command-line driver.
package buf

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// NativeOrder is the byte order of the running host.
var NativeOrder binary.ByteOrder = nativeOrder()

func nativeOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// NativeU32 returns the four bytes v occupies in memory on this host.
func NativeU32(v uint32) []byte {
	b := make([]byte, 4)
	NativeOrder.PutUint32(b, v)
	return b
}

// NativeI32 returns the four bytes of v's two's-complement form in host order.
func NativeI32(v int32) []byte {
	return NativeU32(uint32(v))
}
