// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualcrc

// initCRC32C returns the CRC-32C initial register value.
func initCRC32C() uint32 {
	return 0xFFFFFFFF
}

// finalizeCRC32C returns the externally visible CRC-32C checksum for a
// register value: the final XOR mask per the catalogue parameters
// (init=xorout=0xFFFFFFFF).
func finalizeCRC32C(crc uint32) uint32 {
	return crc ^ 0xFFFFFFFF
}

// updateCRC32CByte advances the CRC-32C register by one byte, in
// reflected form: s' = (s >> 8) XOR T0[(s XOR b) & 0xFF].
func updateCRC32CByte(crc uint32, b byte) uint32 {
	ensureTablesBuilt()
	return crc32Slicing8Table[0][byte(crc)^b] ^ (crc >> 8)
}

// updateCRC32C advances the CRC-32C register by data, using the
// slice-by-8 fast path while at least 8 bytes remain.
func updateCRC32C(crc uint32, data []byte) uint32 {
	ensureTablesBuilt()
	for len(data) >= 8 {
		crc = updateCRC32C8(crc, data[:8:8])
		data = data[8:]
	}
	for _, b := range data {
		crc = updateCRC32CByte(crc, b)
	}
	return crc
}

// updateCRC32C8 advances a 32-bit register by exactly 8 bytes. The
// first 4 bytes are XORed directly into the register (it is only 32
// bits wide, so it can absorb no more at once); the remaining 4 bytes
// and the XORed register are then reduced through all eight tables in
// one pass. Table order (CRC32[0] for the furthest byte, down to
// CRC32[7] for the register's low byte) matches the original reference
// implementation, which measured it faster than the reverse order.
func updateCRC32C8(crc uint32, data []byte) uint32 {
	crc ^= uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24

	t := &crc32Slicing8Table
	return t[0][data[7]] ^
		t[1][data[6]] ^
		t[2][data[5]] ^
		t[3][data[4]] ^
		t[4][byte(crc>>24)] ^
		t[5][byte(crc>>16)] ^
		t[6][byte(crc>>8)] ^
		t[7][byte(crc)]
}
