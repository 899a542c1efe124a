// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import "github.com/klauspost/crc32"

// klauspostTable is the Castagnoli table, computed once via the
// fastest instruction set klauspost/crc32 detects at init time (SSE
// 4.2 on amd64, ARM64 CRC extension on arm64, falling back to a
// software slice-by-8 table otherwise).
var klauspostTable = crc32.MakeTable(crc32.Castagnoli)

// KlauspostCRC32C is a [dualcrc.Provider32] backed by
// github.com/klauspost/crc32, which uses CPU CRC32C instructions when
// available. It is bit-for-bit identical to [dualcrc.SoftwareCRC32Provider]
// for every input; check it with [Validate32] once per process if that
// guarantee needs to be double-checked against the actual hardware
// present.
type KlauspostCRC32C struct{}

// UpdateCRC32 implements dualcrc.Provider32.
func (KlauspostCRC32C) UpdateCRC32(crc uint32, data []byte) uint32 {
	external := crc32.Update(invertedToExternal32(crc), klauspostTable, data)
	return externalToInverted32(external)
}
