// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package accel collects hardware-accelerated bulk CRC providers, plus a
// validator that checks a candidate provider agrees with the software
// engine before it is trusted in production. The one hardware provider
// here is [KlauspostCRC32C], a [dualcrc.Provider32]; there is no
// hardware [dualcrc.Provider64]. [Provider32Func] and [Provider64Func]
// adapt plain functions to either interface.
//
// Accelerators are bound once, at construction time, via
// [dualcrc.WithProvider32] / [dualcrc.WithProvider64]; this package
// never reaches back into dualcrc to select a provider dynamically,
// which keeps the import graph one-directional.
package accel

import "github.com/malaire/rolling-dual-crc"

// invertedToExternal and externalToInverted convert between this
// library's internal ("inverted", pre-finalization) register
// convention and the externally visible checksum value that
// hash/crc32-shaped APIs (including klauspost/crc32) use for
// resumable Update calls. Both directions are the same XOR, since
// init == xorout == all-ones for both CRC-32C and CRC-64/XZ.
func invertedToExternal32(crc uint32) uint32 { return crc ^ 0xFFFFFFFF }
func externalToInverted32(crc uint32) uint32 { return crc ^ 0xFFFFFFFF }
func invertedToExternal64(crc uint64) uint64 { return crc ^ 0xFFFFFFFFFFFFFFFF }
func externalToInverted64(crc uint64) uint64 { return crc ^ 0xFFFFFFFFFFFFFFFF }

var (
	_ dualcrc.Provider32 = Provider32Func(nil)
	_ dualcrc.Provider64 = Provider64Func(nil)
)

// Provider32Func adapts a plain function to [dualcrc.Provider32].
type Provider32Func func(crc uint32, data []byte) uint32

// UpdateCRC32 implements dualcrc.Provider32.
func (f Provider32Func) UpdateCRC32(crc uint32, data []byte) uint32 { return f(crc, data) }

// Provider64Func adapts a plain function to [dualcrc.Provider64].
type Provider64Func func(crc uint64, data []byte) uint64

// UpdateCRC64 implements dualcrc.Provider64.
func (f Provider64Func) UpdateCRC64(crc uint64, data []byte) uint64 { return f(crc, data) }
