// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dualcrc computes 32-bit CRC-32C (Castagnoli) and 64-bit
// CRC-64/XZ checksums simultaneously over byte input.
//
// Three usage modes are supported:
//
//   - One-shot and incremental checksumming of arbitrary byte sequences,
//     via [DualCrc].
//   - Rolling-window checksumming, via [Window]: after each byte rolled
//     in, both checksums describe the latest W bytes of input, in
//     amortized O(1) work per byte independent of W.
//   - Efficient composition with long runs of zero bytes, via [Zeros]:
//     an "append N zeros" operator usable in O(log N) composition or
//     O(1) application to a live [DualCrc].
//
// # Example
//
//	crc := dualcrc.New()
//	crc.Update([]byte("Hello"))
//	crc.Update([]byte(", world!"))
//	fmt.Printf("%08x\n", crc.Get32()) // c8a106e5
//
// Hardware-accelerated bulk CRC providers can be bound at construction
// time; see the sibling accel package.
package dualcrc
