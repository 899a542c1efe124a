// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accel

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/malaire/rolling-dual-crc"
)

// validateLengths are the input sizes exercised by Validate: the
// empty input, single bytes, the slice-by-8 boundary (7, 8, 9 bytes),
// and that same boundary one 1KiB buffer up (1023, 1024, 1025), which
// has caught off-by-one errors in hand-written accelerator adapters
// before.
var validateLengths = []int{0, 1, 7, 8, 9, 1023, 1024, 1025}

// Validate32 checks that p agrees with [dualcrc.SoftwareCRC32Provider]
// across a range of input lengths likely to expose slice-by-8 boundary
// bugs, returning a wrapped [dualcrc.ErrProviderMismatch] on the first
// disagreement. Call it once at startup before trusting an accelerator
// in production.
func Validate32(p dualcrc.Provider32) error {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range validateLengths {
		data := make([]byte, n)
		rnd.Read(data)

		want := dualcrc.Checksum32(data)

		c := dualcrc.New(dualcrc.WithProvider32(p))
		c.Update(data)
		got := c.Get32()

		if got != want {
			return errors.Wrapf(dualcrc.ErrProviderMismatch, "CRC-32C: length %d: got %#08x, want %#08x", n, got, want)
		}
	}
	return nil
}

// Validate64 is Validate32 for [dualcrc.Provider64].
func Validate64(p dualcrc.Provider64) error {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range validateLengths {
		data := make([]byte, n)
		rnd.Read(data)

		want := dualcrc.Checksum64(data)

		c := dualcrc.New(dualcrc.WithProvider64(p))
		c.Update(data)
		got := c.Get64()

		if got != want {
			return errors.Wrapf(dualcrc.ErrProviderMismatch, "CRC-64/XZ: length %d: got %#016x, want %#016x", n, got, want)
		}
	}
	return nil
}

// Validate checks both p32 and p64 against the software engine; see
// Validate32 and Validate64.
func Validate(p32 dualcrc.Provider32, p64 dualcrc.Provider64) error {
	if err := Validate32(p32); err != nil {
		return err
	}
	return Validate64(p64)
}
