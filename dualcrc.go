// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualcrc

// Provider32 is the contract required of a bulk CRC-32C implementation
// an accelerator may supply in place of the software engine (see the
// dualcrc/accel subpackage). Given an internal CRC register value and a
// byte slice, it must produce the register value for that state updated
// by those bytes, bit-for-bit identical to the software path — a
// Provider32 must be associative with the in-library engine, so
// switching providers mid-stream never changes the outcome.
type Provider32 interface {
	UpdateCRC32(crc uint32, data []byte) uint32
}

// Provider64 is Provider32 widened to the CRC-64/XZ register.
type Provider64 interface {
	UpdateCRC64(crc uint64, data []byte) uint64
}

// SoftwareCRC32Provider is the in-library, pure-Go CRC-32C Provider32.
// It is the default bound by [New] and [NewWindow] when no accelerator
// option is given.
type SoftwareCRC32Provider struct{}

// UpdateCRC32 implements Provider32.
func (SoftwareCRC32Provider) UpdateCRC32(crc uint32, data []byte) uint32 {
	return updateCRC32C(crc, data)
}

// SoftwareCRC64Provider is the in-library, pure-Go CRC-64/XZ Provider64.
// It is the default bound by [New] and [NewWindow] when no accelerator
// option is given.
type SoftwareCRC64Provider struct{}

// UpdateCRC64 implements Provider64.
func (SoftwareCRC64Provider) UpdateCRC64(crc uint64, data []byte) uint64 {
	return updateCRC64XZ(crc, data)
}

// Option configures a [DualCrc] or [Window] at construction time. The
// bound providers never change afterward: per design, the hot path never
// branches on "is an accelerator configured" — it always calls through
// whichever Provider32/Provider64 was bound once at New time, defaulting
// to the software path.
type Option func(*options)

type options struct {
	provider32 Provider32
	provider64 Provider64
}

// WithProvider32 binds an alternate CRC-32C bulk provider, typically a
// hardware-accelerated one from dualcrc/accel.
func WithProvider32(p Provider32) Option {
	return func(o *options) { o.provider32 = p }
}

// WithProvider64 binds an alternate CRC-64/XZ bulk provider.
func WithProvider64(p Provider64) Option {
	return func(o *options) { o.provider64 = p }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.provider32 == nil {
		o.provider32 = SoftwareCRC32Provider{}
	}
	if o.provider64 == nil {
		o.provider64 = SoftwareCRC64Provider{}
	}
	return o
}

// DualCrc computes 32-bit CRC-32C and 64-bit CRC-64/XZ checksums in one
// pass, either in one shot ([Checksum], [Checksum32], [Checksum64]) or
// incrementally ([New] + [DualCrc.Update] + [DualCrc.Get]).
type DualCrc struct {
	invertedCRC32 uint32
	invertedCRC64 uint64

	provider32 Provider32
	provider64 Provider64
}

// New begins computation of both checksums.
func New(opts ...Option) *DualCrc {
	o := resolveOptions(opts)
	return &DualCrc{
		invertedCRC32: initCRC32C(),
		invertedCRC64: initCRC64XZ(),
		provider32:    o.provider32,
		provider64:    o.provider64,
	}
}

// Update feeds data into both checksums, in lockstep. It may be called
// any number of times; computation is not reset between calls.
func (c *DualCrc) Update(data []byte) {
	c.invertedCRC32 = c.provider32.UpdateCRC32(c.invertedCRC32, data)
	c.invertedCRC64 = c.provider64.UpdateCRC64(c.invertedCRC64, data)
}

// UpdateWithZeros advances both checksums as if n zero bytes had been
// fed to [DualCrc.Update], where n is the length z was built for. This
// is equivalent to c.Update(make([]byte, n)) but runs in O(1) time
// instead of O(n).
func (c *DualCrc) UpdateWithZeros(z Zeros) {
	c.invertedCRC32 = z.applyToInvertedCRC32(c.invertedCRC32)
	c.invertedCRC64 = z.applyToInvertedCRC64(c.invertedCRC64)
}

// Get returns the finalized CRC-32C and CRC-64/XZ checksums of the data
// processed so far. It does not reset or mutate computation.
func (c *DualCrc) Get() (uint32, uint64) {
	return c.Get32(), c.Get64()
}

// Get32 returns the finalized CRC-32C checksum of the data processed so
// far.
func (c *DualCrc) Get32() uint32 {
	return finalizeCRC32C(c.invertedCRC32)
}

// Get64 returns the finalized CRC-64/XZ checksum of the data processed
// so far.
func (c *DualCrc) Get64() uint64 {
	return finalizeCRC64XZ(c.invertedCRC64)
}

// Checksum computes both checksums of data in one call. It is
// equivalent to New().Update(data).Get() and returns the same pair as
// calling [Checksum32] and [Checksum64] separately.
func Checksum(data []byte) (uint32, uint64) {
	return Checksum32(data), Checksum64(data)
}

// Checksum32 computes the CRC-32C checksum of data in one call.
func Checksum32(data []byte) uint32 {
	return finalizeCRC32C(updateCRC32C(initCRC32C(), data))
}

// Checksum64 computes the CRC-64/XZ checksum of data in one call.
func Checksum64(data []byte) uint64 {
	return finalizeCRC64XZ(updateCRC64XZ(initCRC64XZ(), data))
}
