// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualcrc

import "math/bits"

// Zeros is an efficient representation of a sequence of N 0x00 bytes,
// for use with [DualCrc.UpdateWithZeros] and [Window]'s out-byte
// compensation tables. It represents the linear operator "append N zero
// bytes" as an element of GF(2)[x]/G(x) for each polynomial, so that
// applying it to a CRC register advances the register by N zero bytes
// in O(1), and two Zeros can be composed in O(log N).
//
// Construct with [NewZeros]; NewZeros(0) is the identity operator (N=0).
// The zero value of Zeros is not the identity: applying it sets both
// CRC registers to zero.
type Zeros struct {
	factor32 uint32
	factor64 uint64
}

// NewZeros builds the operator for appending exactly n zero bytes.
// Complexity: O(log n) polynomial multiplications, via repeated
// squaring against the precomputed POW256 tables selected by n's binary
// expansion.
func NewZeros(n uint64) Zeros {
	return Zeros{
		factor32: pow256_32(n),
		factor64: pow256_64(n),
	}
}

// Combine returns the operator for appending a+b zero bytes, given the
// operators for a and b: polynomial multiplication of the two operators
// modulo each generator polynomial.
func Combine(a, b Zeros) Zeros {
	return Zeros{
		factor32: mul32(a.factor32, b.factor32),
		factor64: mul64(a.factor64, b.factor64),
	}
}

// applyToInvertedCRC32 applies the operator to an internal (inverted,
// i.e. pre-finalization) CRC-32C register value.
func (z Zeros) applyToInvertedCRC32(crc uint32) uint32 {
	return bits.Reverse32(mul32(bits.Reverse32(crc), z.factor32))
}

// applyToInvertedCRC64 applies the operator to an internal (inverted)
// CRC-64/XZ register value.
func (z Zeros) applyToInvertedCRC64(crc uint64) uint64 {
	return bits.Reverse64(mul64(bits.Reverse64(crc), z.factor64))
}

// mul32 computes a*b mod G32(x) in GF(2)[x], using the non-reflected
// (MSB-first: bit i holds the coefficient of x^i) polynomial
// convention. G32's implicit leading coefficient is x^32; its low-order
// coefficients are polyCRC32CNormal.
//
// Complexity: O(1) — 32 shift-and-conditionally-XOR steps, independent
// of a or b.
func mul32(a, b uint32) uint32 {
	var product uint32
	for i := 0; i < 32; i++ {
		reduceMask := -(product >> 31)
		product = (product << 1) ^ (reduceMask & polyCRC32CNormal)

		addMask := -(b >> 31)
		product ^= addMask & a
		b <<= 1
	}
	return product
}

// mul64 is mul32 widened to 64 bits, reducing modulo G64(x).
func mul64(a, b uint64) uint64 {
	var product uint64
	for i := 0; i < 64; i++ {
		reduceMask := -(product >> 63)
		product = (product << 1) ^ (reduceMask & polyCRC64XZNormal)

		addMask := -(b >> 63)
		product ^= addMask & a
		b <<= 1
	}
	return product
}

// pow256_32 computes 256**power == x^(8*power) mod G32(x), in the
// normal (non-reflected) convention mul32 uses, via exponentiation by
// squaring: the precomputed pow256_32Table[k] holds x^(8*2^k) mod G32,
// and power's binary expansion selects which powers of two to combine.
//
// Complexity: O(popcount(power)) polynomial multiplications.
func pow256_32(power uint64) uint32 {
	ensureTablesBuilt()

	if power == 0 {
		return 1
	}

	pos := bits.TrailingZeros64(power)
	result := pow256_32Table[pos]
	pos++
	power >>= uint(pos)

	for power > 0 {
		if power&1 == 1 {
			result = mul32(result, pow256_32Table[pos])
		}
		pos++
		power >>= 1
	}
	return result
}

// pow256_64 is pow256_32 widened to 64 bits.
func pow256_64(power uint64) uint64 {
	ensureTablesBuilt()

	if power == 0 {
		return 1
	}

	pos := bits.TrailingZeros64(power)
	result := pow256_64Table[pos]
	pos++
	power >>= uint(pos)

	for power > 0 {
		if power&1 == 1 {
			result = mul64(result, pow256_64Table[pos])
		}
		pos++
		power >>= 1
	}
	return result
}
