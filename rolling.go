// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualcrc

// Window computes CRC-32C and CRC-64/XZ checksums over a fixed-size,
// rolling window of bytes: after each byte rolled in, [Window.Get32] and
// [Window.Get64] describe the most recent W bytes, in amortized O(1)
// work per byte independent of W.
//
// Construct with [NewWindow]; a Window is not safe for concurrent
// mutation from multiple goroutines, though Get32/Get64 may be called
// concurrently with themselves on an otherwise-unchanging instance.
type Window struct {
	invertedCRC32 uint32
	invertedCRC64 uint64

	windowSize int
	startPos   int
	data       []byte

	// outByteTable{32,64}[b] is the CRC contribution of a byte equal to
	// b, once it has been shifted windowSize byte-positions further
	// into the past — i.e. the compensation XORed in when that byte
	// leaves the window. Built once per Window, from Zeros(windowSize).
	outByteTable32 [256]uint32
	outByteTable64 [256]uint64
}

// NewWindow begins computation of a rolling checksum over a window the
// size of initial. It copies initial into an internal ring buffer,
// computes the checksums of initial, and builds the window's out-byte
// compensation tables (a one-time, O(256) cost per Window).
//
// NewWindow delegates the initial bulk CRC computation to the bound
// Provider32/Provider64 (the software engine by default); [Window.Roll]
// and [Window.RollSlice] always use the in-library byte-at-a-time path,
// since the compensation step they perform has no bulk-provider
// equivalent.
//
// NewWindow returns [ErrInvalidWindow] if initial is empty: the rolling
// algorithm has no meaningful zero-sized window semantics.
func NewWindow(initial []byte, opts ...Option) (*Window, error) {
	if len(initial) == 0 {
		return nil, ErrInvalidWindow
	}

	o := resolveOptions(opts)
	windowSize := len(initial)

	w := &Window{
		invertedCRC32: o.provider32.UpdateCRC32(initCRC32C(), initial),
		invertedCRC64: o.provider64.UpdateCRC64(initCRC64XZ(), initial),
		windowSize:    windowSize,
		data:          append([]byte(nil), initial...),
	}
	w.outByteTable32, w.outByteTable64 = buildOutByteTables(windowSize)
	return w, nil
}

// Roll appends b to the window and evicts the oldest byte, in O(1) time
// independent of the window size.
func (w *Window) Roll(b byte) {
	out := w.data[w.startPos]

	w.invertedCRC32 = updateCRC32CByte(w.invertedCRC32, b) ^ w.outByteTable32[out]
	w.invertedCRC64 = updateCRC64XZByte(w.invertedCRC64, b) ^ w.outByteTable64[out]

	w.data[w.startPos] = b
	w.startPos++
	if w.startPos == w.windowSize {
		w.startPos = 0
	}
}

// RollSlice is equivalent to calling [Window.Roll] for each byte of
// data, in order.
func (w *Window) RollSlice(data []byte) {
	for _, b := range data {
		w.Roll(b)
	}
}

// Get returns the finalized CRC-32C and CRC-64/XZ checksums of the
// window's current contents.
func (w *Window) Get() (uint32, uint64) {
	return w.Get32(), w.Get64()
}

// Get32 returns the finalized CRC-32C checksum of the window's current
// contents.
func (w *Window) Get32() uint32 {
	return finalizeCRC32C(w.invertedCRC32)
}

// Get64 returns the finalized CRC-64/XZ checksum of the window's current
// contents.
func (w *Window) Get64() uint64 {
	return finalizeCRC64XZ(w.invertedCRC64)
}

// buildOutByteTables builds the two out-byte compensation tables for a
// window of the given size. For each candidate byte value b, it
// simulates a fresh DualCrc over [b] followed by windowSize zero bytes,
// and XORs out the contribution of windowSize zero bytes alone (via
// Zeros(windowSize)), isolating exactly the ghost contribution that
// Roll must cancel when b is windowSize positions in the past. This
// keeps the rolling engine a consumer of Zeros rather than a second,
// independent derivation of the same exponentiation.
func buildOutByteTables(windowSize int) (table32 [256]uint32, table64 [256]uint64) {
	zeros := NewZeros(uint64(windowSize))

	zeroCRC := New()
	zeroCRC.UpdateWithZeros(zeros)
	zero32, zero64 := zeroCRC.Get32(), zeroCRC.Get64()

	var single [1]byte
	for b := 0; b < 256; b++ {
		single[0] = byte(b)

		byteCRC := New()
		byteCRC.Update(single[:])
		byteCRC.UpdateWithZeros(zeros)

		table32[b] = byteCRC.Get32() ^ zero32
		table64[b] = byteCRC.Get64() ^ zero64
	}
	return table32, table64
}
