// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunking breaks a stream of bytes into content-defined chunks
// whose boundaries are chosen from the CRC-64/XZ checksum of a window
// that slides over the data. An edited sequence with insertions and
// removals shares most of its chunks with the original sequence, which
// makes this useful as the basis of a sync or dedup protocol: the
// checksums of the resulting chunks can be compared against a remote
// peer's to discover which chunks it already has.
//
// Example:
//
//	s := chunking.NewStream(&chunking.DefaultParam, anIOReader)
//	for s.Advance() {
//		chunk := s.Value()
//		// process chunk
//	}
//	if s.Err() != nil {
//		// anIOReader generated an error.
//	}
package chunking

// The design is from:
// "A Framework for Analyzing and Improving Content-Based Chunking Algorithms";
// Kave Eshghi, Hsiu Khuern Tang; HPL-2005-30(R.1); Sep, 2005;
// http://www.hpl.hp.com/techreports/2005/HPL-2005-30R1.pdf

import (
	"errors"
	"io"
	"sync"

	"github.com/malaire/rolling-dual-crc"
)

// ErrStreamCancelled is returned by [Stream.Err] once [Stream.Cancel]
// has been called, unless the reader had already returned an error
// other than io.EOF.
var ErrStreamCancelled = errors.New("chunking: Advance called on cancelled stream")

// Param holds the parameters for chunking.
//
// Chunks are broken based on the CRC-64/XZ checksum of a sliding window
// of WindowWidth bytes. Each chunk is at most MaxChunk bytes long, and,
// unless end-of-file or an error is reached, at least MinChunk bytes
// long.
//
// Subject to those constraints, a chunk boundary is introduced at the
// first point where the checksum of the sliding window is 1 mod
// Primary, or if that doesn't occur before MaxChunk bytes, at the last
// position where the checksum is 1 mod Secondary, or if that does not
// occur, after MaxChunk bytes.
//
// Normally, MinChunk < Primary < MaxChunk. Primary is the expected
// chunk size. The Secondary divisor exists to make it more likely that
// a chunk boundary is selected based on local data when the Primary
// divisor by chance does not find a match over a long distance; it
// should be a few times smaller than Primary.
//
// Using primes for Primary and Secondary is not essential, but
// recommended, because it guarantees mixing of the checksum bits
// should their distribution be non-uniform.
type Param struct {
	WindowWidth int    // the window size to use when looking for chunk boundaries
	MinChunk    int64  // minimum chunk size
	MaxChunk    int64  // maximum chunk size
	Primary     uint64 // primary divisor; the expected chunk size
	Secondary   uint64 // secondary divisor
}

// DefaultParam contains default chunking parameters.
var DefaultParam = Param{WindowWidth: 48, MinChunk: 512, MaxChunk: 3072, Primary: 601, Secondary: 307}

// Stream allows a client to iterate over the chunks within an
// io.Reader byte stream.
type Stream struct {
	param        Param           // chunking parameters
	window       *dualcrc.Window // sliding window for computing the checksum; starts all-zero
	buf          []byte          // buffer of data
	rd           io.Reader       // source of data
	err          error           // error from rd
	mu           sync.Mutex      // protects cancelled
	cancelled    bool            // whether the stream has been cancelled
	bufferChunks bool            // whether to buffer entire chunks
	// Invariant: bufStart <= chunkStart <= chunkEnd <= bufEnd
	bufStart   int64  // offset in rd of first byte in buf[]
	bufEnd     int64  // offset in rd of next byte after those in buf[]
	chunkStart int64  // offset in rd of first byte of current chunk
	chunkEnd   int64  // offset in rd of next byte after current chunk
	windowEnd  int64  // offset in rd of next byte to be given to window
	hash       uint64 // checksum of sliding window
}

// newStream returns a pointer to a new Stream instance, with the
// parameters in param. This internal version of NewStream allows the
// caller to specify via bufferChunks whether entire chunks should be
// buffered.
func newStream(param *Param, rd io.Reader, bufferChunks bool) *Stream {
	s := new(Stream)
	s.param = *param
	// The window starts full of zero bytes, matching a checksum that
	// would be computed over the window had the stream been preceded
	// by WindowWidth zeroes.
	s.window, _ = dualcrc.NewWindow(make([]byte, param.WindowWidth))
	bufSize := int64(8192)
	if bufferChunks {
		// If we must buffer entire chunks, arrange that the buffer
		// size is considerably larger than the max chunk size to
		// avoid copying data repeatedly.
		for bufSize < 4*s.param.MaxChunk {
			bufSize *= 2
		}
	}
	s.buf = make([]byte, bufSize)
	s.rd = rd
	s.bufferChunks = bufferChunks
	return s
}

// NewStream returns a pointer to a new Stream instance, with the
// parameters in param.
func NewStream(param *Param, rd io.Reader) *Stream {
	return newStream(param, rd, true)
}

// isCancelled reports whether s.Cancel has been called.
func (s *Stream) isCancelled() (cancelled bool) {
	s.mu.Lock()
	cancelled = s.cancelled
	s.mu.Unlock()
	return cancelled
}

// advanceWindow rolls one byte into the sliding window and returns its
// updated CRC-64/XZ checksum.
func (s *Stream) advanceWindow(b byte) uint64 {
	s.window.Roll(b)
	return s.window.Get64()
}

// Advance stages the next chunk so that it may be retrieved via Value.
// Returns true iff there is an item to retrieve. Advance must be called
// before Value is called.
func (s *Stream) Advance() bool {
	// Remember that s.{bufStart,bufEnd,chunkStart,chunkEnd,windowEnd}
	// are all relative to the offset in s.rd, not s.buf. Therefore
	// these starts and ends can easily be compared with each other,
	// but we must subtract bufStart when indexing into buf.

	if s.bufferChunks && s.bufEnd < s.chunkEnd+s.param.MaxChunk && s.err == nil {
		if s.bufStart < s.chunkEnd {
			copy(s.buf, s.buf[s.chunkEnd-s.bufStart:s.bufEnd-s.bufStart])
			s.bufStart = s.chunkEnd
		}
		for s.err == nil && s.bufEnd < s.bufStart+int64(len(s.buf)) && !s.isCancelled() {
			var n int
			n, s.err = s.rd.Read(s.buf[s.bufEnd-s.bufStart:])
			s.bufEnd += int64(n)
		}
	}

	s.chunkStart = s.chunkEnd
	minChunk := s.chunkStart + s.param.MinChunk
	maxChunk := s.chunkStart + s.param.MaxChunk
	lastSecondaryBreak := maxChunk

	for s.windowEnd != maxChunk &&
		(s.windowEnd < minChunk || (s.hash%s.param.Primary) != 1) &&
		(s.windowEnd != s.bufEnd || s.err == nil) && !s.isCancelled() {

		if s.windowEnd == s.bufEnd && s.err == nil {
			if s.bufferChunks {
				panic("chunking: Advance had to fill buffer in bufferChunks mode")
			}
			s.bufStart = s.bufEnd
			var n int
			n, s.err = s.rd.Read(s.buf)
			s.bufEnd += int64(n)
		}

		bufLimit := maxChunk
		if s.bufEnd < bufLimit {
			bufLimit = s.bufEnd
		}
		for s.windowEnd != bufLimit &&
			(s.windowEnd < minChunk || (s.hash%s.param.Primary) != 1) &&
			!s.isCancelled() {

			s.hash = s.advanceWindow(s.buf[s.windowEnd-s.bufStart])
			s.windowEnd++
			if (s.hash % s.param.Secondary) == 1 {
				lastSecondaryBreak = s.windowEnd
			}
		}
	}

	if s.windowEnd == maxChunk && (s.hash%s.param.Primary) != 1 && lastSecondaryBreak != maxChunk {
		s.chunkEnd = lastSecondaryBreak
	} else {
		s.chunkEnd = s.windowEnd
	}

	return !s.isCancelled() && s.chunkStart != s.chunkEnd
}

// Value returns the chunk that was staged by Advance. May panic if
// Advance returned false or was not called. Never blocks.
func (s *Stream) Value() []byte {
	return s.buf[s.chunkStart-s.bufStart : s.chunkEnd-s.bufStart]
}

// Err returns any error encountered by Advance. Never blocks.
func (s *Stream) Err() (err error) {
	s.mu.Lock()
	if s.cancelled && (s.err == nil || s.err == io.EOF) {
		s.err = ErrStreamCancelled
	}
	s.mu.Unlock()
	if s.err != io.EOF { // Do not consider EOF to be an error.
		err = s.err
	}
	return err
}

// Cancel causes the next call to Advance to return false. It should be
// used when the client does not wish to iterate to the end of the
// stream. Never blocks. May be called concurrently with other method
// calls on s.
func (s *Stream) Cancel() {
	s.mu.Lock()
	s.cancelled = true
	s.mu.Unlock()
}

// PosStream is just like a Stream, except that its Value method
// returns only the byte offsets of the ends of chunks, rather than the
// chunks themselves. It can be used when chunks are too large to
// comfortably buffer a small number of them in memory.
type PosStream struct {
	s *Stream
}

// NewPosStream returns a pointer to a new PosStream instance, with the
// parameters in param.
func NewPosStream(param *Param, rd io.Reader) *PosStream {
	ps := new(PosStream)
	ps.s = newStream(param, rd, false)
	return ps
}

// Advance stages the offset of the end of the next chunk so that it
// may be retrieved via Value. Returns true iff there is an item to
// retrieve. Advance must be called before Value is called.
func (ps *PosStream) Advance() bool {
	return ps.s.Advance()
}

// Value returns the offset staged by Advance. May panic if Advance
// returned false or was not called. Never blocks.
func (ps *PosStream) Value() int64 {
	return ps.s.chunkEnd
}

// Err returns any error encountered by Advance. Never blocks.
func (ps *PosStream) Err() error {
	return ps.s.Err()
}

// Cancel causes the next call to Advance to return false. Never
// blocks. May be called concurrently with other method calls on ps.
func (ps *PosStream) Cancel() {
	ps.s.Cancel()
}
