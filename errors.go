// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualcrc

import "errors"

// ErrInvalidWindow is returned by [NewWindow] when the initial window is
// empty: a rolling engine has no meaningful zero-sized window semantics.
var ErrInvalidWindow = errors.New("dualcrc: rolling window must have at least one initial byte")

// ErrProviderMismatch is returned by dualcrc/accel's Validate when an
// accelerator provider yields a register value inconsistent with the
// software engine. It should never occur with a conforming provider; it
// exists so a misconfigured accelerator fails loudly instead of silently
// corrupting checksums.
var ErrProviderMismatch = errors.New("dualcrc: accelerator provider diverged from software engine")
