// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"
)

func TestSumAcceptsCheckInput(t *testing.T) {
	var c cli
	opts, err := c.options()
	if err != nil {
		t.Fatal(err)
	}

	r := bytes.NewReader([]byte("123456789"))
	if err := c.sum("-", r, opts); err != nil {
		t.Fatal(err)
	}
}

func TestOptionsAccelValidates(t *testing.T) {
	c := cli{Accel: true}
	opts, err := c.options()
	if err != nil {
		t.Fatal(err)
	}
	if len(opts) != 1 {
		t.Errorf("len(opts) = %d, want 1", len(opts))
	}
}

func TestOptionsNoAccel(t *testing.T) {
	var c cli
	opts, err := c.options()
	if err != nil {
		t.Fatal(err)
	}
	if opts != nil {
		t.Errorf("options() = %v, want nil", opts)
	}
}
