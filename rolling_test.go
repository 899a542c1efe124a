// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualcrc_test

import (
	"math/rand"
	"testing"

	"github.com/malaire/rolling-dual-crc"
)

func TestWindowScenarioAbc(t *testing.T) {
	w, err := dualcrc.NewWindow([]byte("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if g32, g64 := w.Get(); g32 != 0x364B3FB7 || g64 != 0x2CD8094A1A277627 {
		t.Fatalf("NewWindow(\"abc\"): Get() = (%#08x, %#016x), want (0x364b3fb7, 0x2cd8094a1a277627)", g32, g64)
	}

	w.Roll('d')
	if g32, g64 := w.Get(); g32 != 0x1B0D0358 || g64 != 0x0557EA6AA1219070 {
		t.Errorf("after Roll('d'): Get() = (%#08x, %#016x), want (0x1b0d0358, 0x0557ea6aa1219070)", g32, g64)
	}

	w.Roll('e')
	if g32, g64 := w.Get(); g32 != 0x364ADB60 || g64 != 0xB534844A0AD06B72 {
		t.Errorf("after Roll('e'): Get() = (%#08x, %#016x), want (0x364adb60, 0xb534844a0ad06b72)", g32, g64)
	}
}

func TestNewWindowEmptyIsError(t *testing.T) {
	_, err := dualcrc.NewWindow(nil)
	if err != dualcrc.ErrInvalidWindow {
		t.Errorf("NewWindow(nil) error = %v, want ErrInvalidWindow", err)
	}
}

// Rolling through "abcdefghij" with W=3 must, at every step, agree
// with the one-shot checksum of the current 3-byte window.
func TestWindowRollingMatchesOneShot(t *testing.T) {
	data := []byte("abcdefghij")
	const windowSize = 3

	w, err := dualcrc.NewWindow(data[:windowSize])
	if err != nil {
		t.Fatal(err)
	}
	for i := windowSize; i < len(data); i++ {
		w.Roll(data[i])

		want32, want64 := dualcrc.Checksum(data[i-windowSize+1 : i+1])
		got32, got64 := w.Get()
		if got32 != want32 || got64 != want64 {
			t.Errorf("after rolling in %q: Get() = (%#08x, %#016x), want (%#08x, %#016x)",
				data[i], got32, got64, want32, want64)
		}
	}
}

// The same equivalence, fuzzed over random data and window sizes.
func TestWindowRollingMatchesOneShotRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for _, windowSize := range []int{1, 2, 7, 8, 9, 16, 63, 64, 65, 200} {
		total := windowSize + 1024
		data := make([]byte, total)
		rnd.Read(data)

		w, err := dualcrc.NewWindow(data[:windowSize])
		if err != nil {
			t.Fatal(err)
		}

		want32, want64 := dualcrc.Checksum(data[:windowSize])
		got32, got64 := w.Get()
		if got32 != want32 || got64 != want64 {
			t.Fatalf("windowSize=%d: initial Get() = (%#08x, %#016x), want (%#08x, %#016x)",
				windowSize, got32, got64, want32, want64)
		}

		for i := windowSize; i < total; i++ {
			w.Roll(data[i])
			want32, want64 = dualcrc.Checksum(data[i-windowSize+1 : i+1])
			got32, got64 = w.Get()
			if got32 != want32 || got64 != want64 {
				t.Fatalf("windowSize=%d, pos=%d: Get() = (%#08x, %#016x), want (%#08x, %#016x)",
					windowSize, i, got32, got64, want32, want64)
			}
		}
	}
}

func TestWindowRollSliceMatchesRoll(t *testing.T) {
	data := []byte("abcdefghijklmno")
	const windowSize = 4

	w1, _ := dualcrc.NewWindow(data[:windowSize])
	for _, b := range data[windowSize:] {
		w1.Roll(b)
	}

	w2, _ := dualcrc.NewWindow(data[:windowSize])
	w2.RollSlice(data[windowSize:])

	got1_32, got1_64 := w1.Get()
	got2_32, got2_64 := w2.Get()
	if got1_32 != got2_32 || got1_64 != got2_64 {
		t.Errorf("Roll-by-byte (%#08x,%#016x) != RollSlice (%#08x,%#016x)",
			got1_32, got1_64, got2_32, got2_64)
	}
}

func TestWindowSizeOne(t *testing.T) {
	w, err := dualcrc.NewWindow([]byte{'x'})
	if err != nil {
		t.Fatal(err)
	}
	want32, want64 := dualcrc.Checksum([]byte{'x'})
	if g32, g64 := w.Get(); g32 != want32 || g64 != want64 {
		t.Fatalf("NewWindow single byte: Get() = (%#08x, %#016x), want (%#08x, %#016x)", g32, g64, want32, want64)
	}

	w.Roll('y')
	want32, want64 = dualcrc.Checksum([]byte{'y'})
	if g32, g64 := w.Get(); g32 != want32 || g64 != want64 {
		t.Errorf("after Roll('y'): Get() = (%#08x, %#016x), want (%#08x, %#016x)", g32, g64, want32, want64)
	}
}
