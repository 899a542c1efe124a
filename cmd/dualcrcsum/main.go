// Copyright 2026 The rolling-dual-crc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dualcrcsum prints the CRC-32C and CRC-64/XZ checksums of its
// input, computed in a single pass.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/malaire/rolling-dual-crc"
	"github.com/malaire/rolling-dual-crc/accel"
)

type cli struct {
	Files []string `arg:"" optional:"" name:"file" help:"Files to checksum (default: stdin)."`
	Accel bool     `help:"Use the hardware-accelerated CRC-32C provider, after validating it against the software engine."`
}

func main() {
	var c cli
	kong.Parse(&c, kong.Description("Print CRC-32C and CRC-64/XZ checksums of files or stdin."))

	opts, err := c.options()
	if err != nil {
		log.Fatalf("dualcrcsum: %v", err)
	}

	if len(c.Files) == 0 {
		if err := c.sum("-", os.Stdin, opts); err != nil {
			log.Fatalf("dualcrcsum: %v", err)
		}
		return
	}

	status := 0
	for _, name := range c.Files {
		if err := c.sumFile(name, opts); err != nil {
			log.Printf("dualcrcsum: %s: %v", name, err)
			status = 1
		}
	}
	os.Exit(status)
}

func (c *cli) options() ([]dualcrc.Option, error) {
	if !c.Accel {
		return nil, nil
	}
	p := accel.KlauspostCRC32C{}
	if err := accel.Validate32(p); err != nil {
		return nil, fmt.Errorf("accelerator validation: %w", err)
	}
	return []dualcrc.Option{dualcrc.WithProvider32(p)}, nil
}

func (c *cli) sumFile(name string, opts []dualcrc.Option) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.sum(name, f, opts)
}

func (c *cli) sum(label string, r io.Reader, opts []dualcrc.Option) error {
	checksummer := dualcrc.New(opts...)
	buf := bufio.NewReaderSize(r, 64*1024)
	chunk := make([]byte, 64*1024)
	for {
		n, err := buf.Read(chunk)
		if n > 0 {
			checksummer.Update(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	crc32c, crc64xz := checksummer.Get()
	fmt.Printf("%08x  %016x  %s\n", crc32c, crc64xz, label)
	return nil
}
