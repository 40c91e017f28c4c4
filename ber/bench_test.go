// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"testing"

	"codello.dev/asn1tree/internal/fixtures"
)

func BenchmarkDecodePrimitive(b *testing.B) {
	data := []byte{0x02, 0x01, 0x15}
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := Decode(data); err != nil {
			b.Fatalf("Decode() returned an unexpected error: %q", err)
		}
	}
}

func BenchmarkDecodeConstructed(b *testing.B) {
	run := func(k int) func(*testing.B) {
		return func(b *testing.B) {
			data := make([]byte, 0, 2*k)
			for i := k - 1; i >= 0; i-- {
				data = append(data, 0x30, byte(i)*2)
			}
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				if _, err := Decode(data); err != nil {
					b.Fatalf("Decode() returned an unexpected error: %q", err)
				}
			}
		}
	}

	b.Run("1", run(1))
	b.Run("3", run(3))
	b.Run("10", run(10))
	b.Run("20", run(20))
}

func BenchmarkDecodeCertificate(b *testing.B) {
	data := fixtures.DER(fixtures.Qualified)
	b.SetBytes(int64(len(data)))
	r := bytes.NewReader(data)
	for b.Loop() {
		r.Reset(data)
		if _, err := DecodeReader(r); err != nil {
			b.Fatalf("DecodeReader() returned an unexpected error: %q", err)
		}
	}
}

func BenchmarkEncodeCertificate(b *testing.B) {
	data := fixtures.DER(fixtures.Qualified)
	t, err := Decode(data)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	buf := make([]byte, 0, len(data))
	for b.Loop() {
		buf = Append(buf[:0], t)
	}
}
