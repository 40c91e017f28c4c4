// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
)

func ExampleDecode() {
	t, err := ber.Decode([]byte{0x30, 0x80, 0x02, 0x01, 0x05, 0x04, 0x02, 0x05, 0x00, 0x00, 0x00})
	if err != nil {
		panic(err)
	}
	for n := range t.All() {
		fmt.Println(n.Name())
	}
	fmt.Printf("% X\n", ber.Encode(t))
	// Output:
	// Sequence
	// INTEGER
	// OctetString
	// NULL
	// 30 07 02 01 05 04 02 05 00
}

func ExampleDecode_error() {
	_, err := ber.Decode([]byte{0x30, 0x03, 0x02, 0x02, 0x15})
	fmt.Println(errors.Is(err, asn1tree.ErrTruncatedContent))
	fmt.Println(err)
	// Output:
	// true
	// ber: syntax error within Sequence for value beginning at offset 2: truncated content
}

func ExampleDecoder() {
	d := ber.NewDecoder(bytes.NewReader([]byte{0x02, 0x01, 0x01, 0x0C, 0x02, 'h', 'i'}))
	for {
		t, err := d.Decode()
		if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		fmt.Printf("%s at %d\n", t.Name(), d.InputOffset())
	}
	// Output:
	// INTEGER at 3
	// UTF8String at 7
}

func ExampleEncode() {
	t := asn1tree.NewSequence(asn1tree.NewInteger(42), asn1tree.NewNull())
	fmt.Printf("% X\n", ber.Encode(t))
	// Output:
	// 30 05 02 01 2A 05 00
}
