package pretty_test

import (
	"fmt"

	"codello.dev/asn1tree/ber"
	"codello.dev/asn1tree/pretty"
)

func ExamplePrint() {
	t, err := ber.Decode([]byte{0x30, 0x0a, 0x02, 0x01, 0x05, 0x0c, 0x05, 'h', 'e', 'l', 'l', 'o'})
	if err != nil {
		panic(err)
	}
	s, err := pretty.Print(t, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// Sequence
	//  | INTEGER 5
	//  | UTF8String hello
}

func ExampleOptions() {
	t, err := ber.Decode([]byte{0x0c, 0x1b, 'a', ' ', 'l', 'o', 'n', 'g', ' ', 'l', 'i', 'n', 'e', ' ', 'o', 'f', ' ', 't', 'e', 'x', 't', ' ', 'w', 'r', 'a', 'p', 'p', 'e', 'd'})
	if err != nil {
		panic(err)
	}
	opts := pretty.DefaultOptions()
	opts.Mode = pretty.WordWrap
	opts.MaxLineLength = 14
	opts.Indentation = "  "
	opts.Separator = ":"
	s, err := pretty.Print(t, opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// UTF8String:
	//   a long line
	//   of text
	//   wrapped
}
