package content_test

import (
	"fmt"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/content"
)

func ExampleTable_Render() {
	table := content.Default()
	tags := []*asn1tree.Tag{
		asn1tree.New(asn1tree.TagInteger, []byte{0x00, 0x9a, 0x25, 0xd2}),
		asn1tree.New(asn1tree.TagOID, []byte{0x55, 0x1d, 0x0f}),
		asn1tree.New(asn1tree.TagUTCTime, []byte("240703190327Z")),
		asn1tree.New(asn1tree.TagBitString, []byte{0x06, 0xc0}),
		asn1tree.New(asn1tree.TagOctetString, []byte{0xca, 0x27, 0x0a}),
	}
	for _, t := range tags {
		s, err := table.Render(t)
		if err != nil {
			panic(err)
		}
		fmt.Println(t.Name() + ": " + s)
	}
	// Output:
	// INTEGER: 10102226
	// OBJECT_IDENTIFIER: 2.5.29.15, keyUsage (X.509 extension)
	// UTCTime: 2024-07-03 19:03:27 UTC
	// BitString: 11
	// OctetString: CA270A
}
