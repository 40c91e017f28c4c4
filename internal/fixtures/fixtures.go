// Package fixtures provides DER-encoded certificates and certificate requests
// for tests.
package fixtures

import (
	"embed"
	"encoding/pem"
)

//go:embed *.pem
var files embed.FS

// Names of the available fixtures.
const (
	Request        = "request"         // CSR with a subject of four attributes
	RequestAddress = "request-address" // CSR with locality and address attributes
	Qualified      = "qualified"       // qualified end-entity certificate
	PublicCA       = "public-ca"       // end-entity certificate of a public CA
)

// Names lists all fixtures.
var Names = []string{Request, RequestAddress, Qualified, PublicCA}

// DER returns the DER encoding of the fixture with the given name. It panics
// if the fixture does not exist.
func DER(name string) []byte {
	b, err := files.ReadFile(name + ".pem")
	if err != nil {
		panic("fixtures: " + err.Error())
	}
	block, _ := pem.Decode(b)
	if block == nil {
		panic("fixtures: no PEM block in " + name)
	}
	return block.Bytes
}

// All returns the DER encodings of all fixtures keyed by name.
func All() map[string][]byte {
	m := make(map[string][]byte, len(Names))
	for _, name := range Names {
		m[name] = DER(name)
	}
	return m
}
