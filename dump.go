// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"encoding/base64"
	"encoding/json"
)

// jsonTag is the structural dump of a Tag. Field order is part of the format.
type jsonTag struct {
	TagNumber     byte    `json:"TagNumber"`
	TagName       string  `json:"TagName"`
	TagClass      uint8   `json:"TagClass"`
	IsConstructed bool    `json:"IsConstructed"`
	IsUniversal   bool    `json:"IsUniversal"`
	IsEoc         bool    `json:"IsEoc"`
	Children      []*Tag  `json:"Children,omitempty"`
	Content       *string `json:"Content,omitempty"`
}

// MarshalJSON implements [json.Marshaler]. The dump contains the identifier
// octet, the derived properties of t (the class as its number 0 to 3) and either its children or its base64
// encoded content. It is meant for diagnostics and golden tests. There is no
// corresponding unmarshal operation.
func (t *Tag) MarshalJSON() ([]byte, error) {
	v := jsonTag{
		TagNumber:     t.Number,
		TagName:       t.Name(),
		TagClass:      uint8(t.Class()),
		IsConstructed: t.IsConstructed(),
		IsUniversal:   t.IsUniversal(),
		IsEoc:         t.IsEOC(),
		Children:      t.Children,
	}
	if len(t.Children) == 0 {
		content := base64.StdEncoding.EncodeToString(t.Content)
		v.Content = &content
	}
	return json.Marshal(v)
}
