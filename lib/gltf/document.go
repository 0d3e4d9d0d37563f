// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package gltf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Document is the root of the glTF 2.0 JSON document carried in the
// container's JSON chunk. Member order is fixed by field order here;
// encoding/json emits struct fields in declaration order.
//
// The four trailing arrays (meshes, accessors, bufferViews, buffers)
// are always present and currently always empty: geometry production
// is outside this exporter's scope, but readers expect the members to
// exist.
type Document struct {
	Asset       Asset        `json:"asset"`
	Scene       uint32       `json:"scene"`
	Scenes      []Scene      `json:"scenes"`
	Nodes       []Node       `json:"nodes"`
	Meshes      []Mesh       `json:"meshes"`
	Accessors   []Accessor   `json:"accessors"`
	BufferViews []BufferView `json:"bufferViews"`
	Buffers     []Buffer     `json:"buffers"`
}

// Asset is the glTF asset descriptor. Both fields are optional; the
// zero value marshals as an empty object.
type Asset struct {
	Version   string `json:"version,omitempty"`
	Generator string `json:"generator,omitempty"`
}

// Scene lists the indices of its root nodes in the document's node
// array. Nodes must be non-nil so an empty scene marshals as
// {"nodes":[]} rather than {"nodes":null}.
type Scene struct {
	Nodes []uint32 `json:"nodes"`
}

// Node is one entry of the document's flat node array: the projection
// of one group-kind tree node. All members are optional; a group with
// no name, no attributes, and no children marshals as {}.
type Node struct {
	Name     string   `json:"name,omitempty"`
	Extras   Extras   `json:"extras,omitempty"`
	Children []uint32 `json:"children,omitempty"`
}

// Mesh, Accessor, BufferView, and Buffer are placeholders for document
// sections this exporter declares but never populates.
type (
	Mesh       struct{}
	Accessor   struct{}
	BufferView struct{}
	Buffer     struct{}
)

// Member is one key/value entry of an extras object.
type Member struct {
	Key string
	Val string
}

// Extras is an ordered JSON object holding a node's source attributes.
// Marshaling preserves insertion order and does not deduplicate keys:
// a repeated key appears twice in the output, and which value a reader
// sees is the reader's choice (most JSON parsers keep the last).
type Extras []Member

// MarshalJSON renders the members as a JSON object in slice order.
func (e Extras) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, member := range e {
		if i > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(member.Key)
		if err != nil {
			return nil, fmt.Errorf("marshaling extras key %q: %w", member.Key, err)
		}
		value, err := json.Marshal(member.Val)
		if err != nil {
			return nil, fmt.Errorf("marshaling extras value for key %q: %w", member.Key, err)
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// NewDocument returns a single-scene document skeleton: scene 0, the
// given root indices and nodes, and empty placeholder arrays. Nil
// slices are replaced with empty ones so every array member marshals
// as [].
func NewDocument(rootNodes []uint32, nodes []Node) *Document {
	if rootNodes == nil {
		rootNodes = []uint32{}
	}
	if nodes == nil {
		nodes = []Node{}
	}
	return &Document{
		Scene:       0,
		Scenes:      []Scene{{Nodes: rootNodes}},
		Nodes:       nodes,
		Meshes:      []Mesh{},
		Accessors:   []Accessor{},
		BufferViews: []BufferView{},
		Buffers:     []Buffer{},
	}
}

// EncodeJSON returns the compact serialization of the document: the
// exact bytes carried in the container's JSON chunk (before padding).
func (d *Document) EncodeJSON() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	return data, nil
}

// EncodeIndentedTo writes a two-space-indented rendering of the
// document to w, for diagnostics. The output is not what the container
// carries; EncodeJSON is the canonical form.
func (d *Document) EncodeIndentedTo(w io.Writer) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing document dump: %w", err)
	}
	return nil
}
