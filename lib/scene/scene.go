// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package scene

// Kind distinguishes the structural role of a node in the source tree.
type Kind int

const (
	// KindFile is a top-level node grouping the models of one input
	// file. File nodes are structural only and never appear in
	// exporter output.
	KindFile Kind = iota

	// KindModel groups the top-level groups of one model within a
	// file. Model nodes are structural only, like file nodes.
	KindModel

	// KindGroup is a content node: the only kind that carries a name,
	// attributes, and nested groups into exporter output.
	KindGroup
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindModel:
		return "model"
	case KindGroup:
		return "group"
	}
	return "unknown"
}

// Attribute is one key/value pair attached to a group. Attributes keep
// their insertion order and keys are not deduplicated; consumers decide
// how to treat repeated keys.
type Attribute struct {
	Key string
	Val string
}

// Group is one node in the source tree. The name covers all three
// kinds for historical reasons: files and models are represented with
// the same struct, distinguished by Kind.
//
// Children are ordered. The tree shape is file → model → group, with
// groups nesting arbitrarily below that: a file's children are models,
// a model's children are groups, and a group's children are groups.
type Group struct {
	// Kind is the structural role of this node.
	Kind Kind

	// Name is the optional display name. Empty means unnamed.
	Name string

	// Attributes are the node's key/value pairs in insertion order.
	// Only group-kind nodes meaningfully carry attributes.
	Attributes []Attribute

	// Children are the node's child nodes in insertion order.
	Children []*Group
}

// AddAttribute appends one key/value pair to the node. Repeated keys
// are kept; insertion order is preserved.
func (g *Group) AddAttribute(key, val string) {
	g.Attributes = append(g.Attributes, Attribute{Key: key, Val: val})
}
