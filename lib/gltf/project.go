// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package gltf

import "github.com/glbforge/glbforge/lib/scene"

// projector carries the state of one tree-to-node-array projection:
// the append-only node array and the option controlling attribute
// export.
type projector struct {
	includeAttributes bool
	nodes             []Node
}

// projectGroup converts one group-kind tree node into exactly one
// entry of the node array and returns its index. The walk is
// post-order: every child subtree is fully projected (and indexed)
// before the parent's index is assigned, so child indices are always
// lower than the parent's and the array never contains forward
// references.
func (p *projector) projectGroup(group *scene.Group) uint32 {
	node := Node{Name: group.Name}

	if p.includeAttributes && len(group.Attributes) > 0 {
		extras := make(Extras, 0, len(group.Attributes))
		for _, attribute := range group.Attributes {
			extras = append(extras, Member{Key: attribute.Key, Val: attribute.Val})
		}
		node.Extras = extras
	}

	if len(group.Children) > 0 {
		children := make([]uint32, 0, len(group.Children))
		for _, child := range group.Children {
			children = append(children, p.projectGroup(child))
		}
		node.Children = children
	}

	index := uint32(len(p.nodes))
	p.nodes = append(p.nodes, node)
	return index
}

// projectModel walks the top-level groups of one model. The model
// level itself emits nothing: each group's index is appended directly
// to the scene's root list.
func (p *projector) projectModel(roots []uint32, model *scene.Group) []uint32 {
	for _, group := range model.Children {
		roots = append(roots, p.projectGroup(group))
	}
	return roots
}

// projectFile walks the models of one file. Like the model level, the
// file level emits nothing of its own.
func (p *projector) projectFile(roots []uint32, file *scene.Group) []uint32 {
	for _, model := range file.Children {
		roots = p.projectModel(roots, model)
	}
	return roots
}

// projectStore projects every file in the store and returns the root
// index list in traversal order along with the complete node array.
// Both return values are non-nil even for an empty store.
func projectStore(store *scene.Store, includeAttributes bool) (roots []uint32, nodes []Node) {
	p := &projector{includeAttributes: includeAttributes}
	roots = []uint32{}
	for _, file := range store.Roots() {
		roots = p.projectFile(roots, file)
	}
	if p.nodes == nil {
		p.nodes = []Node{}
	}
	return roots, p.nodes
}
