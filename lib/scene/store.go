// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package scene

// Store owns a scene tree: every node reachable from Roots was created
// through one of the Store's constructors and stays valid for the
// Store's lifetime. A Store is built once and then read; it is not safe
// for concurrent mutation.
type Store struct {
	roots []*Group
}

// NewStore creates an empty store with no files.
func NewStore() *Store {
	return &Store{}
}

// NewFile appends a new file-kind root to the store and returns it.
func (s *Store) NewFile(name string) *Group {
	file := &Group{Kind: KindFile, Name: name}
	s.roots = append(s.roots, file)
	return file
}

// NewModel appends a new model-kind node under file and returns it.
func (s *Store) NewModel(file *Group, name string) *Group {
	model := &Group{Kind: KindModel, Name: name}
	file.Children = append(file.Children, model)
	return model
}

// NewGroup appends a new group-kind node under parent and returns it.
// The parent is either a model (making the group a top-level group) or
// another group.
func (s *Store) NewGroup(parent *Group, name string) *Group {
	group := &Group{Kind: KindGroup, Name: name}
	parent.Children = append(parent.Children, group)
	return group
}

// Roots returns the file-kind roots in insertion order. The returned
// slice is the store's own; callers must not modify it.
func (s *Store) Roots() []*Group {
	return s.roots
}

// GroupCount returns the number of group-kind nodes in the whole tree.
// File and model nodes are not counted.
func (s *Store) GroupCount() int {
	var count int
	var walk func(g *Group)
	walk = func(g *Group) {
		if g.Kind == KindGroup {
			count++
		}
		for _, child := range g.Children {
			walk(child)
		}
	}
	for _, root := range s.roots {
		walk(root)
	}
	return count
}
