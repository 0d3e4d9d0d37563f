// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package scenedef parses scene definition files into a scene tree.
// Definitions are authored as JSONC (JSON extended with // line
// comments, /* block comments */, and trailing commas) and mirror the
// tree's three levels: files contain models, models contain top-level
// groups, and groups nest.
//
// Attributes are written as an array of {"key": ..., "val": ...}
// objects rather than a JSON object so the definition preserves
// attribute order and may repeat keys, both of which the exporter
// keeps.
package scenedef

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/glbforge/glbforge/lib/scene"
)

// Definition is the root of a scene definition file.
type Definition struct {
	Files []FileDef `json:"files"`
}

// FileDef describes one file-kind root and its models.
type FileDef struct {
	Name   string     `json:"name,omitempty"`
	Models []ModelDef `json:"models"`
}

// ModelDef describes one model and its top-level groups.
type ModelDef struct {
	Name   string     `json:"name,omitempty"`
	Groups []GroupDef `json:"groups"`
}

// GroupDef describes one group: optional name, ordered attributes,
// nested groups.
type GroupDef struct {
	Name       string         `json:"name,omitempty"`
	Attributes []AttributeDef `json:"attributes,omitempty"`
	Groups     []GroupDef     `json:"groups,omitempty"`
}

// AttributeDef is one ordered key/value pair of a group.
type AttributeDef struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result and builds the scene tree it describes.
func Parse(data []byte) (*scene.Store, error) {
	stripped := jsonc.ToJSON(data)

	var definition Definition
	if err := json.Unmarshal(stripped, &definition); err != nil {
		return nil, fmt.Errorf("parsing scene definition: %w", err)
	}

	return Build(&definition), nil
}

// ReadFile reads a JSONC scene definition from disk and builds the
// scene tree it describes.
func ReadFile(path string) (*scene.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return store, nil
}

// Build constructs the scene tree for a parsed definition. The
// returned store owns every node.
func Build(definition *Definition) *scene.Store {
	store := scene.NewStore()
	for _, fileDef := range definition.Files {
		file := store.NewFile(fileDef.Name)
		for _, modelDef := range fileDef.Models {
			model := store.NewModel(file, modelDef.Name)
			for _, groupDef := range modelDef.Groups {
				buildGroup(store, model, &groupDef)
			}
		}
	}
	return store
}

// buildGroup constructs one group and its subtree under parent.
func buildGroup(store *scene.Store, parent *scene.Group, definition *GroupDef) {
	group := store.NewGroup(parent, definition.Name)
	for _, attribute := range definition.Attributes {
		group.AddAttribute(attribute.Key, attribute.Val)
	}
	for _, child := range definition.Groups {
		buildGroup(store, group, &child)
	}
}
