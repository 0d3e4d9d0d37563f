// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package scene models the source hierarchy that the exporter reads: a
// tree of nodes in three kinds (file, model, group), each with an
// optional name, ordered key/value attributes, and ordered children.
//
// A [Store] owns every node in the tree. Exporters and other consumers
// treat the tree as read-only for the duration of one call; nothing in
// this package mutates a node after construction except the Store's own
// append operations.
//
// Only group-kind nodes carry exportable content. File and model nodes
// exist to organize groups and never appear in exporter output; see
// lib/gltf for how the two levels are flattened.
package scene
