// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package gltf implements the one-shot export of a scene tree
// (lib/scene) into a GLB binary container: a 12-byte header followed
// by a JSON chunk holding the glTF 2.0 document and a BIN chunk
// holding concatenated raw payloads. All container fields are
// little-endian 32-bit values.
//
// The export pipeline has four stages, each usable on its own:
//
//   - Projection: a post-order depth-first walk that turns every
//     group-kind node of the tree into one entry of a flat,
//     index-addressed node array. File and model levels are structural
//     only: their group descendants become the scene's root nodes and
//     the levels themselves emit nothing. Children reference each
//     other by array index, and a child's index is always assigned
//     before its parent's, so the array contains no forward references.
//
//   - Document assembly: the node array and root index list are
//     wrapped into a single-scene glTF document with a fixed top-level
//     member order. Mesh, accessor, buffer-view, and buffer arrays are
//     present but empty; geometry export is a separate concern.
//
//   - Payload accumulation: [Payload] records byte spans destined for
//     the BIN chunk, either borrowing the caller's slice or copying it,
//     and assigns each span a contiguous offset. The running total is
//     bounded by the container's 32-bit length fields.
//
//   - Container writing: [EncodeGLB] serializes the document compactly,
//     pads both chunks to the format's 4-byte alignment, and writes
//     header + chunk headers + chunk payloads with exact declared
//     lengths, including the true total file length in the header.
//
// [Export] ties the stages together for the common case of writing one
// file to disk, reporting failures through an injected *slog.Logger.
package gltf
