// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package gltf

import (
	"io"
	"log/slog"
	"os"

	"github.com/zeebo/blake3"

	"github.com/glbforge/glbforge/lib/scene"
)

// Options controls one export call.
type Options struct {
	// IncludeAttributes attaches each group's key/value attributes to
	// its node as an extras object. Groups without attributes never
	// get an extras member regardless of this setting.
	IncludeAttributes bool

	// Generator, when non-empty, is recorded in the document's asset
	// descriptor. Empty leaves the asset object empty.
	Generator string

	// Payload supplies pre-recorded binary spans for the BIN chunk.
	// Nil writes an empty BIN chunk.
	Payload *Payload

	// Dump, when non-nil, receives an indented rendering of the
	// document after a successful export. Diagnostics only: it never
	// affects the container bytes, and a dump failure does not fail
	// the export.
	Dump io.Writer
}

// BuildDocument projects the store's tree into a single-scene glTF
// document: every group-kind node becomes one entry of the node array,
// the top-level groups (those directly under a model) become the
// scene's roots, and the file/model levels disappear.
func BuildDocument(store *scene.Store, options Options) *Document {
	roots, nodes := projectStore(store, options.IncludeAttributes)
	document := NewDocument(roots, nodes)
	document.Asset.Generator = options.Generator
	return document
}

// ExportTo builds the document from store and encodes the complete
// container to w. Returns the BLAKE3 hash of the encoded bytes and the
// document itself. The Dump option is ignored here; it belongs to
// [Export], which owns the logger that reports dump failures.
func ExportTo(w io.Writer, store *scene.Store, options Options) (ContainerHash, *Document, error) {
	var hash ContainerHash

	document := BuildDocument(store, options)

	hasher := blake3.New()
	if err := EncodeGLB(io.MultiWriter(w, hasher), document, options.Payload); err != nil {
		return hash, nil, err
	}
	copy(hash[:], hasher.Sum(nil))

	return hash, document, nil
}

// Export writes the store's scene to a container file at path and
// returns whether every write succeeded. Each failure is reported
// exactly once through logger at error level with the destination path
// and the failing step; a nil logger falls back to slog.Default().
//
// A failed export may leave a partial file at path: the destination is
// written in place, not via a temporary file.
func Export(store *scene.Store, options Options, logger *slog.Logger, path string) bool {
	if logger == nil {
		logger = slog.Default()
	}

	out, err := os.Create(path)
	if err != nil {
		logger.Error("opening export destination", "path", path, "error", err)
		return false
	}

	hash, document, err := ExportTo(out, store, options)
	if err != nil {
		logger.Error("writing container", "path", path, "error", err)
		out.Close()
		return false
	}

	if err := out.Close(); err != nil {
		logger.Error("closing export destination", "path", path, "error", err)
		return false
	}

	if options.Dump != nil {
		if err := document.EncodeIndentedTo(options.Dump); err != nil {
			// The container is already complete on disk; a broken
			// diagnostic stream does not invalidate it.
			logger.Warn("document dump failed", "path", path, "error", err)
		}
	}

	payloadBytes := uint32(0)
	if options.Payload != nil {
		payloadBytes = options.Payload.Len()
	}
	logger.Info("scene exported",
		"path", path,
		"groups", store.GroupCount(),
		"payloadBytes", payloadBytes,
		"blake3", hash.String())
	return true
}
