// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package gltf

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Container format constants. All multi-byte fields are little-endian
// uint32 values.
const (
	// glbMagic is the ASCII string "glTF" as a little-endian uint32.
	glbMagic = 0x46546C67

	// glbVersion is the container format version.
	glbVersion = 2

	// glbHeaderSize is the fixed file header: magic + version + total
	// length.
	glbHeaderSize = 12

	// chunkHeaderSize is the per-chunk header: length + type tag.
	chunkHeaderSize = 8

	// chunkAlignment is the required alignment of every chunk payload.
	// Declared chunk lengths include the padding that satisfies it.
	chunkAlignment = 4

	// chunkTypeJSON tags the structured-content chunk ("JSON").
	chunkTypeJSON = 0x4E4F534A

	// chunkTypeBIN tags the binary-payload chunk ("BIN\0").
	chunkTypeBIN = 0x004E4942

	// jsonPadByte fills the JSON chunk to alignment. The format
	// requires spaces so padded JSON stays parseable.
	jsonPadByte = 0x20
)

// paddingFor returns the number of fill bytes needed to bring length
// up to the chunk alignment boundary.
func paddingFor(length int) int {
	return (chunkAlignment - length%chunkAlignment) % chunkAlignment
}

// EncodeGLB writes the complete container to w: the 12-byte header
// with the true total file length, the JSON chunk carrying the compact
// document serialization padded with spaces to a 4-byte boundary, and
// the BIN chunk carrying the payload's spans in insertion order padded
// with zeros. Declared chunk lengths include the padding, and the
// declared total equals exactly the number of bytes written.
//
// A nil payload writes an empty BIN chunk. Every failed write is
// reported with the step that failed.
func EncodeGLB(w io.Writer, document *Document, payload *Payload) error {
	if payload == nil {
		payload = &Payload{}
	}

	jsonBytes, err := document.EncodeJSON()
	if err != nil {
		return err
	}
	jsonPadding := paddingFor(len(jsonBytes))
	binPadding := paddingFor(int(payload.Len()))

	total := uint64(glbHeaderSize) +
		uint64(chunkHeaderSize) + uint64(len(jsonBytes)) + uint64(jsonPadding) +
		uint64(chunkHeaderSize) + uint64(payload.Len()) + uint64(binPadding)
	if total > math.MaxUint32 {
		return fmt.Errorf("container is %d bytes: %w", total, ErrPayloadTooLarge)
	}

	// File header.
	for _, field := range []struct {
		name  string
		value uint32
	}{
		{"magic", glbMagic},
		{"version", glbVersion},
		{"total length", uint32(total)},
	} {
		if err := writeUint32(w, field.value); err != nil {
			return fmt.Errorf("writing header %s: %w", field.name, err)
		}
	}

	// JSON chunk.
	if err := writeUint32(w, uint32(len(jsonBytes)+jsonPadding)); err != nil {
		return fmt.Errorf("writing JSON chunk length: %w", err)
	}
	if err := writeUint32(w, chunkTypeJSON); err != nil {
		return fmt.Errorf("writing JSON chunk type: %w", err)
	}
	if _, err := w.Write(jsonBytes); err != nil {
		return fmt.Errorf("writing JSON chunk payload: %w", err)
	}
	if err := writePadding(w, jsonPadding, jsonPadByte); err != nil {
		return fmt.Errorf("writing JSON chunk padding: %w", err)
	}

	// BIN chunk.
	if err := writeUint32(w, payload.Len()+uint32(binPadding)); err != nil {
		return fmt.Errorf("writing BIN chunk length: %w", err)
	}
	if err := writeUint32(w, chunkTypeBIN); err != nil {
		return fmt.Errorf("writing BIN chunk type: %w", err)
	}
	if _, err := payload.WriteTo(w); err != nil {
		return fmt.Errorf("writing BIN chunk payload: %w", err)
	}
	if err := writePadding(w, binPadding, 0); err != nil {
		return fmt.Errorf("writing BIN chunk padding: %w", err)
	}

	return nil
}

// writeUint32 writes v to w as a little-endian 32-bit value.
func writeUint32(w io.Writer, v uint32) error {
	var buffer [4]byte
	binary.LittleEndian.PutUint32(buffer[:], v)
	_, err := w.Write(buffer[:])
	return err
}

// writePadding writes count fill bytes to w. count is at most
// chunkAlignment-1.
func writePadding(w io.Writer, count int, fill byte) error {
	if count == 0 {
		return nil
	}
	padding := [chunkAlignment]byte{fill, fill, fill, fill}
	_, err := w.Write(padding[:count])
	return err
}
