// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package gltf

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// parsedContainer is the decoded layout of an encoded container, used
// by the writer tests to check every declared length against the bytes
// actually present.
type parsedContainer struct {
	version     uint32
	totalLength uint32
	jsonLength  uint32
	jsonPayload []byte
	binLength   uint32
	binPayload  []byte
}

// parseContainer decodes data as a GLB container, validating magic and
// chunk type tags.
func parseContainer(data []byte) (*parsedContainer, error) {
	if len(data) < glbHeaderSize {
		return nil, fmt.Errorf("container is %d bytes, shorter than the header", len(data))
	}
	le := binary.LittleEndian

	if magic := le.Uint32(data[0:]); magic != glbMagic {
		return nil, fmt.Errorf("magic = %#x, want %#x", magic, uint32(glbMagic))
	}
	parsed := &parsedContainer{
		version:     le.Uint32(data[4:]),
		totalLength: le.Uint32(data[8:]),
	}

	offset := glbHeaderSize
	if len(data) < offset+chunkHeaderSize {
		return nil, errors.New("missing JSON chunk header")
	}
	parsed.jsonLength = le.Uint32(data[offset:])
	if chunkType := le.Uint32(data[offset+4:]); chunkType != chunkTypeJSON {
		return nil, fmt.Errorf("first chunk type = %#x, want JSON tag %#x", chunkType, uint32(chunkTypeJSON))
	}
	offset += chunkHeaderSize
	if len(data) < offset+int(parsed.jsonLength) {
		return nil, errors.New("JSON chunk payload shorter than declared")
	}
	parsed.jsonPayload = data[offset : offset+int(parsed.jsonLength)]
	offset += int(parsed.jsonLength)

	if len(data) < offset+chunkHeaderSize {
		return nil, errors.New("missing BIN chunk header")
	}
	parsed.binLength = le.Uint32(data[offset:])
	if chunkType := le.Uint32(data[offset+4:]); chunkType != chunkTypeBIN {
		return nil, fmt.Errorf("second chunk type = %#x, want BIN tag %#x", chunkType, uint32(chunkTypeBIN))
	}
	offset += chunkHeaderSize
	if len(data) < offset+int(parsed.binLength) {
		return nil, errors.New("BIN chunk payload shorter than declared")
	}
	parsed.binPayload = data[offset : offset+int(parsed.binLength)]
	offset += int(parsed.binLength)

	if offset != len(data) {
		return nil, fmt.Errorf("%d trailing bytes after BIN chunk", len(data)-offset)
	}
	return parsed, nil
}

func TestEncodeGLBEmptyDocument(t *testing.T) {
	var buffer bytes.Buffer
	if err := EncodeGLB(&buffer, NewDocument(nil, nil), nil); err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}

	parsed, err := parseContainer(buffer.Bytes())
	if err != nil {
		t.Fatalf("parsing container: %v", err)
	}

	if parsed.version != glbVersion {
		t.Errorf("version = %d, want %d", parsed.version, glbVersion)
	}
	if int(parsed.totalLength) != buffer.Len() {
		t.Errorf("declared total length = %d, actual file length = %d", parsed.totalLength, buffer.Len())
	}
	if parsed.binLength != 0 {
		t.Errorf("BIN chunk length = %d, want 0 for an empty payload", parsed.binLength)
	}
}

func TestEncodeGLBJSONChunkPadding(t *testing.T) {
	// The compact document bytes rarely land on a 4-byte boundary;
	// the declared JSON length must include the space padding and the
	// padded payload must still parse as JSON.
	document := NewDocument([]uint32{0}, []Node{{Name: "root"}})

	var buffer bytes.Buffer
	if err := EncodeGLB(&buffer, document, nil); err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}
	parsed, err := parseContainer(buffer.Bytes())
	if err != nil {
		t.Fatalf("parsing container: %v", err)
	}

	if parsed.jsonLength%chunkAlignment != 0 {
		t.Errorf("JSON chunk length %d is not %d-byte aligned", parsed.jsonLength, chunkAlignment)
	}

	trimmed := bytes.TrimRight(parsed.jsonPayload, " ")
	if padding := len(parsed.jsonPayload) - len(trimmed); padding >= chunkAlignment {
		t.Errorf("JSON padding is %d bytes, want fewer than %d", padding, chunkAlignment)
	}
	for _, b := range parsed.jsonPayload[len(trimmed):] {
		if b != jsonPadByte {
			t.Errorf("JSON padding byte = %#x, want %#x", b, byte(jsonPadByte))
		}
	}

	var decoded map[string]any
	if err := json.Unmarshal(parsed.jsonPayload, &decoded); err != nil {
		t.Fatalf("padded JSON payload does not parse: %v", err)
	}

	compact, err := document.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	if !bytes.Equal(trimmed, compact) {
		t.Errorf("JSON payload (unpadded) = %s, want %s", trimmed, compact)
	}
}

func TestEncodeGLBBinChunk(t *testing.T) {
	var payload Payload
	if _, err := payload.Add([]byte("hello"), false); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := payload.Add([]byte(", world"), true); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	var buffer bytes.Buffer
	if err := EncodeGLB(&buffer, NewDocument(nil, nil), &payload); err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}
	parsed, err := parseContainer(buffer.Bytes())
	if err != nil {
		t.Fatalf("parsing container: %v", err)
	}

	if parsed.binLength%chunkAlignment != 0 {
		t.Errorf("BIN chunk length %d is not %d-byte aligned", parsed.binLength, chunkAlignment)
	}

	content := []byte("hello, world")
	if !bytes.Equal(parsed.binPayload[:len(content)], content) {
		t.Errorf("BIN payload = %q, want prefix %q", parsed.binPayload, content)
	}
	if wantLength := len(content) + paddingFor(len(content)); int(parsed.binLength) != wantLength {
		t.Errorf("BIN chunk length = %d, want %d (payload + padding)", parsed.binLength, wantLength)
	}
	for i, b := range parsed.binPayload[len(content):] {
		if b != 0 {
			t.Errorf("BIN padding byte %d = %#x, want 0", i, b)
		}
	}
	if int(parsed.totalLength) != buffer.Len() {
		t.Errorf("declared total length = %d, actual file length = %d", parsed.totalLength, buffer.Len())
	}
}

func TestEncodeGLBAlignedPayloadNeedsNoPadding(t *testing.T) {
	var payload Payload
	if _, err := payload.Add([]byte("8 bytes!"), false); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	var buffer bytes.Buffer
	if err := EncodeGLB(&buffer, NewDocument(nil, nil), &payload); err != nil {
		t.Fatalf("EncodeGLB failed: %v", err)
	}
	parsed, err := parseContainer(buffer.Bytes())
	if err != nil {
		t.Fatalf("parsing container: %v", err)
	}
	if parsed.binLength != 8 {
		t.Errorf("BIN chunk length = %d, want 8 with no padding", parsed.binLength)
	}
}

// failingWriter fails on the nth Write call.
type failingWriter struct {
	calls    int
	failCall int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls >= w.failCall {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestEncodeGLBWriteFailuresNameTheStep(t *testing.T) {
	var payload Payload
	if _, err := payload.Add([]byte("data"), false); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	document := NewDocument(nil, nil)

	// Walk the failure point through every write and check each error
	// identifies a step.
	for failCall := 1; ; failCall++ {
		writer := &failingWriter{failCall: failCall}
		err := EncodeGLB(writer, document, &payload)
		if err == nil {
			if failCall == 1 {
				t.Fatal("EncodeGLB succeeded with a writer that always fails")
			}
			break
		}
		if msg := err.Error(); !bytes.Contains([]byte(msg), []byte("writing")) {
			t.Errorf("failure at write %d has no step description: %v", failCall, err)
		}
	}
}

func TestPaddingFor(t *testing.T) {
	wants := map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 4: 0, 5: 3, 8: 0}
	for length, want := range wants {
		if got := paddingFor(length); got != want {
			t.Errorf("paddingFor(%d) = %d, want %d", length, got, want)
		}
	}
}
