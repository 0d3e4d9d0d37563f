// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package gltf

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestPayloadOffsetsAreContiguous(t *testing.T) {
	var payload Payload

	spans := [][]byte{
		[]byte("alpha"),
		[]byte(""),
		[]byte("longer span of bytes"),
		[]byte("z"),
	}

	var wantOffset uint32
	for i, span := range spans {
		offset, err := payload.Add(span, false)
		if err != nil {
			t.Fatalf("Add(span %d) failed: %v", i, err)
		}
		if offset != wantOffset {
			t.Errorf("span %d offset = %d, want %d", i, offset, wantOffset)
		}
		wantOffset += uint32(len(span))
	}

	if payload.Len() != wantOffset {
		t.Errorf("Len() = %d, want %d", payload.Len(), wantOffset)
	}
	if payload.Count() != len(spans) {
		t.Errorf("Count() = %d, want %d", payload.Count(), len(spans))
	}
}

func TestPayloadCopyModeOwnsBytes(t *testing.T) {
	var payload Payload

	aliased := []byte("alias")
	copied := []byte("owned")

	offsetA, err := payload.Add(aliased, false)
	if err != nil {
		t.Fatalf("Add(aliased) failed: %v", err)
	}
	offsetB, err := payload.Add(copied, true)
	if err != nil {
		t.Fatalf("Add(copied) failed: %v", err)
	}

	if offsetA != 0 || offsetB != 5 {
		t.Errorf("offsets = %d, %d, want 0, 5", offsetA, offsetB)
	}

	// Clobbering the copied span's source must not corrupt the
	// recorded bytes; clobbering the aliased span's source is visible
	// by design of alias mode.
	copy(copied, "XXXXX")

	var buffer bytes.Buffer
	written, err := payload.WriteTo(&buffer)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if written != 10 {
		t.Errorf("WriteTo wrote %d bytes, want 10", written)
	}
	if got := buffer.String(); got != "aliasowned" {
		t.Errorf("payload bytes = %q, want %q", got, "aliasowned")
	}
}

func TestPayloadAliasModeReflectsCallerSlice(t *testing.T) {
	var payload Payload

	source := []byte("before")
	if _, err := payload.Add(source, false); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	copy(source, "after!")

	var buffer bytes.Buffer
	if _, err := payload.WriteTo(&buffer); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if got := buffer.String(); got != "after!" {
		t.Errorf("aliased payload bytes = %q, want %q", got, "after!")
	}
}

func TestPayloadSizeLimit(t *testing.T) {
	var payload Payload
	payload.total = math.MaxUint32 - 2

	if _, err := payload.Add([]byte("12345"), false); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("Add past the limit returned %v, want ErrPayloadTooLarge", err)
	}

	// Exactly reaching the limit is legal.
	offset, err := payload.Add([]byte("12"), false)
	if err != nil {
		t.Fatalf("Add up to the limit failed: %v", err)
	}
	if offset != math.MaxUint32-2 {
		t.Errorf("offset = %d, want %d", offset, uint32(math.MaxUint32-2))
	}
	if payload.Len() != math.MaxUint32 {
		t.Errorf("Len() = %d, want %d", payload.Len(), uint32(math.MaxUint32))
	}
}

func TestPayloadWriteToEmptyWritesNothing(t *testing.T) {
	var payload Payload

	var buffer bytes.Buffer
	written, err := payload.WriteTo(&buffer)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if written != 0 || buffer.Len() != 0 {
		t.Errorf("empty payload wrote %d bytes, want 0", written)
	}
}
