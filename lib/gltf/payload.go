// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package gltf

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrPayloadTooLarge is returned by [Payload.Add] when recording a
// span would push the BIN chunk's total length past what the
// container's 32-bit length fields can express.
var ErrPayloadTooLarge = errors.New("payload exceeds the container's 32-bit size limit")

// payloadItem is one recorded span. A borrowed item aliases the
// caller's slice; an owned item holds a private copy.
type payloadItem struct {
	data     []byte
	borrowed bool
}

// Payload accumulates the byte spans that form the container's BIN
// chunk. Each span is assigned a byte offset equal to the sum of the
// lengths of all previously recorded spans: offsets are contiguous, in
// insertion order, with no padding between spans.
//
// The zero value is an empty payload ready for use. A Payload belongs
// to one export call and is not safe for concurrent use.
type Payload struct {
	items []payloadItem
	total uint32
}

// Add records a span and returns the offset at which it will begin
// within the BIN chunk. When copyData is true the bytes are duplicated
// into payload-owned memory and the caller's slice may be mutated or
// discarded immediately. When copyData is false the span aliases the
// caller's slice, which must stay valid and unmutated until the
// container has been written.
//
// A zero-length span is legal: it consumes an offset and contributes
// no bytes. Returns [ErrPayloadTooLarge] if the running total would
// exceed the 32-bit limit.
func (p *Payload) Add(data []byte, copyData bool) (uint32, error) {
	if uint64(p.total)+uint64(len(data)) > math.MaxUint32 {
		return 0, ErrPayloadTooLarge
	}

	stored := data
	borrowed := true
	if copyData {
		stored = append([]byte(nil), data...)
		borrowed = false
	}
	p.items = append(p.items, payloadItem{data: stored, borrowed: borrowed})

	offset := p.total
	p.total += uint32(len(data))
	return offset, nil
}

// Len returns the total byte length of all recorded spans: the BIN
// chunk's payload length before alignment padding.
func (p *Payload) Len() uint32 {
	return p.total
}

// Count returns the number of recorded spans.
func (p *Payload) Count() int {
	return len(p.items)
}

// WriteTo writes every recorded span to w in insertion order with no
// separators. Implements io.WriterTo.
func (p *Payload) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for i, item := range p.items {
		n, err := w.Write(item.data)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("writing payload span %d at offset %d: %w", i, written-int64(n), err)
		}
	}
	return written, nil
}
