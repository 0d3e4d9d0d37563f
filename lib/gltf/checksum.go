// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package gltf

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// ContainerHash is the 32-byte BLAKE3 digest of a complete encoded
// container, header and padding included. It identifies the exact
// bytes on disk; two exports with identical input produce the same
// hash.
type ContainerHash [32]byte

// String returns the canonical hex encoding of the hash, as used in
// logs and CLI output.
func (h ContainerHash) String() string {
	return hex.EncodeToString(h[:])
}

// HashContainer computes the digest of an encoded container held in
// memory.
func HashContainer(data []byte) ContainerHash {
	var hash ContainerHash
	sum := blake3.Sum256(data)
	copy(hash[:], sum[:])
	return hash
}

// HashContainerFile computes the digest of the container at path.
func HashContainerFile(path string) (ContainerHash, error) {
	var hash ContainerHash

	file, err := os.Open(path)
	if err != nil {
		return hash, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return hash, fmt.Errorf("hashing %s: %w", path, err)
	}
	copy(hash[:], hasher.Sum(nil))
	return hash, nil
}
