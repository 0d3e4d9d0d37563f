// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()

	if !strings.Contains(info, Version) {
		t.Errorf("Info() = %q, missing version %q", info, Version)
	}
	if !strings.Contains(info, GitCommit) {
		t.Errorf("Info() = %q, missing commit %q", info, GitCommit)
	}
	if !strings.Contains(info, BuildTime) {
		t.Errorf("Info() = %q, missing build time %q", info, BuildTime)
	}
}
