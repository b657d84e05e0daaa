// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marcerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewDefaultsDirectoryIndex(t *testing.T) {
	e := New(KindTruncated, 3, "245", nil)
	if e.DirectoryIndex != -1 {
		t.Errorf("DirectoryIndex = %d, want -1", e.DirectoryIndex)
	}
}

func TestWithDirectoryIndexIsACopy(t *testing.T) {
	e := New(KindInvalidDirectory, 0, "", nil)
	e2 := e.WithDirectoryIndex(5)
	if e.DirectoryIndex != -1 {
		t.Errorf("original mutated: DirectoryIndex = %d", e.DirectoryIndex)
	}
	if e2.DirectoryIndex != 5 {
		t.Errorf("e2.DirectoryIndex = %d, want 5", e2.DirectoryIndex)
	}
}

func TestUnwrapExposesSentinelAndCause(t *testing.T) {
	cause := fmt.Errorf("underlying")
	e := New(KindTruncated, 0, "", cause)
	if !errors.Is(e, ErrTruncated) {
		t.Error("errors.Is(e, ErrTruncated) = false")
	}
	if !errors.Is(e, cause) {
		t.Error("errors.Is(e, cause) = false")
	}
}

func TestUnwrapFallsBackToCauseForUnknownKind(t *testing.T) {
	cause := fmt.Errorf("underlying")
	e := New(KindUnknown, 0, "", cause)
	if !errors.Is(e, cause) {
		t.Error("errors.Is(e, cause) = false for KindUnknown")
	}
}

func TestErrorMessageIncludesContext(t *testing.T) {
	e := New(KindInvalidDirectory, 7, "245", nil).WithDirectoryIndex(2)
	msg := e.Error()
	for _, want := range []string{"record 7", "tag 245", "directory entry 2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}
