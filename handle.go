// Copyright 2026 The Strpack Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package strpack

import (
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Handle is a one-word reference to an interned string. Handles for equal
// content are identical, so == on Handle is content equality at pointer
// cost, and Handle is a valid map key. The zero Handle refers to nothing;
// dereferencing it panics. Obtain handles from Intern, InternBytes,
// MustIntern, or Lookup only.
//
// A live Handle keeps its backing region reachable, which costs nothing
// extra here: the store never releases regions anyway.
type Handle struct {
	rec *byte
}

// String returns the interned text as a zero-copy view of the store's
// memory. It takes no locks. The returned string is immutable for the
// rest of the process and must not be written through unsafe tricks.
func (h Handle) String() string {
	n := int(*h.rec)
	if n == 0 {
		// An empty record may sit on a region's last byte. Returning the
		// literal avoids forming a pointer one past the buffer's end.
		return ""
	}
	return unsafe.String((*byte)(unsafe.Add(unsafe.Pointer(h.rec), 1)), n)
}

// Len returns the byte length of the interned text without materializing
// a string view. It takes no locks.
func (h Handle) Len() int {
	return int(*h.rec)
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.rec == nil
}

// Compare orders handles lexicographically by content, returning -1, 0,
// or +1 like strings.Compare. Identical handles short-circuit without
// touching the content.
func (h Handle) Compare(other Handle) int {
	if h.rec == other.rec {
		return 0
	}
	return strings.Compare(h.String(), other.String())
}

// Sum64 returns the xxhash digest of the interned content, for callers
// feeding handles into hash-based structures that cannot use Handle
// itself as the key.
func (h Handle) Sum64() uint64 {
	return xxhash.Sum64String(h.String())
}

// MarshalText implements encoding.TextMarshaler. The zero Handle has no
// content and does not marshal.
func (h Handle) MarshalText() ([]byte, error) {
	if h.rec == nil {
		return nil, errZeroHandle
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by interning text.
// It fails with ErrTooLong wrapped when text exceeds MaxLen bytes.
func (h *Handle) UnmarshalText(text []byte) error {
	interned, err := InternBytes(text)
	if err != nil {
		return err
	}
	*h = interned
	return nil
}
