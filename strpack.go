// Copyright 2026 The Strpack Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package strpack

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/strpack/strpack/internal/arena"
	"github.com/strpack/strpack/logging"
)

// MaxLen is the maximum byte length Intern accepts. The limit comes from
// the record format: content length is stored in a single prefix byte.
const MaxLen = arena.MaxRecord

// registry is the process-wide canonicalization point, one entry per
// distinct interned string, keyed by content. Map keys alias the store's
// own region memory, never caller buffers, so the registry retains
// exactly one copy of each string.
type registry struct {
	mu  sync.RWMutex
	all map[string]Handle
	cur *arena.Region
	log logging.Logger

	// Counters are updated atomically so ReadStats can read them without
	// taking mu. The hit counter in particular is bumped under the read
	// lock, where plain increments would race.
	strings uint64
	hits    uint64
	regions uint64
	used    uint64
	lost    uint64
}

// root is the only registry. Its map and first region are created on the
// first miss, so importing the package costs no memory up front.
var root = registry{log: logging.NewNoOpLogger()}

// SetLogger replaces the logger the store emits region lifecycle events
// through. The default logger discards everything. Passing nil restores
// the default.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NewNoOpLogger()
	}
	root.mu.Lock()
	root.log = l
	root.mu.Unlock()
}

// Intern returns the canonical Handle for s, storing a permanent copy of
// the content on first sight. Calls with equal content return identical
// handles for the rest of the process. Interning fails only when len(s)
// exceeds MaxLen; the returned error wraps ErrTooLong.
func Intern(s string) (Handle, error) {
	if len(s) > MaxLen {
		return Handle{}, fmt.Errorf("strpack: cannot intern %d bytes: %w", len(s), ErrTooLong)
	}
	return root.intern(s), nil
}

// InternBytes is Intern for a byte slice. b is only read for the duration
// of the call and never retained: on a miss the store copies the content
// into its own memory before anything references it.
func InternBytes(b []byte) (Handle, error) {
	if len(b) > MaxLen {
		return Handle{}, fmt.Errorf("strpack: cannot intern %d bytes: %w", len(b), ErrTooLong)
	}
	// The zero-copy view is safe to hand over: intern reads it before
	// returning and registers its own region-backed copy, never the view.
	return root.intern(unsafe.String(unsafe.SliceData(b), len(b))), nil
}

// MustIntern is Intern for strings known to fit, such as literals. It
// panics when Intern would return an error.
func MustIntern(s string) Handle {
	h, err := Intern(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Lookup returns the canonical Handle for s if s has been interned
// before. Unlike Intern it never stores anything.
func Lookup(s string) (Handle, bool) {
	root.mu.RLock()
	h, ok := root.all[s]
	root.mu.RUnlock()
	return h, ok
}

// intern implements lookup-or-create. The caller has already bounded
// len(s). s itself is never retained, so views over caller-owned buffers
// are safe inputs.
func (r *registry) intern(s string) Handle {
	r.mu.RLock()
	h, ok := r.all[s]
	r.mu.RUnlock()
	if ok {
		atomic.AddUint64(&r.hits, 1)
		return h
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have interned s between the two locks.
	if h, ok := r.all[s]; ok {
		atomic.AddUint64(&r.hits, 1)
		return h
	}

	if r.cur == nil {
		r.cur = arena.New()
		r.all = make(map[string]Handle)
		atomic.AddUint64(&r.regions, 1)
		r.log.Debug("first region allocated (%d bytes)", arena.Size)
	}

	cur, rec := r.cur.Insert(s)
	if cur != r.cur {
		tail := r.cur.Remaining()
		atomic.AddUint64(&r.regions, 1)
		atomic.AddUint64(&r.lost, uint64(tail))
		r.cur = cur
		r.log.WithFields(map[string]any{
			"regions":    atomic.LoadUint64(&r.regions),
			"tail_bytes": tail,
		}).Debug("region exhausted, rotated to a fresh one")
	}

	h = Handle{rec: rec}
	// Key the map by the region-backed view, not s, so the registry never
	// pins a caller's buffer.
	r.all[h.String()] = h
	atomic.AddUint64(&r.strings, 1)
	atomic.AddUint64(&r.used, uint64(len(s))+1)
	return h
}
