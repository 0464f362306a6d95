// Copyright 2026 The Strpack Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package arena implements the fixed-capacity bump regions that back the
// string store.
//
// A Region is a single 1 MiB buffer written front to back. Records are
// packed with no padding: one length byte followed by that many content
// bytes. Regions are never resized, never compacted, and never freed.
// Once Insert returns, the written record is immutable for the rest of
// the process, so readers holding a record pointer need no coordination.
//
// When the active Region cannot fit the next record it is abandoned in
// place and a fresh Region takes over. The unused tail of an abandoned
// Region is wasted, never reclaimed. With records capped at MaxRecord
// bytes the waste per Region is bounded and small relative to Size.
package arena

// Size is the fixed capacity of every Region in bytes.
const Size = 1 << 20

// MaxRecord is the largest content length a record can carry. The length
// prefix is a single byte.
const MaxRecord = 255

// Region is a bump allocator over one fixed-size buffer. The zero value
// is not usable; call New. A Region is not safe for concurrent writes:
// the caller serializes Insert, while committed records may be read at
// any time without locking.
type Region struct {
	buf []byte
	pos int
}

// New returns an empty Region backed by a freshly allocated buffer. If
// the allocation itself fails the runtime aborts the process, which is
// the intended behavior for a store that can never shed memory.
func New() *Region {
	return &Region{buf: make([]byte, Size)}
}

// Insert writes the record for content and returns the Region holding it
// together with a pointer to the record's length byte. If the receiver
// cannot fit the record a brand-new Region is allocated and written
// instead; the caller must adopt the returned Region as the active one.
// The caller guarantees len(content) <= MaxRecord.
func (r *Region) Insert(content string) (*Region, *byte) {
	t := r
	// A record occupies len+1 bytes, so it fits only when the free space
	// strictly exceeds the content length. A fresh Region always fits.
	for len(t.buf)-t.pos <= len(content) {
		t = New()
	}
	t.buf[t.pos] = byte(len(content))
	copy(t.buf[t.pos+1:], content)
	rec := &t.buf[t.pos]
	t.pos += len(content) + 1
	return t, rec
}

// Len returns the number of bytes committed to records, length prefixes
// included.
func (r *Region) Len() int {
	return r.pos
}

// Cap returns the fixed capacity of the Region's buffer.
func (r *Region) Cap() int {
	return len(r.buf)
}

// Remaining returns the free space left past the last record.
func (r *Region) Remaining() int {
	return len(r.buf) - r.pos
}
