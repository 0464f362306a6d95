// Copyright 2026 The Strpack Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package strpack

import "sync/atomic"

// Stats is a point-in-time snapshot of the store's counters. All counters
// are cumulative over the process lifetime and never decrease.
type Stats struct {
	// Strings is the number of distinct strings interned.
	Strings uint64

	// Hits counts intern calls answered from the canonical set without
	// writing a record.
	Hits uint64

	// Regions is the number of regions allocated, the active one included.
	Regions uint64

	// BytesUsed is the total size of committed records, length prefixes
	// included.
	BytesUsed uint64

	// BytesLost is the total size of region tails abandoned by rotation.
	BytesLost uint64
}

// ReadStats returns a snapshot of the store's counters. It takes no locks,
// so counters racing with concurrent interns may be mutually inconsistent
// by a call or two. Each counter is individually accurate.
func ReadStats() Stats {
	return Stats{
		Strings:   atomic.LoadUint64(&root.strings),
		Hits:      atomic.LoadUint64(&root.hits),
		Regions:   atomic.LoadUint64(&root.regions),
		BytesUsed: atomic.LoadUint64(&root.used),
		BytesLost: atomic.LoadUint64(&root.lost),
	}
}
