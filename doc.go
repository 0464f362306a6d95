// Copyright 2026 The Strpack Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package strpack provides global, permanent, packed storage for short
// strings.
//
// Interning a string hands back a Handle, a single-word reference into
// the store. Equal content always yields the same Handle, so handles
// compare with == in constant time no matter how long the strings are,
// and a Handle dereferences to its text with no locking and no copying.
//
// The store is a process-wide singleton. Strings up to MaxLen bytes are
// packed back to back into fixed-size regions as length-prefixed records;
// regions are allocated on demand and never freed, so every Handle stays
// valid until the process exits. There is no Delete and no Close. The
// intended use is workloads with heavy repetition over a bounded
// vocabulary, such as identifiers, labels, and enum-like values, where
// the one permanent copy per distinct string is cheaper than the churn
// it replaces.
//
// Intern and friends are safe for concurrent use. Dereferencing handles
// takes no part in the store's locking at all.
package strpack
