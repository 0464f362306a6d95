// Copyright 2026 The Strpack Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package strpack

import "errors"

// ErrTooLong is returned when a candidate string's byte length exceeds
// MaxLen. Errors returned by Intern and InternBytes wrap it, so callers
// should test with errors.Is.
var ErrTooLong = errors.New("string exceeds 255 bytes")

// errZeroHandle rejects marshaling a Handle that refers to nothing.
var errZeroHandle = errors.New("strpack: cannot marshal the zero Handle")
