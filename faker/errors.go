// SPDX-License-Identifier: MIT
// Package: createfake/faker

package faker

import "errors"

// ErrNilCall indicates a nil *Call where a record is required.
var ErrNilCall = errors.New("faker: nil call")

// ErrCallCountMismatch indicates Verify saw a number of matching calls
// outside the expected Times.
var ErrCallCountMismatch = errors.New("faker: call count mismatch")
