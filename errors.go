// SPDX-License-Identifier: EPL-2.0

package voxpad

import "errors"

var (
	ErrNilBoard        = errors.New("board must not be nil")
	ErrBadDuration     = errors.New("duration must be at least 1 second")
	ErrBadSampleRate   = errors.New("sample rate must be positive")
	ErrBadAlpha        = errors.New("alpha must be within [0, 1]")
	ErrBadWindow       = errors.New("window must be at least 1")
	ErrBadDebounce     = errors.New("debounce must not be negative")
	ErrUnknownStrategy = errors.New("unknown smoothing strategy")
)
