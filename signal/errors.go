// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	ErrMonoOnly       = errors.New("source must be mono")
	ErrBadRate        = errors.New("target sample rate must be positive")
	ErrNotWAV         = errors.New("not a WAV file")
	ErrNotAIFF        = errors.New("not an AIFF file")
	ErrUnsupportedPCM = errors.New("unsupported PCM layout")
)
