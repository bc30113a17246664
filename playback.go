// SPDX-License-Identifier: EPL-2.0

package voxpad

import (
	"time"

	"github.com/jvgoveira/voxpad/hal"
)

// play drives both output channels from buf at the capture cadence, so
// playback lasts exactly as long as the capture did regardless of content.
// Both channels always carry the same value. The final action, whatever the
// buffer held, writes zero to both channels so the outputs do not idle at
// the last sample's duty. The play indicator stays on for the whole pass.
func play(board hal.Board, buf *SampleBuffer, period time.Duration) {
	board.SetIndicator(hal.IndicatorPlay, true)

	for _, v := range buf.data {
		board.SetOutputLevel(hal.ChannelLeft, v)
		board.SetOutputLevel(hal.ChannelRight, v)
		board.Sleep(period)
	}

	board.SetOutputLevel(hal.ChannelLeft, 0)
	board.SetOutputLevel(hal.ChannelRight, 0)

	board.SetIndicator(hal.IndicatorPlay, false)
}
