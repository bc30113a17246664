// SPDX-License-Identifier: EPL-2.0

package voxpad

import (
	"time"

	"github.com/jvgoveira/voxpad/dsp"
	"github.com/jvgoveira/voxpad/hal"
)

// capture fills every slot of buf from the board's analog input at the
// sample cadence, passing each raw reading through the smoothing strategy,
// then normalizes the full buffer. The record indicator stays on for the
// whole pass. There is no early exit: once started, capture always runs to
// completion, and reads are assumed to succeed.
func capture(board hal.Board, buf *SampleBuffer, strat dsp.Strategy, period time.Duration) {
	board.SetIndicator(hal.IndicatorRecord, true)

	strat.Reset()
	for i := range buf.data {
		raw := board.ReadSample()
		buf.data[i] = strat.Apply(raw)
		board.Sleep(period)
	}

	dsp.Normalize(buf.data)

	board.SetIndicator(hal.IndicatorRecord, false)
}
