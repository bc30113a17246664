// SPDX-License-Identifier: EPL-2.0

package dsp

// Strategy is the per-sample smoothing stage the capture phase drives. Apply
// filters one raw analog reading and returns the value to store; Reset
// clears any filter state ahead of a new capture pass. Strategy state is
// scoped to a single capture: the pipeline resets it at the start of each
// pass and never persists it between captures.
type Strategy interface {
	Apply(raw uint16) uint16
	Reset()
}

// Exponential is the default capture strategy: each raw reading is blended
// with the previous filter output via [Smooth] at a fixed Alpha. The
// previous output starts at zero on every Reset.
type Exponential struct {
	Alpha float32

	prev uint16
}

// NewExponential returns an Exponential strategy with the given alpha.
func NewExponential(alpha float32) *Exponential {
	return &Exponential{Alpha: alpha}
}

func (e *Exponential) Apply(raw uint16) uint16 {
	e.prev = Smooth(raw, e.prev, e.Alpha)
	return e.prev
}

func (e *Exponential) Reset() {
	e.prev = 0
}

// Windowed is the streaming form of [WindowedAverage]: it averages the
// trailing window of raw readings seen so far in the current capture pass.
// While the window is still filling the divisor is the number of readings
// actually seen, matching WindowedAverage's edge truncation at the start of
// a buffer.
type Windowed struct {
	ring []uint16
	next int
	seen int
}

// NewWindowed returns a Windowed strategy averaging the last `window` raw
// readings. Windows below 1 are clamped to 1, which makes the strategy a
// pass-through.
func NewWindowed(window int) *Windowed {
	if window < 1 {
		window = 1
	}
	return &Windowed{ring: make([]uint16, window)}
}

func (w *Windowed) Apply(raw uint16) uint16 {
	w.ring[w.next] = raw
	w.next = (w.next + 1) % len(w.ring)
	if w.seen < len(w.ring) {
		w.seen++
	}

	sum := 0
	for _, v := range w.ring[:w.seen] {
		sum += int(v)
	}
	return uint16(sum / w.seen)
}

func (w *Windowed) Reset() {
	w.next = 0
	w.seen = 0
}
