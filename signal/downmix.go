// SPDX-License-Identifier: EPL-2.0

package signal

// Downmix wraps src with a channel-averaging stage so the simulated
// microphone always sees a mono feed. A source that is already mono is
// returned unchanged.
func Downmix(src Source) Source {
	if src.Channels() == 1 {
		return src
	}
	return &downmixSource{src: src}
}

type downmixSource struct {
	src Source
	tmp []float32
}

func (m *downmixSource) SampleRate() int { return m.src.SampleRate() }
func (m *downmixSource) Channels() int   { return 1 }
func (m *downmixSource) Close() error    { return m.src.Close() }

func (m *downmixSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}

	n, err := m.src.ReadSamples(m.tmp[:need])
	frames := n / channels

	inv := 1 / float32(channels)
	for f := range frames {
		sum := float32(0)
		base := f * channels
		for c := range channels {
			sum += m.tmp[base+c]
		}
		dst[f] = sum * inv
	}

	return frames, err
}
