// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"io"
	"math"
)

// mockSource generates deterministic audio for tests. waveform receives the
// frame index and channel and returns the sample value.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	closed      bool
	waveform    func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

func newSineSource(sampleRate, channels, totalFrames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(frame) / float64(sampleRate)))
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	remaining := m.totalFrames - m.generated
	if frames > remaining {
		frames = remaining
	}

	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += frames

	return frames * m.channels, nil
}

// drain pulls every sample out of src in chunk-sized reads.
func drain(src Source, chunk int) []float32 {
	var out []float32
	buf := make([]float32, chunk)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			return out
		}
		if n == 0 {
			return out
		}
	}
}
