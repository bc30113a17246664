// SPDX-License-Identifier: EPL-2.0

package sim

import (
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/jvgoveira/voxpad/signal"
)

const micFramesPerBuffer = 1024

// Microphone captures live audio from the host's default input device via
// portaudio and exposes it as a signal.Source. It never reports EOF: when
// the capture callback has not delivered data yet, ReadSamples returns zero
// samples with a nil error and the caller reads silence in the meantime.
type Microphone struct {
	sampleRate int
	stream     *portaudio.Stream

	mu   sync.Mutex
	ring []float32
	head int
	tail int
	size int
}

// NewMicrophone initializes portaudio and starts capturing mono input at
// sampleRate.
func NewMicrophone(sampleRate int) (*Microphone, error) {
	if sampleRate < 1 {
		return nil, signal.ErrBadRate
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	m := &Microphone{
		sampleRate: sampleRate,
		// Two seconds of backlog before the oldest capture is dropped.
		ring: make([]float32, 2*sampleRate),
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), micFramesPerBuffer, m.capture)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	m.stream = stream

	return m, nil
}

// capture runs on the portaudio callback thread.
func (m *Microphone) capture(in []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range in {
		if m.size == len(m.ring) {
			m.head = (m.head + 1) % len(m.ring)
			m.size--
		}
		m.ring[m.tail] = v
		m.tail = (m.tail + 1) % len(m.ring)
		m.size++
	}
}

func (m *Microphone) SampleRate() int { return m.sampleRate }
func (m *Microphone) Channels() int   { return 1 }

func (m *Microphone) ReadSamples(dst []float32) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(dst)
	if n > m.size {
		n = m.size
	}
	for i := range n {
		dst[i] = m.ring[m.head]
		m.head = (m.head + 1) % len(m.ring)
		m.size--
	}

	return n, nil
}

// Close stops the stream and tears down portaudio.
func (m *Microphone) Close() error {
	if m.stream == nil {
		return portaudio.Terminate()
	}

	err := m.stream.Stop()
	if cerr := m.stream.Close(); err == nil {
		err = cerr
	}
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	m.stream = nil

	return err
}
