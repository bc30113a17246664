// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"io"
	"sort"
	"sync"
)

// Source is a stream of PCM samples feeding the simulator.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int

	// Channels count (1=mono, 2=stereo).
	Channels() int

	// ReadSamples fills dst with interleaved float32 samples in [-1, 1]
	// and returns the number of values written. n == 0 with err == io.EOF
	// means the stream is finished; n == 0 with a nil error means no data
	// is available right now (live sources).
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (e.g. "wav", "mp3", "ogg") to decoders.
type Registry struct {
	mtx    sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys, sorted.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
