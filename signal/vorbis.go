// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// oggStream is the slice of oggvorbis.Reader the source needs, kept as an
// interface so tests can stand in for the real decoder.
type oggStream interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type vorbisSource struct {
	dec        oggStream
	sampleRate int
	channels   int
	frameBuf   []float32
}

func (s *vorbisSource) SampleRate() int { return s.sampleRate }
func (s *vorbisSource) Channels() int   { return s.channels }
func (s *vorbisSource) Close() error    { return nil }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis reads whole frames, so only ask for a multiple of the
	// channel count.
	want := (len(dst) / s.channels) * s.channels
	if want == 0 {
		want = s.channels
	}
	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	copy(dst, s.frameBuf[:n])

	return n, err
}

// VorbisDecoder decodes Ogg Vorbis streams.
type VorbisDecoder struct{}

func (VorbisDecoder) Decode(r io.Reader) (Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &vorbisSource{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}
