// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// aiffReader is the slice of aiff.Decoder the source needs, kept as an
// interface so tests can stand in for the real decoder.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type aiffSource struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func (s *aiffSource) SampleRate() int { return s.sampleRate }
func (s *aiffSource) Channels() int   { return s.channels }
func (s *aiffSource) Close() error    { return nil }

func (s *aiffSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	scale := pcmScale(s.bitDepth)
	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// AIFFDecoder decodes AIFF PCM streams.
type AIFFDecoder struct{}

func (AIFFDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAIFF
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrNotAIFF
	}

	return &aiffSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
	}, nil
}
