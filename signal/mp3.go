// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Stream is the slice of gomp3.Decoder the source needs, kept as an
// interface so tests can stand in for the real decoder.
type mp3Stream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type mp3Source struct {
	dec        mp3Stream
	sampleRate int
	buf        []byte
}

func (s *mp3Source) SampleRate() int { return s.sampleRate }
func (s *mp3Source) Channels() int   { return 2 }
func (s *mp3Source) Close() error    { return nil }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	// go-mp3 hands back 16-bit little-endian PCM bytes, stereo interleaved.
	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

// MP3Decoder decodes MPEG-1 layer III streams. go-mp3 always outputs two
// channels, so the result wants a Downmix before feeding the board.
type MP3Decoder struct{}

func (MP3Decoder) Decode(r io.Reader) (Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &mp3Source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
