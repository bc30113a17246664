// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavReader is the slice of wav.Decoder the source needs, kept as an
// interface so tests can stand in for the real decoder.
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type wavSource struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
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

	if s.bitDepth == 8 {
		// 8-bit WAV is unsigned with silence at 128, unlike the signed
		// wider depths.
		for i := range n {
			dst[i] = (float32(s.intBuf.Data[i]) - 128) / 128.0
		}
	} else {
		scale := pcmScale(s.bitDepth)
		for i := range n {
			dst[i] = float32(s.intBuf.Data[i]) / scale
		}
	}

	// A short read with no error means the stream ran out.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// WAVDecoder decodes RIFF/WAVE PCM streams.
type WAVDecoder struct{}

func (WAVDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedPCM, dec.BitDepth)
	}

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
	}, nil
}

// DumpWAV writes duty-cycle samples as a mono 16-bit PCM WAV at sampleRate.
// The duty values are mapped back through the output transfer curve, so the
// file plays what a speaker on the board would have produced.
func DumpWAV(w io.WriteSeeker, sampleRate int, duty []uint16) error {
	if sampleRate < 1 {
		return ErrBadRate
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Data: make([]int, len(duty)),
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
	}

	for i, v := range duty {
		buf.Data[i] = int(DutyToPCM16(v))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// pcmScale is the divisor that maps signed PCM of the given bit depth onto
// [-1, 1).
func pcmScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// asReadSeeker hands back r unchanged when it can already seek, otherwise
// buffers the whole stream in memory. The go-audio decoders need seeking to
// walk chunk tables.
func asReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering stream: %w", err)
	}

	return bytes.NewReader(data), nil
}
