// SPDX-License-Identifier: EPL-2.0

package signal

import "io"

// Resample converts a mono source to the target rate using Catmull-Rom
// interpolation over a sliding four-sample window. When downsampling, a
// one-pole low-pass runs ahead of the interpolator as a simple anti-alias
// guard. A source already at the target rate is returned unchanged.
//
// Multi-channel sources must be passed through Downmix first; the simulated
// microphone only ever consumes mono.
func Resample(src Source, rate int) (Source, error) {
	if rate < 1 {
		return nil, ErrBadRate
	}
	if src.Channels() != 1 {
		return nil, ErrMonoOnly
	}
	if src.SampleRate() == rate {
		return src, nil
	}

	step := float64(src.SampleRate()) / float64(rate)
	return &resampleSource{
		src:    src,
		rate:   rate,
		step:   step,
		in:     make([]float32, 4096),
		filter: step > 1,
		alpha:  0.5, // crude cutoff near the destination Nyquist
	}, nil
}

type resampleSource struct {
	src  Source
	rate int
	step float64 // source samples per output sample

	// win holds four consecutive source samples; frac positions the next
	// output between win[1] and win[2].
	win    [4]float32
	frac   float64
	primed bool

	in    []float32
	inLen int
	inPos int
	eof   bool
	pad   int
	seen  bool
	last  float32

	filter bool
	alpha  float32
	fstate float32
}

func (r *resampleSource) SampleRate() int { return r.rate }
func (r *resampleSource) Channels() int   { return 1 }
func (r *resampleSource) Close() error    { return r.src.Close() }

func (r *resampleSource) ReadSamples(dst []float32) (int, error) {
	for i := range dst {
		v, ok := r.produce()
		if !ok {
			return i, io.EOF
		}
		dst[i] = v
	}
	return len(dst), nil
}

// produce emits one output sample, sliding the source window forward as the
// fractional position crosses sample boundaries.
func (r *resampleSource) produce() (float32, bool) {
	if !r.primed {
		v0, ok := r.readOne()
		if !ok {
			return 0, false
		}
		r.win[0], r.win[1] = v0, v0
		r.win[2], _ = r.readOne()
		r.win[3], _ = r.readOne()
		r.primed = true
	}

	for r.frac >= 1 {
		r.frac--
		v, ok := r.readOne()
		if !ok {
			return 0, false
		}
		r.win[0], r.win[1], r.win[2] = r.win[1], r.win[2], r.win[3]
		r.win[3] = v
	}

	y := cubic(r.win[0], r.win[1], r.win[2], r.win[3], float32(r.frac))
	r.frac += r.step
	return y, true
}

// readOne pulls the next source sample through the optional anti-alias
// filter. Past the end of the source it repeats the last value for the two
// extra taps the interpolator needs, then reports done. A broken source is
// treated as ended: the simulator degrades to silence rather than surfacing
// a read failure.
func (r *resampleSource) readOne() (float32, bool) {
	for {
		if r.inPos < r.inLen {
			x := r.in[r.inPos]
			r.inPos++
			if r.filter {
				r.fstate += r.alpha * (x - r.fstate)
				x = r.fstate
			}
			r.last = x
			r.seen = true
			return x, true
		}

		if r.eof {
			if r.seen && r.pad < 2 {
				r.pad++
				return r.last, true
			}
			return 0, false
		}

		n, err := r.src.ReadSamples(r.in)
		r.inLen, r.inPos = n, 0
		if err != nil {
			r.eof = true
		}
		if n == 0 && err == nil {
			// Live source momentarily starved: hand back silence.
			r.last = 0
			return 0, true
		}
	}
}

// cubic is Catmull-Rom spline interpolation: x in [0, 1] positions the
// output between y1 and y2.
func cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return ((a0*x+a1)*x+a2)*x + a3
}
