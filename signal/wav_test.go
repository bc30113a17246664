// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func TestDumpWAV_RoundTrip(t *testing.T) {
	t.Parallel()

	duty := []uint16{0, 255, 511, 767, 1023, 511, 0}
	path := filepath.Join(t.TempDir(), "capture.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := DumpWAV(f, 16000, duty); err != nil {
		t.Fatalf("DumpWAV() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	src, err := WAVDecoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	got := drain(src, 4)
	if len(got) != len(duty) {
		t.Fatalf("got %d samples, want %d", len(got), len(duty))
	}

	// One 16-bit step of slack on top of the duty quantization.
	const tolerance = 2.0 / 32768.0
	for i, v := range got {
		want := float64(DutyToPCM16(duty[i])) / 32768.0
		if math.Abs(float64(v)-want) > tolerance {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestWAVDecoder_EightBitIsUnsigned(t *testing.T) {
	t.Parallel()

	// 8-bit WAV stores unsigned samples with silence at 128; the decoder
	// must re-center them, not divide as if they were signed.
	raw := []int{128, 0, 255, 192}
	path := filepath.Join(t.TempDir(), "eightbit.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	enc := wav.NewEncoder(f, 8000, 8, 1, 1)
	buf := &goaudio.IntBuffer{
		Data:           raw,
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: 8,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	src, err := (WAVDecoder{}).Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := drain(src, 4)
	want := []float32{0, -1, 127.0 / 128.0, 0.5}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 0.0001 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDumpWAV_BadRate(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := DumpWAV(f, 0, []uint16{1, 2, 3}); !errors.Is(err, ErrBadRate) {
		t.Errorf("DumpWAV(rate=0) error = %v, want ErrBadRate", err)
	}
}

func TestWAVDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	junk := bytes.NewReader([]byte("this is definitely not a RIFF stream"))
	if _, err := (WAVDecoder{}).Decode(junk); !errors.Is(err, ErrNotWAV) {
		t.Errorf("Decode(junk) error = %v, want ErrNotWAV", err)
	}
}
