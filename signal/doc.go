// SPDX-License-Identifier: EPL-2.0

// Package signal provides the audio plumbing that feeds a simulated voxpad
// board: streaming sources, file decoders, rate conversion and the
// quantization between float samples and the board's unsigned integer
// scales.
//
// Nothing in this package runs on the device path. The capture/playback
// core only ever sees uint16 samples through hal.Board; signal exists so a
// development host can stand in for the microphone and buzzers.
//
// # Sources
//
// A [Source] streams interleaved float32 samples in [-1, 1]. Decoders for
// WAV, AIFF, MP3 and Ogg Vorbis files each produce a Source, and a
// [Registry] maps format keys to decoders for extension-based lookup:
//
//	reg := signal.NewRegistry()
//	reg.Register("wav", signal.WAVDecoder{})
//	reg.Register("mp3", signal.MP3Decoder{})
//
// # Shaping a microphone feed
//
// The simulated analog input wants a mono stream at the device sample rate.
// [Downmix] folds multi-channel sources to mono and [Resample] converts the
// rate with cubic interpolation:
//
//	src, _ := signal.WAVDecoder{}.Decode(file)
//	mono, _ := signal.Resample(signal.Downmix(src), 16000)
//
// # Quantization
//
// [FloatToADC] maps a float sample onto the 12-bit unsigned counts a real
// analog converter produces, centred at half scale the way a biased
// microphone input sits. [DutyToFloat] and [DutyToPCM16] go the other way,
// re-centring 10-bit duty levels for host audio output or WAV export via
// [DumpWAV].
//
// # Capture inspection
//
// [DominantFrequency] estimates the strongest spectral component of a
// captured buffer; the example program uses it as a quick sanity check that
// what was recorded resembles what was fed in.
package signal
