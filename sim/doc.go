// SPDX-License-Identifier: EPL-2.0

// Package sim provides a host-side board for running the looper without
// hardware.
//
// The simulated board satisfies hal.Board. Its microphone input is any
// signal.Source (a decoded file, a live portaudio capture, or a test
// generator) and its output channels fan out to Sink implementations such
// as the oto-backed Speaker. Buttons are pressed programmatically or from
// the terminal front end in this package.
//
// # Terminal front end
//
// Run wires a looper and a board into a small bubbletea program:
//
//	board, err := sim.NewBoard(mic, speaker)
//	...
//	looper, err := voxpad.NewLooper(board, cfg)
//	...
//	err = sim.Run(ctx, looper, board)
//
// The r and p keys press the record and play buttons, q quits.
package sim
