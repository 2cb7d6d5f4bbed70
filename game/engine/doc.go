// Package engine provides the core game logic for hyperfour, an
// N-dimensional generalization of Connect Four.
//
// The engine package implements the game mechanics including:
//   - A D-dimensional board backed by a flat cell buffer with row-major strides
//   - Gravity-style disk insertion along the drop axis (the last dimension)
//   - Win detection that generalizes "four in a row" to arbitrary D >= 2
//   - Round bookkeeping and board-capacity tracking
//
// Core Types:
//
// Game is the main entry point composing a Board with a WinDetector.
// Board owns the grid and the insertion rule; WinDetector precomputes the
// canonical direction set for the board's dimension count and scans runs
// from a just-placed disk.
//
// Usage:
//
//	game, err := engine.NewGame([]int{7, 6})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	won, err := game.PlayDisk(engine.Red, []int{3})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Game Rules:
//
// A move specifies a color and the coordinates of every axis except the
// last one. The disk falls to the lowest empty index along that free axis.
// The move wins when it completes a run of four same-color disks along any
// straight line through the grid, axis-aligned or diagonal. The engine is
// single-threaded and synchronous; one Game instance serves one game.
package engine
