//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types contains the board-representation primitives shared by the
// whole engine: squares, pieces, bitboards, moves and their precomputed
// attack/positional tables. Many of these would be enum candidates in a
// language that had them.
package types

import (
	myLogging "github.com/kestrelchess/kestrel/internal/log"
)

var log = myLogging.GetLog()

var initialized = false

// init computes the attack bitboards (magic tables) and piece-square tables once
// at process start, ahead of any Position being constructed.
func init() {
	if initialized {
		return
	}
	log.Debug("Initializing board representation tables")
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the maximum search depth/ply supported by fixed-size
	// per-ply arrays (killer slots, PV table, history).
	MaxDepth = 128

	// MaxMoves bounds the number of moves recorded in a single game.
	MaxMoves = 512

	// KB is 1,024 bytes.
	KB uint64 = 1024

	// MB is KB * KB.
	MB uint64 = KB * KB

	// GB is KB * MB.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game-phase value, reached with the full
	// complement of non-pawn material still on the board.
	GamePhaseMax = 24
)
