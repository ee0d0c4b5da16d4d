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

package types

import (
	"fmt"
)

// Square identifies one of the 64 board squares, numbered A1=0 ... H8=63,
// in rank-major order. SqNone (64) marks "no square".
type Square uint8

const (
	SqA1 Square = iota // 0
	SqB1               // 1
	SqC1               // 2
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8   // 63
	SqNone // 64
)

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file (column) of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank (row) of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare parses a two-character square name (e.g. "e5") into a Square,
// returning SqNone for anything that doesn't name a real square.
func MakeSquare(s string) Square {
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf combines a file and rank into a Square, or SqNone if either
// is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// To returns the neighboring square one step in direction d, or SqNone if
// that step would run off the board. Backed by a precomputed table since
// the naive arithmetic wraps around file A/H edges.
func (sq Square) To(d Direction) Square {
	return squareStep[sq][directionSlot(d)]
}

// directionSlot maps a Direction constant to its column in squareStep.
func directionSlot(d Direction) int {
	switch d {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	case Northeast:
		return 4
	case Southeast:
		return 5
	case Southwest:
		return 6
	case Northwest:
		return 7
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// String renders the square as its algebraic name (e.g. "e5"), or "-" if
// it isn't a real square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

var squareStep [SqLength][8]Square

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, dir := range Directions {
			squareStep[sq][i] = sq.stepOrNone(dir)
		}
	}
}

// stepOrNone computes one step in direction d on an empty board, returning
// SqNone where the step would wrap around a file edge. North/South never
// wrap (they only over/underflow the 0-63 range, caught by IsValid), so
// only the four diagonal and two horizontal directions need an edge check.
func (sq Square) stepOrNone(d Direction) Square {
	switch d {
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Southwest, Northwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	next := sq + Square(d)
	if !next.IsValid() {
		return SqNone
	}
	return next
}
