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

import "fmt"

// Color identifies a side to move: White or Black.
type Color uint8

const (
	White Color = iota
	Black
	ColorLength int = 2
)

// colorTraits bundles the few per-color constants that would otherwise need
// a parallel array each: forward direction, pawn push direction, promotion
// rank and the rank a pawn lands on after a single push from its start rank.
type colorTraits struct {
	dir         int
	pawnPush    Direction
	promRank    Bitboard
	doublePushR Bitboard
}

var perColor = [ColorLength]colorTraits{
	White: {dir: 1, pawnPush: North, promRank: Rank8_Bb, doublePushR: Rank3_Bb},
	Black: {dir: -1, pawnPush: South, promRank: Rank1_Bb, doublePushR: Rank6_Bb},
}

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is one of the two defined colors.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// String renders the color as UCI/FEN style "w" or "b".
func (c Color) String() string {
	if !c.IsValid() {
		panic(fmt.Sprintf("invalid color %d", c))
	}
	if c == White {
		return "w"
	}
	return "b"
}

// Direction returns +1 for White, -1 for Black — useful for scaling
// evaluation terms or square arithmetic that must mirror by side.
func (c Color) Direction() int {
	return perColor[c].dir
}

// MoveDirection returns the direction a pawn of this color advances in.
func (c Color) MoveDirection() Direction {
	return perColor[c].pawnPush
}

// PromotionRankBb returns the rank a pawn of this color promotes on.
func (c Color) PromotionRankBb() Bitboard {
	return perColor[c].promRank
}

// PawnDoubleRank returns the rank a pawn of this color lands on after a
// single push from its start rank; the move generator pushes pawns on this
// rank once more to form double pushes.
func (c Color) PawnDoubleRank() Bitboard {
	return perColor[c].doublePushR
}
