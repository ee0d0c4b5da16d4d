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
	"strings"
)

// Piece packs a color and a piece type into a single byte: bit 3 is the
// color (0 White, 1 Black), bits 0-2 are the PieceType. PieceNone is the
// zero value, so a freshly zeroed board square reads as empty.
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece packs a color and piece type into a Piece value.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 | int(pt))
}

// ColorOf extracts the color bit of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf extracts the piece-type bits of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the static value of the underlying piece type.
func (p Piece) ValueOf() Value {
	return pieceTypeValue[p.TypeOf()]
}

// glyphs indexes by the raw Piece value (0-15), so the unused slots at
// index 7 and 15 ("-") are never actually looked up in practice.
const asciiGlyphs = " KPNBRQ- kpnbrq-"
const ownedGlyphs = " KONBRQ- k*nbrq-" // pawns rendered as O/* instead of P/p

var unicodeGlyphs = []string{" ", "♔", "♙", "♘", "♗", "♖", "♕", "-", " ", "♚", "♟", "♞", "♝", "♜", "♛", "-"}

// PieceFromChar parses a single FEN piece letter back into a Piece.
// Anything that isn't exactly one recognized letter yields PieceNone.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	idx := strings.IndexByte(asciiGlyphs, s[0])
	if idx == -1 {
		return PieceNone
	}
	return Piece(idx)
}

// String renders the piece as its standard FEN letter (uppercase = White).
func (p Piece) String() string {
	return string(asciiGlyphs[p])
}

// Char is like String but spells pawns as 'O' (White) / '*' (Black).
func (p Piece) Char() string {
	return string(ownedGlyphs[p])
}

// UniChar renders the piece as a Unicode chess glyph.
func (p Piece) UniChar() string {
	return unicodeGlyphs[p]
}
