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
	"strings"

	"github.com/kestrelchess/kestrel/internal/assert"
)

// Move is a 64bit word encoding of a chess move. It carries the squares,
// the moved and captured piece and the move kind so that a move can be
// inspected, sorted and logged without going back to the board it was
// generated from.
//
//  BITMAP 64-bit
//  |-- unused --|----- value -----|kind|cap.|piec|---from---|----to----|
//  6         4 4 0                                                     0
//
//  bit  0- 5  to       (6 bit, Square)
//  bit  6-11  from     (6 bit, Square)
//  bit 12-15  piece    (4 bit, Piece of the moving piece)
//  bit 16-19  captured (4 bit, Piece captured, PieceNone if none)
//  bit 20-23  kind     (4 bit, MoveType)
//  bit 24-39  value    (16 bit, move sort value used by the generator)
type Move uint64

const (
	// MoveNone is the empty, non valid move.
	MoveNone Move = 0
)

const (
	toShift       uint = 0
	fromShift     uint = 6
	pieceShift    uint = 12
	capturedShift uint = 16
	kindShift     uint = 20
	valueShift    uint = 24

	squareMask   Move = 0x3F
	pieceMask    Move = 0xF
	kindMask     Move = 0xF
	valueMask16  Move = 0xFFFF
	toMaskFull        = squareMask << toShift
	fromMaskFull      = squareMask << fromShift
	pieceMaskFull     = pieceMask << pieceShift
	capMaskFull       = pieceMask << capturedShift
	kindMaskFull      = kindMask << kindShift
	valMaskFull       = valueMask16 << valueShift

	moveOnlyMask Move = toMaskFull | fromMaskFull | pieceMaskFull | capMaskFull | kindMaskFull
)

// MoveType is the kind of a move. Promotion piece and castling side are
// folded into the kind itself rather than kept in a side channel so that a
// Move never needs more than this one word to be fully self-describing.
type MoveType uint8

// Move kinds. Castling and Promotion are constructor-only hints: callers
// may pass them to CreateMove/CreateMoveValue and the constructor resolves
// them to the concrete CastlingShort/CastlingLong or Promotion{Queen,Rook,
// Bishop,Knight} kind before the bits are ever stored in a Move. MoveType()
// on a constructed Move therefore never returns Castling or Promotion.
const (
	Normal MoveType = iota
	DoublePush
	EnPassant
	CastlingShort
	CastlingLong
	PromotionQueen
	PromotionRook
	PromotionBishop
	PromotionKnight

	Castling
	Promotion
)

var moveTypeToString = map[MoveType]string{
	Normal:         "n",
	DoublePush:     "p",
	EnPassant:      "e",
	CastlingShort:  "O-O",
	CastlingLong:   "O-O-O",
	PromotionQueen: "Q",
	PromotionRook:  "R",
	PromotionBishop: "B",
	PromotionKnight: "N",
}

// String returns a short label for the move kind.
func (t MoveType) String() string {
	if s, ok := moveTypeToString[t]; ok {
		return s
	}
	return "?"
}

// IsValid reports whether t is one of the concrete (storable) move kinds.
func (t MoveType) IsValid() bool {
	return t <= PromotionKnight
}

// IsCastling reports whether t is either castling kind.
func (t MoveType) IsCastling() bool {
	return t == CastlingShort || t == CastlingLong
}

// IsPromotion reports whether t is any of the four promotion kinds.
func (t MoveType) IsPromotion() bool {
	return t >= PromotionQueen && t <= PromotionKnight
}

// promotionKind maps a promotion piece type to its move kind.
func promotionKind(pt PieceType) MoveType {
	switch pt {
	case Rook:
		return PromotionRook
	case Bishop:
		return PromotionBishop
	case Knight:
		return PromotionKnight
	default:
		return PromotionQueen
	}
}

// resolveKind turns a constructor hint (which may be the generic Castling
// or Promotion marker) into the concrete kind that gets stored in the word.
func resolveKind(t MoveType, to Square, promType PieceType) MoveType {
	switch t {
	case Castling:
		if to.FileOf() == FileC {
			return CastlingLong
		}
		return CastlingShort
	case Promotion:
		return promotionKind(promType)
	default:
		return t
	}
}

// promotionPieceType maps a stored promotion kind back to its piece type.
func (t MoveType) promotionPieceType() PieceType {
	switch t {
	case PromotionRook:
		return Rook
	case PromotionBishop:
		return Bishop
	case PromotionKnight:
		return Knight
	case PromotionQueen:
		return Queen
	default:
		return PtNone
	}
}

// CreateMove returns an encoded Move without embedded piece/captured-piece
// information. Used where a move is only needed transiently to ask the
// position whether it would be legal (the piece/captured fields are never
// read back in that case - the position re-derives them from the board).
func CreateMove(from Square, to Square, t MoveType, promType PieceType) Move {
	return CreateFullMove(from, to, PieceNone, PieceNone, t, promType)
}

// CreateMoveValue is CreateMove plus a move-ordering sort value.
func CreateMoveValue(from Square, to Square, t MoveType, promType PieceType, value Value) Move {
	return CreateFullMoveValue(from, to, PieceNone, PieceNone, t, promType, value)
}

// CreateFullMove returns an encoded Move carrying the moving and captured
// piece alongside the squares and kind.
func CreateFullMove(from Square, to Square, piece Piece, captured Piece, t MoveType, promType PieceType) Move {
	kind := resolveKind(t, to, promType)
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(piece)<<pieceShift |
		Move(captured)<<capturedShift |
		Move(kind)<<kindShift
}

// CreateFullMoveValue is CreateFullMove plus a move-ordering sort value.
func CreateFullMoveValue(from Square, to Square, piece Piece, captured Piece, t MoveType, promType PieceType, value Value) Move {
	m := CreateFullMove(from, to, piece, captured, t, promType)
	return m.SetValue(value)
}

// To returns the to-square of the move.
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// From returns the from-square of the move.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// MovedPiece returns the piece that was moved, or PieceNone if the move
// was created without embedded piece information (see CreateMove).
func (m Move) MovedPiece() Piece {
	return Piece((m >> pieceShift) & pieceMask)
}

// CapturedPiece returns the captured piece, or PieceNone for a quiet move
// or for a move created without embedded piece information.
func (m Move) CapturedPiece() Piece {
	return Piece((m >> capturedShift) & pieceMask)
}

// MoveType returns the kind of the move.
func (m Move) MoveType() MoveType {
	return MoveType((m >> kindShift) & kindMask)
}

// PromotionType returns the piece type a pawn promotes to. Must be ignored
// unless MoveType().IsPromotion().
func (m Move) PromotionType() PieceType {
	return m.MoveType().promotionPieceType()
}

// MoveOf returns the move stripped of its sort value.
func (m Move) MoveOf() Move {
	return m & moveOnlyMask
}

// ValueOf returns the sort value used by the move generator.
func (m Move) ValueOf() Value {
	return Value((m>>valueShift)&valueMask16) + ValueNA
}

// SetValue encodes the given value into the move's sort-value bits.
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "Invalid move sort value: %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	*m = m.MoveOf() | Move(uint16(v-ValueNA))<<valueShift
	return *m
}

// IsValid checks if the move has valid squares, kind and (if applicable)
// sort value. MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MoveType().IsValid() &&
		(m.ValueOf() == ValueNA || m.ValueOf().IsValid())
}

// String returns a verbose, UCI-plus-debug representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  value:%-6d  (%d) }",
		m.StringUci(), m.MoveType().String(), m.ValueOf(), uint64(m))
}

// StringUci returns the UCI wire representation of the move, e.g. "e2e4"
// or "a7a8q" for a promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var s strings.Builder
	s.WriteString(m.From().String())
	s.WriteString(m.To().String())
	if m.MoveType().IsPromotion() {
		s.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return s.String()
}

// StringBits returns a string with the individual bit fields of a Move.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Piece(%s) Cap(%s) Kind[%-0.4b](%s) value(%d) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.MovedPiece().String(), m.CapturedPiece().String(),
		m.MoveType(), m.MoveType().String(),
		m.ValueOf(),
		uint64(m))
}
