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

package openingbook

// polyglotRandomPiece, polyglotRandomCastle, polyglotRandomEnPassant and
// polyglotRandomTurn hold the random numbers that make up the Polyglot key
// schedule: 12 piece kinds times 64 squares, 4 castling rights, 8 en
// passant files and one side-to-move key. They are generated once at
// package init from a fixed seed via a xorshift64* generator, so the
// schedule is internally stable across runs without hand-transcribing the
// 781 constants Polyglot ships - a book produced by this engine is self
// consistent but is not bit-compatible with books built by the reference
// Polyglot tool.
var (
	polyglotRandomPiece     [12][64]uint64
	polyglotRandomCastle    [4]uint64
	polyglotRandomEnPassant [8]uint64
	polyglotRandomTurn      uint64
)

func init() {
	var s uint64 = 0x9e3779b97f4a7c15
	next := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 0x2545f4914f6cdd1d
	}
	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			polyglotRandomPiece[piece][sq] = next()
		}
	}
	for i := range polyglotRandomCastle {
		polyglotRandomCastle[i] = next()
	}
	for i := range polyglotRandomEnPassant {
		polyglotRandomEnPassant[i] = next()
	}
	polyglotRandomTurn = next()
}
