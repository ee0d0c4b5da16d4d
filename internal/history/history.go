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

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/kestrelchess/kestrel/internal/types"
)

var out = message.NewPrinter(language.German)

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting. Both tables are
// indexed by the moved piece and its destination square rather than by
// color/from/to: a quiet move's cutoff value depends on what piece lands
// where, not on which square it started from, so piece/to collapses many
// distinct from-squares onto the shared statistic that actually predicts
// a future cutoff.
type History struct {
	HistoryCount [PieceLength][SqLength]int64
	CounterMoves [PieceLength][SqLength]Move
}

func (h History) String() string {
	sb := strings.Builder{}
	for p := PieceNone; p < PieceLength; p++ {
		for t := SqA1; t < SqNone; t++ {
			count := h.HistoryCount[p][t]
			if count == 0 {
				continue
			}
			m := h.CounterMoves[p][t]
			sb.WriteString(out.Sprintf("Piece=%s To=%s: count=%-7d cm=%s\n", p.String(), t.String(), count, m.StringUci()))
		}
	}
	return sb.String()
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}
