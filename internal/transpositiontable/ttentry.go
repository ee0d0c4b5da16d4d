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

package transpositiontable

import (
	"sync/atomic"

	"github.com/kestrelchess/kestrel/internal/position"
	. "github.com/kestrelchess/kestrel/internal/types"
)

// TtEntry is the decoded, key-verified content of one transposition table
// slot. Move carries the best/refutation move together with its search
// value (see Move.ValueOf), so no separate score field is needed.
type TtEntry struct {
	Key   position.Key
	Move  Move
	Depth int8
	Type  ValueType
	Age   uint8
}

const (
	// TtEntrySize is the size in bytes of a single raw slot. Two slots make
	// up one bucket (depth-preferred, always-replace).
	TtEntrySize = 16

	payloadMoveBits = 40
	payloadMoveMask = uint64(1)<<payloadMoveBits - 1

	depthShift = payloadMoveBits
	depthBits  = 8
	depthMask  = uint64(1)<<depthBits - 1

	typeShift = depthShift + depthBits
	typeBits  = 2
	typeMask  = uint64(1)<<typeBits - 1

	ageShift = typeShift + typeBits
	ageBits  = 8
	ageMask  = uint64(1)<<ageBits - 1
)

// packPayload folds a move, depth, score kind and generation into the
// 64 bits that sit alongside the Zobrist key in a slot. The move's low 40
// bits (squares, pieces, kind, embedded search value) occupy the bottom of
// the word; depth/type/age are packed into the otherwise unused high bits.
func packPayload(move Move, depth int8, vtype ValueType, age uint8) uint64 {
	return uint64(move)&payloadMoveMask |
		uint64(uint8(depth))<<depthShift |
		uint64(vtype)<<typeShift |
		uint64(age)<<ageShift
}

func unpackPayload(payload uint64) (move Move, depth int8, vtype ValueType, age uint8) {
	move = Move(payload & payloadMoveMask)
	depth = int8((payload >> depthShift) & depthMask)
	vtype = ValueType((payload >> typeShift) & typeMask)
	age = uint8((payload >> ageShift) & ageMask)
	return
}

// ttSlot is one lockless-verified storage unit: keyXor is the Zobrist key
// XORed with payload, so that a torn concurrent write - where keyXor and
// payload are updated by different writers interleaved with a reader - is
// caught as a key mismatch on read instead of being handed out as a false
// hit. Reads and writes go through sync/atomic so the two words themselves
// never tear.
type ttSlot struct {
	keyXor  uint64
	payload uint64
}

func (s *ttSlot) isEmpty() bool {
	return atomic.LoadUint64(&s.payload) == 0 && atomic.LoadUint64(&s.keyXor) == 0
}

// load decodes the slot and reports whether its verified key matches want.
func (s *ttSlot) load(want position.Key) (TtEntry, bool) {
	payload := atomic.LoadUint64(&s.payload)
	keyXor := atomic.LoadUint64(&s.keyXor)
	if position.Key(keyXor^payload) != want {
		return TtEntry{}, false
	}
	move, depth, vtype, age := unpackPayload(payload)
	return TtEntry{Key: want, Move: move, Depth: depth, Type: vtype, Age: age}, true
}

// peekDepthAge decodes only the fields needed for the replacement
// decision without requiring the probing key (used when deciding whether
// a Put should overwrite an occupied slot belonging to a different key).
func (s *ttSlot) peekDepthAge() (depth int8, age uint8) {
	_, depth, _, age = unpackPayload(atomic.LoadUint64(&s.payload))
	return
}

func (s *ttSlot) store(key position.Key, move Move, depth int8, vtype ValueType, age uint8) {
	payload := packPayload(move, depth, vtype, age)
	atomic.StoreUint64(&s.payload, payload)
	atomic.StoreUint64(&s.keyXor, uint64(key)^payload)
}
