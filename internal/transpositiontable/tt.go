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

// Package transpositiontable implements the search's transposition table:
// a fixed-size, two-slot-per-bucket hash table keyed by Zobrist key, with
// lockless XOR-verified slots so concurrent writers never hand out a torn
// read as a false hit. The TtTable itself coordinates Resize/Clear
// externally - callers must not call them while a search is probing.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/kestrelchess/kestrel/internal/log"
	"github.com/kestrelchess/kestrel/internal/position"
	. "github.com/kestrelchess/kestrel/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536
)

// ttBucket is two slots: depthSlot favours the deepest search that reached
// this key, alwaysSlot is unconditionally overwritable and absorbs writes
// the depth-preferred slot rejects. Combining both replacement policies in
// one bucket keeps valuable deep entries around while still admitting the
// flood of shallow entries quiescence search produces.
type ttBucket struct {
	depthSlot  ttSlot
	alwaysSlot ttSlot
}

// TtTable is the actual transposition table object holding data and state.
// Create with NewTtTable().
type TtTable struct {
	log                *logging.Logger
	data               []ttBucket
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64 // total slots (2 per bucket)
	numberOfEntries    uint64
	age                uint8
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of bytes
// as a maximum of memory usage. actual size will be determined
// by the number of elements fitting into this size which need
// to be a power of 2 for efficient hashing/addressing via bit
// masks.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	// calculate the maximum power of 2 of slots fitting into the given size in MB
	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	numBuckets := tt.maxNumberOfEntries / 2
	if numBuckets == 0 {
		tt.maxNumberOfEntries = 0
	}
	tt.hashKeyMask = numBuckets - 1 // --> 0b0...01111....1, one bit per bucket

	// calculate the real memory usage
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize

	// Create new slice/array - garbage collections takes care of cleanup
	tt.data = make([]ttBucket, numBuckets)
	tt.numberOfEntries = 0
	tt.age = 0

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d slots in %d buckets (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, numBuckets, unsafe.Sizeof(ttBucket{}), sizeInMByte))
}

// GetEntry returns the decoded entry for key, or nil if neither slot of its
// bucket currently holds it. Does not change statistics.
func (tt *TtTable) GetEntry(key position.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	bucket := &tt.data[tt.hash(key)]
	if e, ok := bucket.depthSlot.load(key); ok {
		return &e
	}
	if e, ok := bucket.alwaysSlot.load(key); ok {
		return &e
	}
	return nil
}

// Probe returns the decoded entry for key, or nil if not found.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := tt.GetEntry(key)
	if e != nil {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result for key. The value is expected to already be
// embedded in move's sort-value bits (see alphabeta's storeTT / valueToTT)
// so that a TtEntry never needs a field beyond move, depth, score kind and
// generation - see §4.5 of the transposition table design.
//
// Within a bucket: an empty slot or one already holding key is always
// written to the depth-preferred slot. Otherwise the depth-preferred slot
// is overwritten iff the new depth is at least as deep as what's stored
// there, or the stored entry is from a previous generation; failing that
// the always-replace slot absorbs the write unconditionally.
func (tt *TtTable) Put(key position.Key, move Move, depth int8, value Value, valueType ValueType) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	move = move.SetValue(value)

	tt.Stats.numberOfPuts++
	bucket := &tt.data[tt.hash(key)]

	if bucket.depthSlot.isEmpty() {
		tt.numberOfEntries++
		bucket.depthSlot.store(key, move, depth, valueType, tt.age)
		return
	}
	if existing, ok := bucket.depthSlot.load(key); ok {
		tt.Stats.numberOfUpdates++
		finalMove := move
		if move == MoveNone { // preserve a previously stored move
			finalMove = existing.Move
		}
		bucket.depthSlot.store(key, finalMove, depth, valueType, tt.age)
		return
	}

	tt.Stats.numberOfCollisions++
	storedDepth, storedAge := bucket.depthSlot.peekDepthAge()
	if depth >= storedDepth || storedAge != tt.age {
		tt.Stats.numberOfOverwrites++
		bucket.depthSlot.store(key, move, depth, valueType, tt.age)
		return
	}

	if bucket.alwaysSlot.isEmpty() {
		tt.numberOfEntries++
	} else if _, ok := bucket.alwaysSlot.load(key); !ok {
		tt.Stats.numberOfOverwrites++
	}
	bucket.alwaysSlot.store(key, move, depth, valueType, tt.age)
}

// Clear clears all entries of the tt
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Clear() {
	tt.data = make([]ttBucket, len(tt.data))
	tt.numberOfEntries = 0
	tt.age = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill as per UCI
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(ttBucket{})/2, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries bumps the table's generation counter. Called once per root
// search; entries stamped with a prior generation become eligible for
// unconditional replacement in the depth-preferred slot regardless of
// their depth, so the table doesn't fill up with stale positions from
// earlier searches in the same game.
func (tt *TtTable) AgeEntries() {
	tt.age++
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the internal bucket index for the data array
func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
