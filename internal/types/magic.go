/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic holds the fancy-magic lookup data for a single square: the relevant
// occupancy mask, the magic multiplier, the shift to derive a table index,
// and the slice of the shared attack table this square owns.
// Approach follows Stockfish; see https://stockfishchess.org/about/
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// magicSeeds are hand-picked PrnG seeds (one per rank) known to find a
// working magic quickly for that rank's squares; see
// https://www.chessprogramming.org/Magic_Bitboards.
var magicSeeds = [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// initMagics computes the fancy-magic tables for every square along the
// given sliding directions (rook or bishop), filling magics[] and handing
// each square its own slice of the shared backing table.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	offset := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		m := &(*magics)[sq]

		// The mask is the sliding attack from sq on an empty board, with
		// board-edge squares stripped since a blocker there never changes
		// the attack set.
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[offset:]
		}

		occupancy, reference, count := enumerateOccupancies(directions, sq, m.Mask)
		offset = count
		findMagicNumber(m, sq, occupancy, reference, count)
	}
}

// enumerateOccupancies walks every subset of mask via the Carry-Rippler
// trick and returns the occupancy subsets alongside the sliding attack each
// one produces; see https://www.chessprogramming.org/Traversing_Subsets_of_a_Set.
func enumerateOccupancies(directions *[4]Direction, sq Square, mask Bitboard) (occupancy, reference [4096]Bitboard, count int) {
	var b Bitboard
	for {
		occupancy[count] = b
		reference[count] = slidingAttack(directions, sq, b)
		count++
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
	return
}

// findMagicNumber searches for a magic multiplier that maps every entry in
// occupancy[:count] to the index holding its matching reference[:count]
// attack, storing the winner (and the attack table it builds as a side
// effect) into m. epoch[] tracks which attempt last wrote each slot so a
// failed candidate doesn't need the table wiped before retrying.
func findMagicNumber(m *Magic, sq Square, occupancy, reference [4096]Bitboard, count int) {
	rng := newPrnG(magicSeeds[sq.RankOf()])
	var epoch [4096]int
	attempt := 0

search:
	for i := 0; i < count; {
		for {
			m.Magic = Bitboard(rng.sparseRand())
			if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
				break
			}
		}

		attempt++
		for i = 0; i < count; i++ {
			idx := m.index(occupancy[i])
			switch {
			case epoch[idx] < attempt:
				epoch[idx] = attempt
				m.Attacks[idx] = reference[i]
			case m.Attacks[idx] != reference[i]:
				continue search
			}
		}
	}
}

// slidingAttack walks each of the four directions one step at a time from
// sq, stopping at the first occupied square (inclusive) or the board edge.
// Only used at init time to build the reference attack sets magic numbers
// are verified against — far too slow for move generation or search.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		for s := sq.To(d); s.IsValid(); s = s.To(d) {
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
			next := s.To(d)
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
		}
	}
	return attack
}

// index derives the attack-table slot for an occupancy: mask off the
// irrelevant bits, multiply by the magic, shift down to the table width.
// https://www.chessprogramming.org/Magic_Bitboards
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// xorshiftRng is a xorshift64star pseudo-random generator (Vigna, 2014,
// public domain). 64-bit output, period 2^64-1, no warm-up needed — good
// enough for picking magic-number candidates and nothing else.
type xorshiftRng struct {
	state uint64
}

func newPrnG(seed uint64) *xorshiftRng {
	return &xorshiftRng{state: seed}
}

func (r *xorshiftRng) rand64() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// sparseRand ANDs three draws together so the result has roughly 1/8th of
// its bits set on average — magic candidates with few set bits are found
// faster than uniformly random 64-bit values.
func (r *xorshiftRng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
