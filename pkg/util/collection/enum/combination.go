// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package enum

import (
	"slices"

	"github.com/consensys/go-combin/pkg/util/math"
)

// Combinations returns an iterator which enumerates every way of choosing k
// offsets from the universe {0 .. n-1}.  Each subset is represented by its
// unique strictly increasing index tuple, and subsets are visited in
// lexicographic order of those tuples.  For example, Combinations(4,2)
// enumerates [0,1], [0,2], [0,3], [1,2], [1,3], [2,3].  Choosing zero offsets
// yields exactly one (empty) subset, whilst choosing more offsets than the
// universe holds yields none.  Every tuple returned is freshly allocated, so
// callers may retain it.
func Combinations(n uint, k uint) Enumerator[[]uint] {
	seq := NewCombination(n, k)
	//
	return &combinationEnumerator{seq.Begin(), seq.End()}
}

// ============================================================================
// Combination
// ============================================================================

// Combination describes the sequence of all k-element subsets of the universe
// {0 .. n-1}.  It is purely a description: it holds no iteration state beyond
// its two integers, and copies are independent values.  Cursors spawned from
// it own their own state, hence a Combination may be shared freely (e.g.
// across threads) whilst its cursors are advanced.
type Combination struct {
	numberElements uint
	subsetSize     uint
}

// NewCombination constructs a combination sequence for choosing subsetSize
// offsets out of numberElements.  No validation is performed: a subset size
// exceeding the number of elements simply describes an empty sequence.
func NewCombination(numberElements uint, subsetSize uint) Combination {
	return Combination{numberElements, subsetSize}
}

// NumberElements returns the size of the universe being chosen from.
func (p Combination) NumberElements() uint {
	return p.numberElements
}

// SubsetSize returns the size of each chosen subset.
func (p Combination) SubsetSize() uint {
	return p.subsetSize
}

// Size returns the number of subsets in this sequence, i.e. the binomial
// coefficient C(numberElements, subsetSize).
func (p Combination) Size() uint {
	return math.Binomial(p.numberElements, p.subsetSize)
}

// Begin returns a cursor positioned at the lexicographically first subset,
// [0, 1, .., subsetSize-1].  For an empty sequence this equals End().
func (p Combination) Begin() Cursor {
	return newCursor(false, p.numberElements, p.subsetSize)
}

// End returns the past-the-last sentinel cursor.  Its tuple is the final
// subset [n-k, .., n-1] (clamped to the zero-based run when the sequence is
// empty), but it is marked as exhausted and therefore compares equal only to
// a cursor advanced beyond that final subset.  Constructing it is O(k).
func (p Combination) End() Cursor {
	return newCursor(true, p.numberElements, p.subsetSize)
}

// ============================================================================
// Cursor
// ============================================================================

// Cursor identifies a position within a combination sequence.  At every
// observable position its tuple is strictly increasing with all entries below
// the number of elements; the sentinel additionally carries an exhausted
// marker, since the tuple of the final subset is otherwise indistinguishable
// from it.  A cursor is advanced in place and never referenced by the
// sequence which spawned it.
type Cursor struct {
	numberElements uint
	subsetSize     uint
	// Current index tuple, of exactly subsetSize entries.
	indices []uint
	// Set once this cursor has moved beyond the final subset.
	past bool
}

func newCursor(end bool, numberElements uint, subsetSize uint) Cursor {
	var offset uint
	// Saturate, since the subset size may exceed the universe.
	if end && numberElements > subsetSize {
		offset = numberElements - subsetSize
	}
	//
	indices := make([]uint, subsetSize)
	//
	for i := range indices {
		indices[i] = offset + uint(i)
	}
	// A subset larger than the universe admits no members at all, hence both
	// cursors of such a sequence begin exhausted and compare equal.
	return Cursor{numberElements, subsetSize, indices, end || subsetSize > numberElements}
}

// Indices exposes the current index tuple as a read-only view.  The returned
// slice is the cursor's internal buffer: callers must not mutate it, and its
// contents change upon Advance.  The sentinel's tuple is well formed but is
// not a member of the sequence.
func (p Cursor) Indices() []uint {
	return p.indices
}

// Advance moves this cursor to the lexicographically next subset in
// O(subsetSize) time, allocating nothing.  The highest slot still below its
// maximum is incremented, where slot i may not exceed n-k+i (the value
// leaving just enough room for the slots above it); every slot above the
// incremented one is then reset to the consecutive run which follows it.
// When every slot is already at its maximum the cursor becomes the sentinel,
// after which advancing is a no-op.
func (p *Cursor) Advance() {
	if p.past {
		return
	}
	//
	i := len(p.indices) - 1
	// Find highest slot with room to move.
	for i >= 0 && p.indices[i] == p.numberElements-p.subsetSize+uint(i) {
		i--
	}
	// Check whether final subset reached.
	if i < 0 {
		p.past = true
		return
	}
	//
	p.indices[i]++
	// Restore consecutive run above the incremented slot.
	for j := i + 1; j < len(p.indices); j++ {
		p.indices[j] = p.indices[j-1] + 1
	}
}

// Clone creates a true copy of this cursor, such that advancing one has no
// effect on the other.
func (p Cursor) Clone() Cursor {
	return Cursor{p.numberElements, p.subsetSize, slices.Clone(p.indices), p.past}
}

// Equals checks whether two cursors identify the same position within the
// same sequence.  Iteration terminates when a cursor compares equal to End().
func (p Cursor) Equals(other Cursor) bool {
	return p.numberElements == other.numberElements &&
		p.subsetSize == other.subsetSize &&
		p.past == other.past &&
		slices.Equal(p.indices, other.indices)
}

// ============================================================================
// Enumerator
// ============================================================================

type combinationEnumerator struct {
	cursor Cursor
	end    Cursor
}

// HasNext checks whether or not there are any subsets remaining to visit.
//
//nolint:revive
func (p *combinationEnumerator) HasNext() bool {
	return !p.cursor.Equals(p.end)
}

// Count returns the number of subsets left in this enumeration.  Subsets
// strictly after the current tuple agree with it on some (possibly empty)
// prefix and exceed it at the following slot, giving a closed form which
// avoids draining a copy of the enumerator.
//
//nolint:revive
func (p *combinationEnumerator) Count() uint {
	if p.cursor.past {
		return 0
	}
	//
	var (
		n     = p.cursor.numberElements
		k     = p.cursor.subsetSize
		count = uint(1)
	)
	//
	for i, ith := range p.cursor.indices {
		count += math.Binomial(n-ith-1, k-uint(i))
	}
	//
	return count
}

// Nth returns the nth subset in this iterator.  This will mutate the iterator.
func (p *combinationEnumerator) Nth(n uint) []uint {
	return Nth[[]uint](p, n)
}

// Next returns the next subset, and advance the iterator.
//
//nolint:revive
func (p *combinationEnumerator) Next() []uint {
	next := slices.Clone(p.cursor.Indices())
	p.cursor.Advance()

	return next
}
