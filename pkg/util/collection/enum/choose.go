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

// Choose returns an iterator which enumerates all subsets of size k drawn
// from the given elements, in lexicographic order of the underlying offsets.
// For example, if k==2 and elems contained three elements A, B and C, then
// this will return [[A,B],[A,C],[B,C]].  Unlike Combinations, this
// materializes chosen elements rather than offsets; the offset enumeration
// itself remains oblivious to the elements.
func Choose[E any](k uint, elems []E) Enumerator[[]E] {
	return &chooseEnumerator[E]{Combinations(uint(len(elems)), k), elems}
}

type chooseEnumerator[E any] struct {
	offsets  Enumerator[[]uint]
	elements []E
}

// HasNext checks whether or not there are any subsets remaining to visit.
//
//nolint:revive
func (p *chooseEnumerator[E]) HasNext() bool {
	return p.offsets.HasNext()
}

// Count returns the number of subsets left in this enumeration.
//
//nolint:revive
func (p *chooseEnumerator[E]) Count() uint {
	return p.offsets.Count()
}

// Nth returns the nth subset in this iterator.  This will mutate the iterator.
func (p *chooseEnumerator[E]) Nth(n uint) []E {
	return p.pick(p.offsets.Nth(n))
}

// Next returns the next subset, and advance the iterator.
//
//nolint:revive
func (p *chooseEnumerator[E]) Next() []E {
	return p.pick(p.offsets.Next())
}

// Extract the elements selected by a given offset tuple.
func (p *chooseEnumerator[E]) pick(offsets []uint) []E {
	rs := make([]E, len(offsets))
	//
	for i, o := range offsets {
		rs[i] = p.elements[o]
	}
	//
	return rs
}
