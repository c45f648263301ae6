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

// Append concatenates zero or more enumerators into one, visiting every item
// of each before moving on to the next.  This is how subsets of several sizes
// are enumerated back-to-back; empty sequences (e.g. choosing more offsets
// than there are elements) contribute nothing.
func Append[T any](enumerators ...Enumerator[T]) Enumerator[T] {
	var (
		count uint = 0
		enums []Enumerator[T]
	)
	// Total the space, discarding enumerators with nothing to offer.
	for _, e := range enumerators {
		if e.Count() != 0 {
			count += e.Count()
			enums = append(enums, e)
		}
	}
	//
	return &appendEnumerator[T]{count, enums}
}

type appendEnumerator[T any] struct {
	// Items left across all remaining enumerators.
	count uint
	// Remaining enumerators, none of which is exhausted.
	enums []Enumerator[T]
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *appendEnumerator[E]) HasNext() bool {
	return p.count > 0
}

// Count returns the number of items left in this enumeration.
//
//nolint:revive
func (p *appendEnumerator[E]) Count() uint {
	return p.count
}

// Nth returns the nth item in this iterator.  This will mutate the iterator.
func (p *appendEnumerator[E]) Nth(n uint) E {
	// Consume n+1 items, since n=0 identifies the next one.
	p.count -= n + 1
	// Skip over enumerators falling short of the nth item.
	for n >= p.enums[0].Count() {
		n -= p.enums[0].Count()
		p.enums = p.enums[1:]
	}
	//
	return p.enums[0].Nth(n)
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *appendEnumerator[E]) Next() E {
	next := p.enums[0].Next()
	//
	p.count--
	// Drop the leading enumerator once drained.
	if !p.enums[0].HasNext() {
		p.enums = p.enums[1:]
	}
	//
	return next
}
