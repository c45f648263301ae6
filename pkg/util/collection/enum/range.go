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

// Range constructs an enumerator over the offsets in the half-open interval
// [start .. end), visited in increasing order.  This is a convenient building
// block for tests and concatenations of subset sequences.
func Range(start uint, end uint) Enumerator[uint] {
	return &rangeEnumerator{start, end}
}

type rangeEnumerator struct {
	// Next offset to visit.
	offset uint
	// First offset beyond the interval.
	end uint
}

// HasNext checks whether or not there are any offsets remaining to visit.
//
//nolint:revive
func (p *rangeEnumerator) HasNext() bool {
	return p.offset < p.end
}

// Count returns the number of offsets left in this enumeration.
//
//nolint:revive
func (p *rangeEnumerator) Count() uint {
	return p.end - p.offset
}

// Nth returns the nth offset in this iterator.  This will mutate the iterator.
func (p *rangeEnumerator) Nth(n uint) uint {
	next := p.offset + n
	p.offset = next + 1
	//
	return next
}

// Next returns the next offset, and advance the iterator.
//
//nolint:revive
func (p *rangeEnumerator) Next() uint {
	next := p.offset
	p.offset++

	return next
}
