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
	"testing"

	"github.com/consensys/go-combin/pkg/util/math"
)

func Test_Combinations_1_1(t *testing.T) {
	enum := Combinations(1, 1)
	checkEnumerator(t, enum, [][]uint{{0}}, arrayEquals)
}

func Test_Combinations_3_1(t *testing.T) {
	enum := Combinations(3, 1)
	checkEnumerator(t, enum, [][]uint{{0}, {1}, {2}}, arrayEquals)
}

func Test_Combinations_3_2(t *testing.T) {
	enum := Combinations(3, 2)
	checkEnumerator(t, enum, [][]uint{{0, 1}, {0, 2}, {1, 2}}, arrayEquals)
}

func Test_Combinations_3_3(t *testing.T) {
	enum := Combinations(3, 3)
	checkEnumerator(t, enum, [][]uint{{0, 1, 2}}, arrayEquals)
}

func Test_Combinations_4_2(t *testing.T) {
	enum := Combinations(4, 2)
	checkEnumerator(t, enum, [][]uint{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, arrayEquals)
}

func Test_Combinations_5_3(t *testing.T) {
	enum := Combinations(5, 3)
	checkEnumerator(t, enum, [][]uint{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4},
		{0, 3, 4}, {1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4}}, arrayEquals)
}

func Test_Combinations_7_4(t *testing.T) {
	tuples := Collect[[]uint](Combinations(7, 4))
	//
	if len(tuples) != 35 {
		t.Errorf("expected 35 subsets, got %d", len(tuples))
	}
	//
	if !arrayEquals(tuples[0], []uint{0, 1, 2, 3}) {
		t.Errorf("unexpected first subset %v", tuples[0])
	}
	//
	if !arrayEquals(tuples[1], []uint{0, 1, 2, 4}) {
		t.Errorf("unexpected second subset %v", tuples[1])
	}
	//
	if !arrayEquals(tuples[34], []uint{3, 4, 5, 6}) {
		t.Errorf("unexpected final subset %v", tuples[34])
	}
}

// Choosing more offsets than the universe holds yields nothing at all.
func Test_Combinations_Empty_1(t *testing.T) {
	checkEnumerator(t, Combinations(3, 7), [][]uint{}, arrayEquals)
}

func Test_Combinations_Empty_2(t *testing.T) {
	checkEnumerator(t, Combinations(0, 7), [][]uint{}, arrayEquals)
}

// Choosing zero offsets yields exactly one (empty) subset, whatever the
// universe.
func Test_Combinations_Singleton_1(t *testing.T) {
	checkEnumerator(t, Combinations(0, 0), [][]uint{{}}, arrayEquals)
}

func Test_Combinations_Singleton_2(t *testing.T) {
	checkEnumerator(t, Combinations(5, 0), [][]uint{{}}, arrayEquals)
}

func Test_Combinations_Count(t *testing.T) {
	enum := Combinations(6, 3)
	//
	for expected := math.Binomial(6, 3); expected > 0; expected-- {
		// Count must not advance the enumerator, hence check twice.
		if enum.Count() != expected || enum.Count() != expected {
			t.Errorf("expected %d subsets left, got %d", expected, enum.Count())
		}
		//
		enum.Next()
	}
	//
	if enum.HasNext() || enum.Count() != 0 {
		t.Errorf("expected exhausted enumerator, got %d left", enum.Count())
	}
}

func Test_Combinations_Nth(t *testing.T) {
	enum := Combinations(5, 2)
	//
	if ith := enum.Nth(3); !arrayEquals(ith, []uint{0, 4}) {
		t.Errorf("expected [0 4], got %v", ith)
	}
	//
	if ith := enum.Next(); !arrayEquals(ith, []uint{1, 2}) {
		t.Errorf("expected [1 2], got %v", ith)
	}
}

func Test_Combinations_Ordered(t *testing.T) {
	for n := uint(0); n <= 8; n++ {
		for k := uint(0); k <= 9; k++ {
			checkOrdered(t, n, k)
		}
	}
}

func Test_Combination_Accessors(t *testing.T) {
	seq := NewCombination(7, 4)
	//
	if seq.NumberElements() != 7 {
		t.Errorf("expected 7 elements, got %d", seq.NumberElements())
	}
	//
	if seq.SubsetSize() != 4 {
		t.Errorf("expected subsets of 4, got %d", seq.SubsetSize())
	}
	// Copies are independent values.
	copied := seq
	if copied != seq {
		t.Error("expected copy to compare equal")
	}
}

func Test_Combination_Default(t *testing.T) {
	var (
		seq    = NewCombination(0, 0)
		cursor = seq.Begin()
	)
	// The empty subset of the empty universe is still a subset.
	if cursor.Equals(seq.End()) {
		t.Error("expected Begin() != End() for the singleton sequence")
	}
	//
	if len(cursor.Indices()) != 0 {
		t.Errorf("expected the empty tuple, got %v", cursor.Indices())
	}
	//
	cursor.Advance()
	//
	if !cursor.Equals(seq.End()) {
		t.Error("expected End() after a single advance")
	}
}

func Test_Combination_Degenerate(t *testing.T) {
	for _, seq := range []Combination{NewCombination(3, 7), NewCombination(0, 7)} {
		if !seq.Begin().Equals(seq.End()) {
			t.Errorf("expected Begin() == End() for C(%d,%d)", seq.NumberElements(), seq.SubsetSize())
		}
		//
		if seq.Size() != 0 {
			t.Errorf("expected empty sequence, got %d subsets", seq.Size())
		}
	}
}

func Test_Combination_Size(t *testing.T) {
	for n := uint(0); n <= 8; n++ {
		for k := uint(0); k <= 9; k++ {
			var (
				expected = math.Binomial(n, k)
				actual   = NewCombination(n, k).Size()
			)
			//
			if expected != actual {
				t.Errorf("expected C(%d,%d) == %d, got %d", n, k, expected, actual)
			}
		}
	}
}

func Test_Cursor_Advance(t *testing.T) {
	for n := uint(0); n <= 8; n++ {
		for k := uint(0); k <= 9; k++ {
			checkAdvance(t, NewCombination(n, k))
		}
	}
}

func Test_Cursor_Clone(t *testing.T) {
	var (
		cursor = NewCombination(5, 2).Begin()
		clone  = cursor.Clone()
	)
	//
	clone.Advance()
	//
	if !arrayEquals(cursor.Indices(), []uint{0, 1}) {
		t.Errorf("expected original cursor unchanged, got %v", cursor.Indices())
	}
	//
	if !arrayEquals(clone.Indices(), []uint{0, 2}) {
		t.Errorf("expected advanced clone, got %v", clone.Indices())
	}
	//
	if cursor.Equals(clone) {
		t.Error("expected cursors at different positions to differ")
	}
}

func Test_Cursor_Sentinel(t *testing.T) {
	end := NewCombination(7, 4).End()
	// The sentinel holds the offset run [n-k .. n-1].
	if !arrayEquals(end.Indices(), []uint{3, 4, 5, 6}) {
		t.Errorf("unexpected sentinel tuple %v", end.Indices())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// Check that End() is reached from Begin() in exactly Size() advances, and
// that advancing the sentinel changes nothing.
func checkAdvance(t *testing.T, seq Combination) {
	var (
		cursor = seq.Begin()
		end    = seq.End()
		count  = uint(0)
	)
	//
	for !cursor.Equals(end) {
		cursor.Advance()
		count++
	}
	//
	if count != seq.Size() {
		t.Errorf("C(%d,%d): expected %d advances, got %d",
			seq.NumberElements(), seq.SubsetSize(), seq.Size(), count)
	}
	//
	cursor.Advance()
	//
	if !cursor.Equals(end) {
		t.Errorf("C(%d,%d): expected sentinel to remain at End()",
			seq.NumberElements(), seq.SubsetSize())
	}
}

// Check that every subset of size k drawn from n elements is strictly
// increasing, within bounds, and lexicographically beyond its predecessor.
func checkOrdered(t *testing.T, n uint, k uint) {
	var (
		enum     = Combinations(n, k)
		count    = uint(0)
		previous []uint
	)
	//
	for enum.HasNext() {
		ith := enum.Next()
		//
		if uint(len(ith)) != k {
			t.Errorf("C(%d,%d): expected %d offsets, got %v", n, k, k, ith)
		}
		//
		for i := 1; i < len(ith); i++ {
			if ith[i-1] >= ith[i] {
				t.Errorf("C(%d,%d): subset %v not strictly increasing", n, k, ith)
			}
		}
		//
		if k > 0 && ith[k-1] >= n {
			t.Errorf("C(%d,%d): subset %v out of bounds", n, k, ith)
		}
		//
		if count > 0 && !lexLess(previous, ith) {
			t.Errorf("C(%d,%d): %v does not precede %v", n, k, previous, ith)
		}
		//
		previous = ith
		count++
	}
	// Sanity check cardinality
	if expected := math.Binomial(n, k); count != expected {
		t.Errorf("C(%d,%d): expected %d subsets, got %d", n, k, expected, count)
	}
}

func checkEnumerator[E any](t *testing.T, enumerator Enumerator[E], expected []E, eq func(E, E) bool) {
	for i := 0; i < len(expected); i++ {
		ith := enumerator.Next()
		if !eq(ith, expected[i]) {
			t.Errorf("expected %v, got %v", any(expected[i]), any(ith))
		}
	}
	// Sanity check lengths match
	if enumerator.HasNext() {
		t.Errorf("expected %d elements, got more", len(expected))
	}
}

func arrayEquals[T comparable](lhs []T, rhs []T) bool {
	return slices.Equal(lhs, rhs)
}

func uintEquals(lhs uint, rhs uint) bool {
	return lhs == rhs
}

func lexLess(lhs []uint, rhs []uint) bool {
	return slices.Compare(lhs, rhs) < 0
}

func Test_Combinations_Find(t *testing.T) {
	enum := Combinations(5, 2)
	// First subset not containing offset 0.
	index, ok := Find[[]uint](enum, func(ith []uint) bool { return ith[0] != 0 })
	//
	if !ok || index != 4 {
		t.Errorf("expected index 4, got %d (%v)", index, ok)
	}
}
