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
package math

// Binomial computes the binomial coefficient C(n,k), i.e. the number of ways
// of choosing k items from n.  This is exact, since every intermediate value
// is itself a binomial coefficient; overflow (which first arises around n=68
// for central k) is not guarded against.
func Binomial(n uint, k uint) uint {
	if k > n {
		return 0
	}
	// Exploit symmetry to shorten the product.
	if k > n-k {
		k = n - k
	}
	//
	result := uint64(1)
	//
	for i := uint64(0); i < uint64(k); i++ {
		// Multiply before dividing; i+1 always divides exactly, since the
		// running value is C(n,i+1).
		result = result * (uint64(n) - i) / (i + 1)
	}
	//
	return uint(result)
}
