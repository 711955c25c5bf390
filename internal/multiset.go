/*
 * Copyright 2026 The lazysort-go Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import "math/bits"

// MultisetAccumulator folds 64-bit item hashes into a fingerprint of the
// multiset fed to it so far. The fold is commutative: two accumulators fed
// the same hashes in any order compare equal, while a lost, duplicated, or
// substituted item changes the count, the wrapping sum, or the xor.
type MultisetAccumulator struct {
	count uint64
	sum   uint64
	xor   uint64
}

func (a *MultisetAccumulator) Update(hash uint64) {
	a.count++
	a.sum += hash
	a.xor ^= bits.RotateLeft64(hash, int(hash&63))
}

func (a *MultisetAccumulator) Count() uint64 {
	return a.count
}

func (a *MultisetAccumulator) Equal(other *MultisetAccumulator) bool {
	return a.count == other.count && a.sum == other.sum && a.xor == other.xor
}

// Digest condenses the accumulated state into a single word, mostly for
// logging in test failures. Equality of digests is necessary but not
// sufficient for multiset equality; use Equal for the real comparison.
func (a *MultisetAccumulator) Digest() uint64 {
	return a.sum ^ bits.RotateLeft64(a.xor, 31) ^ bits.RotateLeft64(a.count, 11)
}
