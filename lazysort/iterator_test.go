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

package lazysort

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterator_ExhaustionIsIdempotent(t *testing.T) {
	it := Sorted(slices.Values([]int{2, 1}))
	_, ok := it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.True(t, ok)
	for i := 0; i < 3; i++ {
		v, ok := it.Next()
		assert.False(t, ok)
		assert.Equal(t, 0, v)
		assert.Equal(t, 0, it.Len())
	}
}

func TestIterator_LenTracksRemaining(t *testing.T) {
	it := Sorted(slices.Values([]int{4, 2, 3, 1}))
	assert.Equal(t, 4, it.Len())
	for want := 3; want >= 0; want-- {
		_, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, want, it.Len())
	}
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, it.Len())
}

func TestIterator_SeqEarlyBreakResumes(t *testing.T) {
	it := Sorted(slices.Values([]int{5, 3, 8, 1, 9, 2, 7}))
	var prefix []int
	for v := range it.Seq() {
		prefix = append(prefix, v)
		if len(prefix) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, prefix)
	assert.Equal(t, 4, it.Len())

	// Next and a fresh Seq both continue from where the break left off.
	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{7, 8, 9}, slices.Collect(it.Seq()))
}

func TestIterator_SourceSliceUntouched(t *testing.T) {
	input := []int{3, 1, 2}
	it := Sorted(slices.Values(input))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(it.Seq()))
	assert.Equal(t, []int{3, 1, 2}, input)
}
