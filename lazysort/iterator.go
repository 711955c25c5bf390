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

// Package lazysort sorts a finite sequence lazily: instead of sorting the
// whole input up front, it returns an iterator that yields elements in
// comparator order one at a time, doing only the partitioning work needed to
// isolate each next element. Consuming the first k of n elements costs
// O(n + k log k) comparisons on average, so taking a small prefix of a large
// sequence is much cheaper than a full sort.
//
// The engine is an in-place quicksort with the recursion reified as an
// explicit stack of pending ranges, so the computation suspends between
// calls to Next with no goroutines involved. It is not a general sorting
// library: fully draining the iterator does the same total work as an
// ordinary quicksort, plus per-step bookkeeping.
package lazysort

import (
	"iter"

	"github.com/lazysort/lazysort-go/common"
)

// workItem is a pending unit of sorting work over the buffer: either the
// half-open range [start, end) not yet known to be sorted, or, when final is
// set, the single index start whose element is already in sorted position.
type workItem struct {
	start int
	end   int
	final bool
}

// Iterator yields the elements of its source sequence in comparator order,
// one per call to Next. It owns a mutable copy of the source elements and
// partitions it in place, so the source is never touched after construction.
//
// An Iterator is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally. A partially consumed Iterator may
// be abandoned at any point.
type Iterator[T any] struct {
	data      []T
	work      []workItem
	compareFn common.CompareFn[T]
	remaining int
}

func newIterator[T any](data []T, compareFn common.CompareFn[T]) *Iterator[T] {
	it := &Iterator[T]{
		data:      data,
		compareFn: compareFn,
		remaining: len(data),
	}
	if len(data) > 0 {
		it.work = append(it.work, workItem{start: 0, end: len(data)})
	}
	return it
}

// Next returns the next element in sorted order. The second return is false
// once every element has been yielded; after that every further call keeps
// returning false. A panic out of the comparator propagates to the caller
// and leaves the Iterator in an unspecified state that must not be reused.
func (it *Iterator[T]) Next() (T, bool) {
	for len(it.work) > 0 {
		top := it.work[len(it.work)-1]
		it.work = it.work[:len(it.work)-1]
		if top.final || top.end-top.start == 1 {
			it.remaining--
			return it.data[top.start], true
		}
		p := it.partition(top.start, top.end)
		// Push order matters: the left range must be resolved and emitted in
		// full before the pivot, and the pivot before anything on its right.
		if p+1 < top.end {
			it.work = append(it.work, workItem{start: p + 1, end: top.end})
		}
		it.work = append(it.work, workItem{start: p, final: true})
		if top.start < p {
			it.work = append(it.work, workItem{start: top.start, end: p})
		}
	}
	var zero T
	return zero, false
}

// partition rearranges [start, end), end-start >= 2, around the element at
// the range midpoint so that everything comparing less than it precedes it,
// and returns the pivot's final index. The scan index and the store index
// are both confined to the range no matter what the comparator returns, so
// the two sub-ranges are always strictly shorter than their parent and the
// sort terminates even under an inconsistent comparator.
func (it *Iterator[T]) partition(start, end int) int {
	last := end - 1
	mid := start + (end-start)/2
	it.data[mid], it.data[last] = it.data[last], it.data[mid]
	store := start
	for i := start; i < last; i++ {
		if it.compareFn(it.data[i], it.data[last]) < 0 {
			it.data[i], it.data[store] = it.data[store], it.data[i]
			store++
		}
	}
	it.data[store], it.data[last] = it.data[last], it.data[store]
	return store
}

// Len returns the exact number of elements not yet yielded.
func (it *Iterator[T]) Len() int {
	return it.remaining
}

// Seq adapts the Iterator to a range-over-func sequence draining it via
// Next. Breaking out of the range early just suspends the Iterator: the
// elements yielded so far stay consumed, and both Next and a later Seq
// resume from the current position.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
