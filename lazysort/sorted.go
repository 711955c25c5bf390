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
	"cmp"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/lazysort/lazysort-go/common"
)

// Sorted returns a lazy ascending iterator over seq using the natural order
// of T. The sequence must be finite; it is drained into an owned buffer
// before Sorted returns, which is the only eager step.
func Sorted[T constraints.Ordered](seq iter.Seq[T]) *Iterator[T] {
	return SortedBy(seq, cmp.Compare[T])
}

// SortedBy returns a lazy iterator over seq ordered by the given three-way
// comparator. No well-formedness check is made on compareFn: if it is not a
// consistent total preorder the output order is unspecified, but the
// iterator still terminates and still yields every input element exactly
// once.
func SortedBy[T any](seq iter.Seq[T], compareFn common.CompareFn[T]) *Iterator[T] {
	return newIterator(slices.Collect(seq), compareFn)
}

// SortedPartial returns a lazy ascending iterator over seq for element types
// that carry only a partial order. Pairs the partial order does relate use
// their real result; an incomparable pair is resolved by the bias flag so
// the engine still sees a total comparator. A value that is incomparable
// with itself (the NaN-like case) sorts before every value it is
// incomparable with when incomparableFirst is set, and after it otherwise.
// When neither side of an incomparable pair is the NaN-like case the bias
// alone decides, which keeps every comparison total but does not make
// chains of mutually incomparable values transitive.
func SortedPartial[T any](seq iter.Seq[T], partialFn common.PartialCompareFn[T], incomparableFirst bool) *Iterator[T] {
	return SortedBy(seq, resolvePartial(partialFn, incomparableFirst))
}

func resolvePartial[T any](partialFn common.PartialCompareFn[T], incomparableFirst bool) common.CompareFn[T] {
	return func(a, b T) int {
		switch partialFn(a, b) {
		case common.Less:
			return -1
		case common.Equal:
			return 0
		case common.Greater:
			return 1
		}
		biased := 1
		if incomparableFirst {
			biased = -1
		}
		aOrdinary := partialFn(a, a) == common.Equal
		bOrdinary := partialFn(b, b) == common.Equal
		switch {
		case aOrdinary && !bOrdinary:
			// b is the incomparable side; bias places it, so a gets the
			// opposite position.
			return -biased
		case !aOrdinary && bOrdinary:
			return biased
		}
		// Neither probe singles out a side. Fall back to placing the first
		// operand per the bias.
		return biased
	}
}
