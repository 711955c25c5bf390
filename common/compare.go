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

package common

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// NaturalComparator returns a CompareFn ordering values by their natural
// order, reversed when reverseOrder is set. Floating-point values follow
// cmp.Compare, so NaN orders before (after, when reversed) every other value
// and equal to itself.
func NaturalComparator[T constraints.Ordered](reverseOrder bool) CompareFn[T] {
	return func(a, b T) int {
		if reverseOrder {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	}
}

// PartialFloatCompare is the natural partial order on floating-point values:
// ordinary values compare by value, and any comparison involving a NaN is
// Incomparable. NaN is in particular incomparable with itself, which is how
// the bias resolution in the sorting packages recognizes it.
func PartialFloatCompare[T constraints.Float](a, b T) PartialOrdering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	case a == b:
		return Equal
	}
	return Incomparable
}
