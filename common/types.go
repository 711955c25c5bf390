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

// Package common holds the item-level building blocks shared by the sorting
// packages: comparator function types, partial-ordering results, and item
// hashers used to fingerprint runs of items.
package common

// CompareFn is a three-way comparator: the result is negative when a orders
// before b, zero when the two are equivalent, and positive when a orders
// after b.
type CompareFn[T any] func(a, b T) int

// PartialCompareFn compares two items under a partial order, where a pair of
// items may have no defined ordering at all.
type PartialCompareFn[T any] func(a, b T) PartialOrdering

// PartialOrdering is the outcome of a partial comparison. Unlike a three-way
// comparator result it has a fourth case, Incomparable, for pairs the order
// says nothing about.
type PartialOrdering int8

const (
	Less PartialOrdering = iota - 1
	Equal
	Greater
	Incomparable
)

func (o PartialOrdering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Incomparable:
		return "Incomparable"
	}
	return "PartialOrdering(invalid)"
}

// ItemHasher produces a 64-bit hash of an item. Hashes from the same hasher
// are stable across runs, so accumulated fingerprints of item runs can be
// compared without retaining the items themselves.
type ItemHasher[T any] interface {
	Hash(item T) uint64
}
