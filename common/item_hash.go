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
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// All item hashers share one fixed seed so that fingerprints built from them
// are comparable across runs and processes.
const _DEFAULT_HASH_SEED = uint64(9001)

type StringItemHasher struct{}

func (h StringItemHasher) Hash(item string) uint64 {
	datum := unsafe.Slice(unsafe.StringData(item), len(item))
	return murmur3.SeedSum64(_DEFAULT_HASH_SEED, datum[:])
}

type Int64ItemHasher struct {
	scratch [8]byte
}

func (h Int64ItemHasher) Hash(item int64) uint64 {
	binary.LittleEndian.PutUint64(h.scratch[:], uint64(item))
	return murmur3.SeedSum64(_DEFAULT_HASH_SEED, h.scratch[:])
}

// Float64ItemHasher hashes the IEEE-754 bit pattern, so -0 and 0 hash
// differently and every quiet NaN with the same payload hashes the same.
type Float64ItemHasher struct {
	scratch [8]byte
}

func (h Float64ItemHasher) Hash(item float64) uint64 {
	binary.LittleEndian.PutUint64(h.scratch[:], math.Float64bits(item))
	return murmur3.SeedSum64(_DEFAULT_HASH_SEED, h.scratch[:])
}

// BytesItemHasher hashes raw byte items with a seeded XXHash64 digest.
type BytesItemHasher struct{}

func (h BytesItemHasher) Hash(item []byte) uint64 {
	d := xxhash.NewWithSeed(_DEFAULT_HASH_SEED)
	d.Write(item)
	return d.Sum64()
}
