/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package index maps an (ordering, element count) pair to the positional
// slot layout of an ordered raw name list.
package index

import "dirpx.dev/namefx/types"

// Absent marks a slot that has no position in the list.
const Absent = -1

const (
	// MinCount is the smallest supported element count.
	MinCount = 2
	// MaxCount is the largest supported element count.
	MaxCount = 5
)

// Index holds one 0-based position per slot, or Absent.
type Index struct {
	Prefix     int
	FirstName  int
	MiddleName int
	LastName   int
	Suffix     int
}

// absent has no slot assigned.
var absent = Index{Prefix: Absent, FirstName: Absent, MiddleName: Absent, LastName: Absent, Suffix: Absent}

// table is indexed by [ordering][count-MinCount].
var table = [2][MaxCount - MinCount + 1]Index{
	types.ByFirst: {
		{Prefix: Absent, FirstName: 0, MiddleName: Absent, LastName: 1, Suffix: Absent},
		{Prefix: Absent, FirstName: 0, MiddleName: 1, LastName: 2, Suffix: Absent},
		{Prefix: 0, FirstName: 1, MiddleName: 2, LastName: 3, Suffix: Absent},
		{Prefix: 0, FirstName: 1, MiddleName: 2, LastName: 3, Suffix: 4},
	},
	types.ByLast: {
		{Prefix: Absent, FirstName: 1, MiddleName: Absent, LastName: 0, Suffix: Absent},
		{Prefix: Absent, FirstName: 1, MiddleName: 2, LastName: 0, Suffix: Absent},
		{Prefix: 0, FirstName: 2, MiddleName: 3, LastName: 1, Suffix: Absent},
		{Prefix: 0, FirstName: 2, MiddleName: 3, LastName: 1, Suffix: 4},
	},
}

// Resolve returns the slot layout for count elements listed in ordering.
// Counts outside [MinCount, MaxCount] yield an index with every slot Absent;
// rejecting such counts is left to the validator.
func Resolve(ordering types.Ordering, count int) Index {
	if count < MinCount || count > MaxCount || int(ordering) >= len(table) {
		return absent
	}
	return table[ordering][count-MinCount]
}

// Valid reports whether both required slots have a position.
func (i Index) Valid() bool {
	return i.FirstName != Absent && i.LastName != Absent
}

// Position returns the position of slot, or Absent.
func (i Index) Position(slot types.Namon) int {
	switch slot {
	case types.Prefix:
		return i.Prefix
	case types.FirstName:
		return i.FirstName
	case types.MiddleName:
		return i.MiddleName
	case types.LastName:
		return i.LastName
	case types.Suffix:
		return i.Suffix
	}
	return Absent
}
