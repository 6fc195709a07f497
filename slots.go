// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tree234

import "github.com/cockroachdb/errors"

const (
	maxKeys     = 3
	maxChildren = maxKeys + 1
)

// keys stores the keys of a node. Occupied slots are packed to the left.
type keys[T any] [maxKeys]T

// children stores the child pointers of a node. A leaf has none.
type children[T any] [maxChildren]*node[T]

// insertAt inserts a value into the given index, pushing all subsequent values
// forward. Whatever occupied the last slot is dropped.
func (s *keys[T]) insertAt(index int, item T) {
	shiftIn(s[:], index, item)
}

// removeAt removes a value at a given index, pulling all subsequent values
// back. The last slot is cleared.
func (s *keys[T]) removeAt(index int) T {
	return shiftOut(s[:], index)
}

// truncate clears every slot from index on.
func (s *keys[T]) truncate(index int) {
	var zero T
	for i := index; i < len(s); i++ {
		s[i] = zero
	}
}

// insertAt inserts a child into the given index, pushing all subsequent
// children forward.
func (s *children[T]) insertAt(index int, n *node[T]) {
	shiftIn(s[:], index, n)
}

// removeAt removes the child at the given index, pulling all subsequent
// children back.
func (s *children[T]) removeAt(index int) *node[T] {
	return shiftOut(s[:], index)
}

// truncate drops every child from index on.
func (s *children[T]) truncate(index int) {
	for i := index; i < len(s); i++ {
		s[i] = nil
	}
}

func shiftIn[E any](s []E, index int, v E) {
	last := len(s) - 1
	if index < 0 || index > last {
		panic(errors.AssertionFailedf("insertion index (is %d) should be <= len (is %d)", index, last))
	}
	copy(s[index+1:], s[index:last])
	s[index] = v
}

func shiftOut[E any](s []E, index int) E {
	last := len(s) - 1
	if index < 0 || index > last {
		panic(errors.AssertionFailedf("removal index (is %d) should be <= len (is %d)", index, last))
	}
	v := s[index]
	copy(s[index:], s[index+1:])
	var zero E
	s[last] = zero
	return v
}
