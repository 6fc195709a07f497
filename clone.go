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

// Clone returns a deep copy of the tree. The copy shares no nodes with t and
// has the same layout, so t.Equal(t.Clone()) holds. Keys are copied by value.
// The copy gets a free list of its own and t's logger.
func (t *Tree234[T]) Clone() *Tree234[T] {
	t2 := &Tree234[T]{
		length:   t.length,
		freelist: NewFreeList[T](DefaultFreeListSize),
		less:     t.less,
		log:      t.log,
	}
	if t.root != nil {
		t2.root = t.root.clone(t2)
	}
	return t2
}

func (n *node[T]) clone(t *Tree234[T]) *node[T] {
	n2 := t.newNode()
	n2.keys = n.keys
	n2.size = n.size
	if !n.leaf() {
		for i := 0; i <= n.size; i++ {
			n2.children[i] = n.children[i].clone(t)
		}
	}
	return n2
}
