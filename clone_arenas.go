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

//go:build goexperiment.arenas

package tree234

import (
	"arena"
)

// CloneWithArena is Clone with every node and the tree itself allocated in a.
// The copy must not be used after a is freed.
func (t *Tree234[T]) CloneWithArena(a *arena.Arena) *Tree234[T] {
	t2 := arena.New[Tree234[T]](a)
	t2.freelist = arena.New[FreeList[T]](a)
	t2.freelist.freelist = arena.MakeSlice[*node[T]](a, 0, cap(t.freelist.freelist))
	t2.length = t.length
	t2.less = t.less
	t2.log = t.log
	if t.root != nil {
		t2.root = t.root.cloneWithArena(a, t2)
	}
	return t2
}

func (n *node[T]) cloneWithArena(a *arena.Arena, t *Tree234[T]) *node[T] {
	n2 := arena.New[node[T]](a)
	n2.t = t
	n2.keys = n.keys
	n2.size = n.size
	if !n.leaf() {
		for i := 0; i <= n.size; i++ {
			n2.children[i] = n.children[i].cloneWithArena(a, t)
		}
	}
	return n2
}
