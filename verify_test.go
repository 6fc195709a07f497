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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	for _, tc := range []struct {
		name  string
		build func(tr *Tree234[int])
		err   string
	}{
		{
			name: "valid",
			build: func(tr *Tree234[int]) {
				withRoot(tr, nodeOf(tr, []int{10}, leafOf(tr, 5), leafOf(tr, 15)))
			},
		},
		{
			name: "unordered keys",
			build: func(tr *Tree234[int]) {
				withRoot(tr, leafOf(tr, 3, 1))
			},
			err: "root: key 1 (1) less than key 0 (3)",
		},
		{
			name: "key outside separators",
			build: func(tr *Tree234[int]) {
				withRoot(tr, nodeOf(tr, []int{10}, leafOf(tr, 5), leafOf(tr, 7)))
			},
			err: "root: child 1: key 7 below separator 10",
		},
		{
			name: "missing child",
			build: func(tr *Tree234[int]) {
				withRoot(tr, nodeOf(tr, []int{10, 20}, leafOf(tr, 5), leafOf(tr, 15)))
			},
			err: "root: 2 keys but child slot 2 occupied: false",
		},
		{
			name: "stale slot",
			build: func(tr *Tree234[int]) {
				n := leafOf(tr, 1, 2)
				n.size = 1
				withRoot(tr, n)
			},
			err: "root: slot 1 beyond size 1 is occupied",
		},
		{
			name: "uneven leaves",
			build: func(tr *Tree234[int]) {
				withRoot(tr, nodeOf(tr, []int{10},
					leafOf(tr, 5),
					nodeOf(tr, []int{20}, leafOf(tr, 15), leafOf(tr, 25))))
			},
			err: "root: child 1 has height 2, child 0 has height 1",
		},
		{
			name: "empty non-root",
			build: func(tr *Tree234[int]) {
				withRoot(tr, nodeOf(tr, []int{10}, leafOf(tr), leafOf(tr, 15)))
			},
			err: "root: child 0: non-root node holds no keys",
		},
		{
			name: "foreign node",
			build: func(tr *Tree234[int]) {
				other := New[int]()
				withRoot(tr, nodeOf(tr, []int{10}, leafOf(other, 5), leafOf(tr, 15)))
			},
			err: "root: child 0: node not owned by tree",
		},
		{
			name: "wrong length",
			build: func(tr *Tree234[int]) {
				withRoot(tr, leafOf(tr, 1, 2))
				tr.length = 3
			},
			err: "tree holds 2 keys, length is 3",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr := New[int]()
			tc.build(tr)
			err := tr.Verify()
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.err)
		})
	}
}

// Verify must report a malformed tree rather than crash while inspecting it.
func TestVerifyMalformedDoesNotPanic(t *testing.T) {
	tr := New[int]()
	require.NotPanics(t, func() {
		withRoot(tr, nodeOf(tr, []int{10, 20}, leafOf(tr, 5), leafOf(tr, 15)))
	})
	require.Equal(t, 4, tr.Len())
	require.NotPanics(t, func() { require.Error(t, tr.Verify()) })
}
