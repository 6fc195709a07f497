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
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneWithArena(t *testing.T) {
	tr := From(rand.Perm(500))
	a := arena.NewArena()
	defer a.Free()
	c := tr.CloneWithArena(a)
	requireValid(t, c)
	require.True(t, tr.Equal(c))
	require.True(t, c.Delete(250))
	require.True(t, tr.Find(250))
	requireValid(t, c)
}

func BenchmarkBothClone(b *testing.B) {
	tr := From(rand.Perm(16392))

	b.ResetTimer()

	b.Run(`Clone`, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tr2 := tr.Clone()
			tr2.Len()
		}
		runtime.GC()
	})

	b.Run(`CloneWithArena`, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a := arena.NewArena()
			tr2 := tr.CloneWithArena(a)
			tr2.Len()
			a.Free()
		}
		runtime.GC()
	})
}
