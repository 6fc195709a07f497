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

//go:build invariants || race

package tree234

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutationsVerify(t *testing.T) {
	tr := From([]int{1, 2})
	tr.length = 5
	require.Panics(t, func() { tr.Insert(3) })

	tr = From([]int{1, 2, 3, 4})
	tr.length = 10
	require.Panics(t, func() { tr.Delete(1) })
}
