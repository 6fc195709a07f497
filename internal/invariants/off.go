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

//go:build !invariants && !race

// Package invariants reports whether expensive self-checks are compiled in.
// Build with -tags invariants (or -race) to have every tree mutation verify
// the whole tree afterwards.
package invariants

// Enabled is true if we were built with the "invariants" or "race" build tags.
const Enabled = false
