// Copyright 2026 The ormguard Authors. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package safelist implements the whitelist of operations known to produce a
// fresh container, or to read a container without leaking a mutable
// reference to it.
package safelist

import (
	"slices"
	"strings"
)

// List is an immutable set of qualified operation names. Membership uses
// exact or dotted-prefix matching, so an entry covers instantiations and
// method variants sharing its base qualified name.
type List struct {
	names []string // sorted, deduplicated
}

// New builds a [List] from the built-in defaults unioned with extra entries.
// Extra entries can only widen the list. The result is immutable.
func New(extra ...string) *List {
	names := make([]string, 0, len(defaults)+len(extra))
	names = append(names, defaults...)
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	slices.Sort(names)
	names = slices.Compact(names)

	return &List{names: names}
}

// Safe reports whether the qualified operation name equals an entry or
// extends one at a dot boundary. "slices.Clone" matches the entry
// "slices.Clone"; "example.com/coll.List.Copy" matches the entry
// "example.com/coll.List".
func (l *List) Safe(name string) bool {
	for name != "" {
		if _, ok := slices.BinarySearch(l.names, name); ok {
			return true
		}

		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return false
		}

		name = name[:i]
	}

	return false
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.names)
}
