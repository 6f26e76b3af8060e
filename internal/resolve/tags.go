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

package resolve

import (
	"reflect"
	"strings"
)

// Kind identifies one association category of a managed member.
type Kind uint8

// Association kinds, one bit each so they compose into a [KindSet].
const (
	OneToMany Kind = 1 << iota
	ManyToMany
	OneToOne
	ManyToOne
)

// KindSet is a set of association [Kind] values.
type KindSet uint8

// collections are the association kinds whose members are collection-shaped.
const collections = KindSet(OneToMany | ManyToMany)

// Any reports whether the set contains at least one association kind.
func (s KindSet) Any() bool { return s != 0 }

// Collection reports whether the set contains a collection-shaped kind.
func (s KindSet) Collection() bool { return s&collections != 0 }

// Has reports whether the set contains the given kind.
func (s KindSet) Has(k Kind) bool { return s&KindSet(k) != 0 }

// String returns the canonical tokens of the set, semicolon separated.
func (s KindSet) String() string {
	var tokens []string
	for _, t := range []struct {
		kind Kind
		name string
	}{
		{OneToMany, "one2many"},
		{ManyToMany, "many2many"},
		{OneToOne, "one2one"},
		{ManyToOne, "many2one"},
	} {
		if s.Has(t.kind) {
			tokens = append(tokens, t.name)
		}
	}

	return strings.Join(tokens, ";")
}

// ParseTag extracts association kinds from a raw struct-tag string. Every
// configured key is consulted; tokens are semicolon separated and a token may
// carry a colon-delimited argument, so GORM's `many2many:join_table` form is
// recognized alongside the bare canonical tokens.
func ParseTag(tag string, keys []string) KindSet {
	var set KindSet

	st := reflect.StructTag(tag)
	for _, key := range keys {
		value, ok := st.Lookup(key)
		if !ok {
			continue
		}

		for token := range strings.SplitSeq(value, ";") {
			token = strings.TrimSpace(token)
			if name, _, found := strings.Cut(token, ":"); found {
				token = name
			}

			switch token {
			case "one2many":
				set |= KindSet(OneToMany)
			case "many2many":
				set |= KindSet(ManyToMany)
			case "one2one":
				set |= KindSet(OneToOne)
			case "many2one":
				set |= KindSet(ManyToOne)
			}
		}
	}

	return set
}
