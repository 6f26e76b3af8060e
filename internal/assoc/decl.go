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

package assoc

import (
	"go/ast"
	"go/types"
	"strconv"

	"github.com/ormguard/ormguard/internal/resolve"
)

// checkStructDecl performs the declaration-level checks on every association
// field of a struct type. These fire once per declaration, independent of and
// in addition to any usage findings on the same field: a collection-shaped
// association must be a non-nullable, mutable container.
func (c *checker) checkStructDecl(st *ast.StructType) {
	if st.Fields == nil {
		return
	}

	for _, field := range st.Fields.List {
		if field.Tag == nil {
			continue
		}

		tag, err := strconv.Unquote(field.Tag.Value)
		if err != nil {
			continue
		}

		kinds := resolve.ParseTag(tag, c.keys)
		if !kinds.Collection() {
			// reference-shaped associations may be nullable
			continue
		}

		c.checkCollectionField(field)
	}
}

// checkCollectionField validates the declared type of one collection-shaped
// association field.
func (c *checker) checkCollectionField(field *ast.Field) {
	t := c.pass.TypesInfo.TypeOf(field.Type)
	if t == nil {
		return // no type information, conservatively not managed
	}

	name := declaredName(field)

	switch u := types.Unalias(t).(type) {
	case *types.Pointer:
		c.report(field, "managed collection field %s cannot be nullable: declared as %s", name, t)

	case *types.Slice, *types.Map:
		// plain mutable container

	case *types.Named:
		if !c.safe.Safe(resolve.TypeName(u)) {
			c.report(field, "managed collection field %s must be a plain slice or map, or a whitelisted container, not %s",
				name, resolve.TypeName(u))
		}

	default:
		c.report(field, "managed collection field %s must be a mutable container, not %s", name, t)
	}
}

// declaredName renders a field's name for messages, falling back to the type
// for embedded fields.
func declaredName(field *ast.Field) string {
	if len(field.Names) > 0 {
		return field.Names[0].Name
	}

	return types.ExprString(field.Type)
}
