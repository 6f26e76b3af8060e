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

package resolve_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ormguard/ormguard/internal/resolve"
)

const source = `package p

type Meta struct {
	Kids []int ` + "`orm:\"one2many\"`" + `
}

type Box[T any] struct {
	Items []T ` + "`gorm:\"many2many:box_items\"`" + `
}

type Entity struct {
	Meta  ` + "`orm:\"one2one\"`" + `
	Refs  []string ` + "`orm:\"many2many\"`" + `
	Owner *Entity ` + "`orm:\"many2one\"`" + `
	Plain []int
}

func use(e Entity, b Box[int], ptr *Entity) {
	_ = e.Refs
	_ = e.Kids
	_ = b.Items
	_ = e.Plain
	_ = e.Owner
	_ = ptr.Refs
}

func same(e Entity, o Entity) {
	e.Refs = append(e.Refs, "a")
	e.Refs = append(o.Refs, "b")
}
`

// typecheck parses and checks source, returning the file and its type
// information.
func typecheck(t *testing.T) (*ast.File, *types.Info) {
	t.Helper()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "p.go", source, parser.SkipObjectResolution)
	require.NoError(t, err)

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}

	var conf types.Config
	_, err = conf.Check("p", fset, []*ast.File{f}, info)
	require.NoError(t, err)

	return f, info
}

// selectors returns every selector expression with the given trailing name,
// in source order.
func selectors(f *ast.File, name string) []*ast.SelectorExpr {
	var out []*ast.SelectorExpr

	ast.Inspect(f, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok && sel.Sel.Name == name {
			out = append(out, sel)
		}

		return true
	})

	return out
}

func TestAssociations(t *testing.T) {
	t.Parallel()

	f, info := typecheck(t)
	r := resolve.New(info, defaultKeys)

	tests := []struct {
		name string
		sel  string
		want resolve.KindSet
	}{
		{
			name: "direct field",
			sel:  "Refs",
			want: resolve.KindSet(resolve.ManyToMany),
		},
		{
			name: "promoted field merges carrier tag",
			sel:  "Kids",
			want: resolve.KindSet(resolve.OneToMany | resolve.OneToOne),
		},
		{
			name: "instantiated generic field",
			sel:  "Items",
			want: resolve.KindSet(resolve.ManyToMany),
		},
		{
			name: "reference association",
			sel:  "Owner",
			want: resolve.KindSet(resolve.ManyToOne),
		},
		{
			name: "untagged field",
			sel:  "Plain",
			want: resolve.KindSet(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sels := selectors(f, tt.sel)
			require.NotEmpty(t, sels)
			assert.Equal(t, tt.want, r.Associations(sels[0]))
		})
	}
}

func TestAssociationsThroughPointer(t *testing.T) {
	t.Parallel()

	f, info := typecheck(t)
	r := resolve.New(info, defaultKeys)

	sels := selectors(f, "Refs")
	require.GreaterOrEqual(t, len(sels), 2)

	// ptr.Refs in use is the second occurrence
	assert.Equal(t, resolve.KindSet(resolve.ManyToMany), r.Associations(sels[1]))
}

func TestField(t *testing.T) {
	t.Parallel()

	f, info := typecheck(t)
	r := resolve.New(info, defaultKeys)

	sels := selectors(f, "Refs")
	require.NotEmpty(t, sels)

	v, ok := r.Field(sels[0])
	require.True(t, ok)
	assert.Equal(t, "Refs", v.Name())

	_, ok = r.Field(ast.NewIdent("unresolved"))
	assert.False(t, ok)
}

func TestSameReference(t *testing.T) {
	t.Parallel()

	f, info := typecheck(t)
	r := resolve.New(info, defaultKeys)

	sels := selectors(f, "Refs")
	require.Len(t, sels, 6)

	// within same: e.Refs and e.Refs share the root, o.Refs does not
	assert.True(t, r.SameReference(sels[2], sels[3]))
	assert.False(t, r.SameReference(sels[4], sels[5]))
}
