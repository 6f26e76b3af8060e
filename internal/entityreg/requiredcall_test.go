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

package entityreg_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ormguard/ormguard/internal/entityreg"
)

func TestParseRequiredCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want entityreg.RequiredCall
		ok   bool
	}{
		{
			name: "owner and method",
			path: "EntityTracker.Register",
			want: entityreg.RequiredCall{Owner: "EntityTracker", Method: "Register"},
			ok:   true,
		},
		{
			name: "path qualified owner",
			path: "example.com/orm.Tracker.Register",
			want: entityreg.RequiredCall{Owner: "Tracker", Method: "Register"},
			ok:   true,
		},
		{
			name: "package function",
			path: "example.com/orm.Register",
			want: entityreg.RequiredCall{Owner: "orm", Method: "Register"},
			ok:   true,
		},
		{
			name: "no dot",
			path: "register-now",
			ok:   false,
		},
		{
			name: "empty",
			path: "",
			ok:   false,
		},
		{
			name: "empty method",
			path: "Tracker.",
			ok:   false,
		},
		{
			name: "empty owner",
			path: ".Register",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := entityreg.ParseRequiredCall(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

const callSource = `package p

type Tracker struct{}

func (t *Tracker) Register(e any) {}

type Other struct{}

func (o *Other) Register(e any) {}

func Register(e any) {}

func use(t *Tracker, o *Other, e any) {
	t.Register(e)
	o.Register(e)
	Register(e)
	t.Reset()
}

func (t *Tracker) Reset() {}
`

func parseCalls(t *testing.T) ([]*ast.CallExpr, *types.Info) {
	t.Helper()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "p.go", callSource, parser.SkipObjectResolution)
	require.NoError(t, err)

	info := &types.Info{
		Uses:       make(map[*ast.Ident]types.Object),
		Defs:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Types:      make(map[ast.Expr]types.TypeAndValue),
	}

	var conf types.Config
	_, err = conf.Check("p", fset, []*ast.File{f}, info)
	require.NoError(t, err)

	var calls []*ast.CallExpr

	ast.Inspect(f, func(n ast.Node) bool {
		if call, ok := n.(*ast.CallExpr); ok {
			calls = append(calls, call)
		}

		return true
	})

	require.Len(t, calls, 4)

	return calls, info
}

func TestMatches(t *testing.T) {
	t.Parallel()

	calls, info := parseCalls(t)

	req, ok := entityreg.ParseRequiredCall("Tracker.Register")
	require.True(t, ok)

	assert.True(t, req.Matches(info, calls[0]), "method on the owner type")
	assert.False(t, req.Matches(info, calls[1]), "method on another type")
	assert.False(t, req.Matches(info, calls[2]), "package function of another package")
	assert.False(t, req.Matches(info, calls[3]), "different method name")
}

func TestMatchesPackageFunction(t *testing.T) {
	t.Parallel()

	calls, info := parseCalls(t)

	req, ok := entityreg.ParseRequiredCall("p.Register")
	require.True(t, ok)

	assert.True(t, req.Matches(info, calls[2]), "package name matches the owner")
}

func TestMethodNamed(t *testing.T) {
	t.Parallel()

	calls, _ := parseCalls(t)

	req, ok := entityreg.ParseRequiredCall("Tracker.Register")
	require.True(t, ok)

	assert.True(t, req.MethodNamed(calls[0]))
	assert.True(t, req.MethodNamed(calls[1]), "receiver type is not consulted")
	assert.False(t, req.MethodNamed(calls[2]), "plain call is not a method")
	assert.False(t, req.MethodNamed(calls[3]))
}
