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

// Package entityreg implements the entity registration analysis.
//
// Every construction of a tracked entity type must be followed by the
// configured registration call before the entity escapes: passed directly,
// invoked on the construction, registered on the binding before any other
// use, or constructed inside a proven factory method. The analysis is
// flow sensitive within a block and intra-procedural, with one transitive
// exception: a function proven to construct and register on its own is
// trusted by all of its call sites.
package entityreg

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"github.com/ormguard/ormguard/internal/astutil"
)

// Options configures the registration analysis.
type Options struct {
	// Name is the analyzer name, used for nolint matching.
	Name string

	// RequiredCall is the dotted Owner.Method path of the registration call.
	// A malformed path degrades to reporting every tracked construction
	// rather than failing the run.
	RequiredCall string

	// Markers are qualified names of embedded types marking a struct as a
	// tracked entity.
	Markers []string

	// Generated enables analysis of generated files.
	Generated bool
}

// Run executes the registration analysis over one package.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	in, err := astutil.Inspector(p)
	if err != nil {
		return nil, err
	}

	t := newTracker(p, o.Name, o.RequiredCall, o.Markers)

	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		t.file = astutil.NewCurrentFile(p.Fset, file)
		if !t.file.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		if t.file.Generated() && !o.Generated {
			continue
		}

		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1], o.Name) {
			continue
		}

		for cur := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := cur.Node().(*ast.FuncDecl)
			if fun.Body == nil {
				continue
			}

			if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1], o.Name) {
				continue
			}

			// Constructions inside a proven factory are trusted wholesale.
			if t.isFactory(fun) {
				continue
			}

			t.walkBody(fun.Body)
		}

		// Package-level initializers have no registering follow-up.
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					for _, value := range vs.Values {
						if node, typ, ok := t.construction(value); ok {
							t.violate(node, typ, neverRegistered)

							continue
						}

						t.walkValue(value)
					}
				}
			}
		}
	}

	return nil, nil
}
