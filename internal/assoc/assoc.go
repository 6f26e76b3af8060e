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

// Package assoc implements the association safety analysis.
//
// It flags every syntactic construct through which the live value of an
// ORM-managed association field could be mutated in place or escape to code
// outside the owning type without first being copied. The analysis is
// whitelist based: only operations proven to return a fresh container, or to
// read one without retaining it, pass; everything else is denied.
package assoc

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"github.com/ormguard/ormguard/internal/astutil"
	"github.com/ormguard/ormguard/internal/resolve"
	"github.com/ormguard/ormguard/internal/safelist"
)

// Options configures the association safety analysis.
type Options struct {
	// Name is the analyzer name, used for nolint matching.
	Name string

	// TagKeys are the struct-tag keys scanned for association tokens.
	TagKeys []string

	// Safe is the immutable whitelist of safe operations.
	Safe *safelist.List

	// Generated enables analysis of generated files.
	Generated bool
}

// Run executes the association safety analysis over one package.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	in, err := astutil.Inspector(p)
	if err != nil {
		return nil, err
	}

	c := &checker{
		pass:     p,
		name:     o.Name,
		resolver: resolve.New(p.TypesInfo, o.TagKeys),
		safe:     o.Safe,
		keys:     o.TagKeys,
		reported: make(map[ast.Node]bool),
	}

	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		c.file = astutil.NewCurrentFile(p.Fset, file)
		if !c.file.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		if c.file.Generated() && !o.Generated {
			continue
		}

		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1], o.Name) {
			continue
		}

		// Declaration-level checks, once per struct type in this file.
		for cur := range f.Preorder((*ast.StructType)(nil)) {
			c.checkStructDecl(cur.Node().(*ast.StructType))
		}

		// Usage-level checks, per function body.
		for cur := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := cur.Node().(*ast.FuncDecl)
			if fun.Body == nil {
				continue
			}

			if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1], o.Name) {
				continue
			}

			c.walkBlock(fun.Body)
		}

		// Package-level initializers can leak through package-scoped values.
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					for _, value := range vs.Values {
						c.checkValue(value, ctxBound)
					}
				}
			}
		}
	}

	return nil, nil
}
