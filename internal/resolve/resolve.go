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

// Package resolve is the symbol resolution facade for the ormguard analyzers.
//
// It answers declaration questions against one package's [types.Info]: which
// struct field an expression denotes, and which association tags that field
// carries. Resolution never fails; an expression that cannot be resolved
// yields the empty result, which callers must treat as "not managed" rather
// than as an error.
package resolve

import (
	"go/ast"
	"go/types"
)

// Resolver resolves expressions against one package's type information.
type Resolver struct {
	info *types.Info
	keys []string
}

// New creates a [Resolver] for the given type information and struct-tag keys.
func New(info *types.Info, keys []string) *Resolver {
	return &Resolver{info: info, keys: keys}
}

// Field resolves expr to the struct field it denotes. It handles qualified
// references (x.f, recv.f) through field selections and bare identifiers that
// name a field, such as composite literal keys. The second result is false
// for anything else, including unresolvable expressions.
func (r *Resolver) Field(expr ast.Expr) (*types.Var, bool) {
	switch e := ast.Unparen(expr).(type) {
	case *ast.SelectorExpr:
		if selection, ok := r.info.Selections[e]; ok && selection.Kind() == types.FieldVal {
			if v, ok := selection.Obj().(*types.Var); ok {
				return v, true
			}
		}

	case *ast.Ident:
		if v, ok := r.info.Uses[e].(*types.Var); ok && v.IsField() {
			return v, true
		}
	}

	return nil, false
}

// Associations returns the merged association kinds of the field denoted by
// expr. The result is the union of three tag sources for one logical field:
// the tag on the field of the instantiated struct, the tags on every embedded
// carrier field along the promotion path, and the tag on the corresponding
// field of the generic origin struct when the owner is an instantiated
// generic. The same logical field can be declared in all three positions, and
// missing the merge would silently drop tags written at only one of them.
func (r *Resolver) Associations(expr ast.Expr) KindSet {
	sel, ok := ast.Unparen(expr).(*ast.SelectorExpr)
	if !ok {
		return 0
	}

	selection, ok := r.info.Selections[sel]
	if !ok || selection.Kind() != types.FieldVal {
		return 0
	}

	var set KindSet

	t := selection.Recv()
	for _, idx := range selection.Index() {
		inst, origin := structAt(t)
		if inst == nil || idx >= inst.NumFields() {
			return set
		}

		set |= ParseTag(inst.Tag(idx), r.keys)
		if origin != nil && idx < origin.NumFields() {
			set |= ParseTag(origin.Tag(idx), r.keys)
		}

		t = inst.Field(idx).Type()
	}

	return set
}

// SameReference reports whether two expressions denote the same field
// selected from the same root identifier. Used to recognize the
// self-append idiom, where one finding already covers the statement.
func (r *Resolver) SameReference(a, b ast.Expr) bool {
	fa, ok := r.Field(a)
	if !ok {
		return false
	}

	fb, ok := r.Field(b)
	if !ok || fa != fb {
		return false
	}

	ra, ok := r.rootObject(a)
	if !ok {
		return false
	}

	rb, ok := r.rootObject(b)

	return ok && ra == rb
}

// rootObject returns the object of the leftmost identifier of a selector
// chain.
func (r *Resolver) rootObject(expr ast.Expr) (types.Object, bool) {
	for {
		switch e := ast.Unparen(expr).(type) {
		case *ast.SelectorExpr:
			expr = e.X

		case *ast.Ident:
			obj := r.info.Uses[e]
			return obj, obj != nil

		default:
			return nil, false
		}
	}
}

// structAt unwraps t to its struct underlying, dereferencing one pointer
// level. For instantiated generics the origin struct is returned as well so
// tags declared on the uninstantiated declaration participate in the merge.
func structAt(t types.Type) (inst, origin *types.Struct) {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	if named, ok := t.(*types.Named); ok {
		if named.TypeArgs().Len() > 0 {
			origin, _ = named.Origin().Underlying().(*types.Struct)
		}

		t = named.Underlying()
	}

	inst, _ = t.(*types.Struct)

	return inst, origin
}
