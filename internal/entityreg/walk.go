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

package entityreg

import (
	"go/ast"
	"go/token"
	"go/types"
)

// followResult is the outcome of scanning the statements after a binding.
type followResult uint8

const (
	followNone followResult = iota
	followRegistered
	followEscaped
)

// walkBody analyzes one block. Lookahead for bind-then-register sequences
// only covers the binding's own block; a construction bound in a nested
// block is never registered by a statement of an outer one.
func (t *tracker) walkBody(block *ast.BlockStmt) {
	if block == nil {
		return
	}

	t.walkStmts(block.List)
}

func (t *tracker) walkStmts(stmts []ast.Stmt) {
	for i, stmt := range stmts {
		t.walkStmt(stmt, stmts[i+1:])
	}
}

func (t *tracker) walkStmt(stmt ast.Stmt, rest []ast.Stmt) {
	switch s := stmt.(type) {
	case nil:

	case *ast.BlockStmt:
		t.walkBody(s)

	case *ast.AssignStmt:
		t.walkAssign(s, rest)

	case *ast.DeclStmt:
		if gen, ok := s.Decl.(*ast.GenDecl); ok {
			for _, spec := range gen.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					t.walkValueSpec(vs, rest)
				}
			}
		}

	case *ast.ReturnStmt:
		for _, result := range s.Results {
			if node, typ, ok := t.construction(result); ok {
				t.violate(node, typ, returnedUnregistered)

				continue
			}

			t.walkValue(result)
		}

	case *ast.ExprStmt:
		t.walkValue(s.X)

	case *ast.GoStmt:
		t.walkValue(s.Call)

	case *ast.DeferStmt:
		t.walkValue(s.Call)

	case *ast.SendStmt:
		t.walkValue(s.Chan)
		t.walkValue(s.Value)

	case *ast.IfStmt:
		t.walkStmt(s.Init, nil)
		t.walkValue(s.Cond)
		t.walkBody(s.Body)
		t.walkStmt(s.Else, nil)

	case *ast.ForStmt:
		t.walkStmt(s.Init, nil)
		t.walkValue(s.Cond)
		t.walkStmt(s.Post, nil)
		t.walkBody(s.Body)

	case *ast.RangeStmt:
		t.walkValue(s.X)
		t.walkBody(s.Body)

	case *ast.SwitchStmt:
		t.walkStmt(s.Init, nil)
		t.walkValue(s.Tag)
		t.walkBody(s.Body)

	case *ast.TypeSwitchStmt:
		t.walkStmt(s.Init, nil)
		t.walkStmt(s.Assign, nil)
		t.walkBody(s.Body)

	case *ast.SelectStmt:
		t.walkBody(s.Body)

	case *ast.CaseClause:
		for _, expr := range s.List {
			t.walkValue(expr)
		}

		t.walkStmts(s.Body)

	case *ast.CommClause:
		t.walkStmt(s.Comm, nil)
		t.walkStmts(s.Body)

	case *ast.LabeledStmt:
		t.walkStmt(s.Stmt, rest)
	}
}

// walkAssign classifies constructions bound to local variables and walks
// everything else.
func (t *tracker) walkAssign(s *ast.AssignStmt, rest []ast.Stmt) {
	if len(s.Lhs) == len(s.Rhs) {
		for i := range s.Rhs {
			if node, typ, ok := t.construction(s.Rhs[i]); ok {
				t.classifyBound(node, typ, s.Lhs[i], rest)

				continue
			}

			t.walkValue(s.Rhs[i])
		}
	} else {
		for _, rhs := range s.Rhs {
			t.walkValue(rhs)
		}
	}

	for _, lhs := range s.Lhs {
		if _, ok := ast.Unparen(lhs).(*ast.Ident); !ok {
			t.walkValue(lhs)
		}
	}
}

func (t *tracker) walkValueSpec(vs *ast.ValueSpec, rest []ast.Stmt) {
	if len(vs.Names) == len(vs.Values) {
		for i, value := range vs.Values {
			if node, typ, ok := t.construction(value); ok {
				t.classifyBound(node, typ, vs.Names[i], rest)

				continue
			}

			t.walkValue(value)
		}

		return
	}

	for _, value := range vs.Values {
		t.walkValue(value)
	}
}

// classifyBound handles a construction bound to a variable: the first use of
// that variable in a subsequent statement of the same block must be the
// required call. Any other first use escapes the entity unchecked, which is
// terminal.
func (t *tracker) classifyBound(node ast.Node, typ types.Type, lhs ast.Expr, rest []ast.Stmt) {
	ident, ok := ast.Unparen(lhs).(*ast.Ident)
	if !ok || ident.Name == "_" {
		t.violate(node, typ, escapesUnregistered)

		return
	}

	obj := t.pass.TypesInfo.Defs[ident]
	if obj == nil {
		obj = t.pass.TypesInfo.Uses[ident]
	}

	if obj == nil {
		t.violate(node, typ, neverRegistered)

		return
	}

	switch t.followUp(obj, rest) {
	case followRegistered:
		t.register(node)
	case followEscaped:
		t.violate(node, typ, usedBeforeRegistration)
	default:
		t.violate(node, typ, neverRegistered)
	}
}

// followUp scans the statements after a binding for the first use of obj.
func (t *tracker) followUp(obj types.Object, stmts []ast.Stmt) followResult {
	for _, stmt := range stmts {
		use := firstUse(t.pass.TypesInfo, stmt, obj)
		if use == nil {
			continue
		}

		if t.registeringUse(stmt, use) {
			return followRegistered
		}

		return followEscaped
	}

	return followNone
}

// firstUse returns the earliest identifier in stmt resolving to obj.
func firstUse(info *types.Info, stmt ast.Stmt, obj types.Object) *ast.Ident {
	var first *ast.Ident

	ast.Inspect(stmt, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && info.Uses[id] == obj {
			if first == nil || id.Pos() < first.Pos() {
				first = id
			}
		}

		return true
	})

	return first
}

// registeringUse reports whether the given use is consumed by the required
// call, as an argument or as the receiver of the required method.
func (t *tracker) registeringUse(stmt ast.Stmt, use *ast.Ident) bool {
	if !t.reqOK {
		return false
	}

	found := false

	ast.Inspect(stmt, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || found {
			return !found
		}

		if t.req.Matches(t.pass.TypesInfo, call) {
			for _, arg := range call.Args {
				a := ast.Unparen(arg)
				if unary, ok := a.(*ast.UnaryExpr); ok && unary.Op == token.AND {
					a = ast.Unparen(unary.X)
				}

				if a == ast.Expr(use) {
					found = true

					return false
				}
			}
		}

		if t.req.MethodNamed(call) {
			if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok && ast.Unparen(sel.X) == ast.Expr(use) {
				found = true

				return false
			}
		}

		return true
	})

	return found
}

// walkValue traverses an expression, classifying every construction site it
// contains. A construction reached here without a registering context
// escapes unchecked.
func (t *tracker) walkValue(expr ast.Expr) {
	switch e := ast.Unparen(expr).(type) {
	case nil:

	case *ast.CallExpr:
		t.walkCall(e)

	case *ast.UnaryExpr:
		if node, typ, ok := t.construction(e); ok {
			t.violate(node, typ, escapesUnregistered)

			return
		}

		t.walkValue(e.X)

	case *ast.CompositeLit:
		if node, typ, ok := t.construction(e); ok {
			t.violate(node, typ, escapesUnregistered)

			return
		}

		for _, elt := range e.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				t.walkValue(kv.Value)

				continue
			}

			t.walkValue(elt)
		}

	case *ast.FuncLit:
		t.walkBody(e.Body)

	case *ast.BinaryExpr:
		t.walkValue(e.X)
		t.walkValue(e.Y)

	case *ast.StarExpr:
		t.walkValue(e.X)

	case *ast.SelectorExpr:
		t.walkValue(e.X)

	case *ast.IndexExpr:
		t.walkValue(e.X)
		t.walkValue(e.Index)

	case *ast.SliceExpr:
		t.walkValue(e.X)
		t.walkValue(e.Low)
		t.walkValue(e.High)
		t.walkValue(e.Max)

	case *ast.TypeAssertExpr:
		t.walkValue(e.X)

	case *ast.KeyValueExpr:
		t.walkValue(e.Value)
	}
}

// walkCall classifies constructions appearing directly in a call: arguments
// of the required call and receivers of the required method are registered;
// anything else escapes.
func (t *tracker) walkCall(call *ast.CallExpr) {
	fun := ast.Unparen(call.Fun)

	switch f := fun.(type) {
	case *ast.SelectorExpr:
		if node, typ, ok := t.construction(f.X); ok {
			if t.reqOK && t.req.MethodNamed(call) {
				t.register(node)
			} else {
				// method call on a fresh, unregistered construction
				t.violate(node, typ, usedBeforeRegistration)
			}
		} else {
			t.walkValue(f.X)
		}

	case *ast.FuncLit:
		t.walkBody(f.Body)
	}

	matched := t.reqOK && t.req.Matches(t.pass.TypesInfo, call)

	for _, arg := range call.Args {
		if node, typ, ok := t.construction(arg); ok {
			if matched {
				t.register(node)
			} else {
				t.violate(node, typ, escapesUnregistered)
			}

			continue
		}

		t.walkValue(arg)
	}
}
