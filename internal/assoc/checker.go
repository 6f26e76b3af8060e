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
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/ormguard/ormguard/internal/astutil"
	"github.com/ormguard/ormguard/internal/resolve"
	"github.com/ormguard/ormguard/internal/safelist"
)

// valueContext describes where a checked value flows, for the message only.
type valueContext uint8

const (
	ctxBound valueContext = iota
	ctxAssigned
	ctxReturned
	ctxSent
	ctxStored
)

// checker holds the per-pass state of the association safety analysis.
// Aside from the dedup set it is stateless per visited node; the whitelist
// is immutable and shared.
type checker struct {
	pass     *analysis.Pass
	name     string
	file     astutil.CurrentFile
	resolver *resolve.Resolver
	safe     *safelist.List
	keys     []string
	reported map[ast.Node]bool
}

// managedCollection reports whether expr is a direct reference to a
// collection-shaped association field. Unresolvable references count as not
// managed; false negatives are preferred over false positives when type
// information is absent.
func (c *checker) managedCollection(expr ast.Expr) bool {
	return c.resolver.Associations(expr).Collection()
}

// managedField reports whether expr is a direct reference to any association
// field, collection shaped or not.
func (c *checker) managedField(expr ast.Expr) bool {
	return c.resolver.Associations(expr).Any()
}

// fieldName renders the referenced field for messages.
func (c *checker) fieldName(expr ast.Expr) string {
	if v, ok := c.resolver.Field(expr); ok {
		return v.Name()
	}

	return "?"
}

// walkBlock walks every statement of a block.
func (c *checker) walkBlock(block *ast.BlockStmt) {
	if block == nil {
		return
	}

	for _, stmt := range block.List {
		c.walkStmt(stmt)
	}
}

func (c *checker) walkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case nil:

	case *ast.BlockStmt:
		c.walkBlock(s)

	case *ast.AssignStmt:
		c.walkAssign(s)

	case *ast.DeclStmt:
		if gen, ok := s.Decl.(*ast.GenDecl); ok {
			for _, spec := range gen.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					for _, value := range vs.Values {
						c.checkValue(value, ctxBound)
					}
				}
			}
		}

	case *ast.ReturnStmt:
		for _, result := range s.Results {
			c.checkValue(result, ctxReturned)
		}

	case *ast.ExprStmt:
		c.walkExpr(s.X)

	case *ast.SendStmt:
		c.walkExpr(s.Chan)
		c.checkValue(s.Value, ctxSent)

	case *ast.IfStmt:
		c.walkStmt(s.Init)
		c.walkExpr(s.Cond)
		c.walkBlock(s.Body)
		c.walkStmt(s.Else)

	case *ast.ForStmt:
		c.walkStmt(s.Init)
		c.walkExpr(s.Cond)
		c.walkStmt(s.Post)
		c.walkBlock(s.Body)

	case *ast.RangeStmt:
		c.walkExpr(s.X) // ranging reads elements, never the container
		c.walkBlock(s.Body)

	case *ast.SwitchStmt:
		c.walkStmt(s.Init)
		c.walkExpr(s.Tag)
		c.walkBlock(s.Body)

	case *ast.TypeSwitchStmt:
		c.walkStmt(s.Init)
		c.walkStmt(s.Assign)
		c.walkBlock(s.Body)

	case *ast.SelectStmt:
		c.walkBlock(s.Body)

	case *ast.CaseClause:
		for _, expr := range s.List {
			c.walkExpr(expr)
		}

		for _, st := range s.Body {
			c.walkStmt(st)
		}

	case *ast.CommClause:
		c.walkStmt(s.Comm)

		for _, st := range s.Body {
			c.walkStmt(st)
		}

	case *ast.GoStmt:
		c.walkExpr(s.Call)

	case *ast.DeferStmt:
		c.walkExpr(s.Call)

	case *ast.LabeledStmt:
		c.walkStmt(s.Stmt)

	case *ast.IncDecStmt:
		c.walkExpr(s.X)
	}
}

// walkAssign checks assignment targets and right-hand sides. The self-append
// idiom e.f = append(e.f, x) yields exactly one finding, on the target.
func (c *checker) walkAssign(s *ast.AssignStmt) {
	for _, lhs := range s.Lhs {
		c.checkAssignTarget(lhs)
	}

	what := ctxAssigned
	if s.Tok == token.DEFINE {
		what = ctxBound
	}

	for i, rhs := range s.Rhs {
		if i < len(s.Lhs) && c.selfAppend(s.Lhs[i], rhs) {
			call := ast.Unparen(rhs).(*ast.CallExpr)
			for _, arg := range call.Args[1:] {
				c.walkExpr(arg)
			}

			continue
		}

		c.checkValue(rhs, what)
	}
}

// checkAssignTarget flags stores into managed fields: whole-field
// replacement for any association kind, element stores for collections.
func (c *checker) checkAssignTarget(lhs ast.Expr) {
	switch t := ast.Unparen(lhs).(type) {
	case *ast.IndexExpr:
		if c.managedCollection(t.X) {
			c.report(t, "element modification of managed collection field %s", c.fieldName(t.X))

			return
		}

		c.walkExpr(t.X)
		c.walkExpr(t.Index)

	case *ast.SelectorExpr:
		if c.managedField(t) {
			c.report(t, "direct assignment to managed association field %s", c.fieldName(t))

			return
		}

		c.walkExpr(t.X)

	case *ast.StarExpr:
		c.walkExpr(t.X)
	}
}

// selfAppend recognizes e.f = append(e.f, ...) so the append argument is not
// reported a second time on top of the assignment finding.
func (c *checker) selfAppend(lhs, rhs ast.Expr) bool {
	call, ok := ast.Unparen(rhs).(*ast.CallExpr)
	if !ok || len(call.Args) == 0 {
		return false
	}

	if resolve.CalleeName(c.pass.TypesInfo, call) != "append" {
		return false
	}

	return c.resolver.SameReference(lhs, call.Args[0])
}

// checkValue checks an expression whose result escapes the current
// statement: bound to a variable, assigned, returned, sent, or stored in a
// composite. A raw managed collection reference here is a leak unless it is
// wrapped by a whitelisted safe operation.
func (c *checker) checkValue(expr ast.Expr, what valueContext) {
	switch e := ast.Unparen(expr).(type) {
	case nil:

	case *ast.SelectorExpr:
		if c.managedCollection(e) {
			c.leak(e, what)

			return
		}

		c.walkExpr(e.X)

	case *ast.UnaryExpr:
		if e.Op == token.AND && c.managedField(e.X) {
			c.report(e, "taking the address of managed association field %s aliases the live value", c.fieldName(e.X))

			return
		}

		c.checkValue(e.X, what)

	case *ast.SliceExpr:
		if c.managedCollection(e.X) {
			c.report(e, "slicing managed collection field %s aliases the live backing store, not a copy", c.fieldName(e.X))

			return
		}

		c.walkExpr(e.X)
		c.walkExpr(e.Low)
		c.walkExpr(e.High)
		c.walkExpr(e.Max)

	case *ast.CallExpr:
		c.checkCall(e, c.safeOperation(e))

	case *ast.CompositeLit:
		c.walkComposite(e)

	case *ast.FuncLit:
		c.walkBlock(e.Body)

	case *ast.BinaryExpr:
		c.walkExpr(e.X)
		c.walkExpr(e.Y)

	default:
		c.walkExpr(expr)
	}
}

// leak reports a raw managed collection reference escaping through a value
// position.
func (c *checker) leak(expr ast.Expr, what valueContext) {
	name := c.fieldName(expr)

	switch what {
	case ctxAssigned:
		c.report(expr, "assigning live managed collection field %s, not a copy", name)
	case ctxReturned:
		c.report(expr, "returning live managed collection field %s, not a copy", name)
	case ctxSent:
		c.report(expr, "sending live managed collection field %s over a channel, not a copy", name)
	case ctxStored:
		c.report(expr, "storing a live reference to managed collection field %s, not a copy", name)
	default:
		c.report(expr, "storing a live reference to managed collection field %s, not a copy, in a new binding", name)
	}
}

// walkExpr traverses an expression whose own value does not escape, looking
// for calls, function literals, and composites nested inside it. Reading a
// managed reference here is harmless and reports nothing.
func (c *checker) walkExpr(expr ast.Expr) {
	switch e := ast.Unparen(expr).(type) {
	case nil:

	case *ast.CallExpr:
		c.checkCall(e, c.safeOperation(e))

	case *ast.FuncLit:
		c.walkBlock(e.Body)

	case *ast.CompositeLit:
		c.walkComposite(e)

	case *ast.UnaryExpr:
		c.walkExpr(e.X)

	case *ast.BinaryExpr:
		c.walkExpr(e.X)
		c.walkExpr(e.Y)

	case *ast.StarExpr:
		c.walkExpr(e.X)

	case *ast.SelectorExpr:
		c.walkExpr(e.X)

	case *ast.IndexExpr:
		c.walkExpr(e.X)
		c.walkExpr(e.Index)

	case *ast.IndexListExpr:
		c.walkExpr(e.X)

	case *ast.SliceExpr:
		c.walkExpr(e.X)
		c.walkExpr(e.Low)
		c.walkExpr(e.High)
		c.walkExpr(e.Max)

	case *ast.TypeAssertExpr:
		c.walkExpr(e.X)

	case *ast.KeyValueExpr:
		c.walkExpr(e.Key)
		c.checkValue(e.Value, ctxStored)
	}
}

// walkComposite checks composite literal elements: storing a raw managed
// reference into a freshly built container still retains the live value.
func (c *checker) walkComposite(lit *ast.CompositeLit) {
	for _, elt := range lit.Elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			c.walkExpr(kv.Key)
			c.checkValue(kv.Value, ctxStored)

			continue
		}

		c.checkValue(elt, ctxStored)
	}
}

// checkCall checks a call's receiver and arguments. When the call itself is
// a verified safe operation, its direct managed arguments are the copy
// source and pass; everything nested deeper is still traversed.
func (c *checker) checkCall(call *ast.CallExpr, safe bool) {
	name := resolve.CalleeName(c.pass.TypesInfo, call)

	// Method call on a managed collection: default deny, only whitelisted
	// callees pass.
	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok {
		if c.managedCollection(sel.X) {
			if !safe && !c.safe.Safe(name) {
				c.report(call, "call to %s on managed collection field %s is not a whitelisted safe operation",
					sel.Sel.Name, c.fieldName(sel.X))
			}
		} else {
			c.walkExpr(sel.X)
		}
	}

	for i, arg := range call.Args {
		direct := ast.Unparen(arg)

		if inner, ok := direct.(*ast.UnaryExpr); ok && inner.Op == token.AND {
			if c.managedField(inner.X) {
				c.report(arg, "taking the address of managed association field %s aliases the live value", c.fieldName(inner.X))

				continue
			}
		}

		if c.managedCollection(direct) {
			switch {
			case safe:
				// wrapped by the verified copy operation

			case safeArgPosition(name, call, i):
				// read-only builtin position

			default:
				c.report(arg, "passing live managed collection field %s to %s, not a copy",
					c.fieldName(direct), calleeLabel(name, call))
			}

			continue
		}

		c.walkExpr(arg)
	}
}

// safeArgPosition reports whether a builtin reads its argument at position i
// without retaining or mutating it: len and cap always, copy's source, and
// append's element sources.
func safeArgPosition(name string, call *ast.CallExpr, i int) bool {
	switch name {
	case "len", "cap":
		return true

	case "copy":
		return i == 1

	case "append":
		// the base slice aliases into the result; element sources are copied
		return i > 0

	default:
		return false
	}
}

// calleeLabel names a call target in messages, preferring the resolved
// qualified name.
func calleeLabel(name string, call *ast.CallExpr) string {
	if name != "" {
		return name
	}

	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok {
		return sel.Sel.Name
	}

	return "a call"
}

// safeOperation implements the safe-operation predicate: the callee matches
// the whitelist and the call actually wraps a managed collection, either as
// receiver or as at least one direct argument. An unrelated whitelisted call
// is not a copy of anything.
func (c *checker) safeOperation(call *ast.CallExpr) bool {
	name := resolve.CalleeName(c.pass.TypesInfo, call)
	if name == "" || !c.safe.Safe(name) {
		return false
	}

	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok && c.managedCollection(sel.X) {
		return true
	}

	for _, arg := range call.Args {
		direct := ast.Unparen(arg)
		if inner, ok := direct.(*ast.UnaryExpr); ok && inner.Op == token.AND {
			direct = ast.Unparen(inner.X)
		}

		if c.managedCollection(direct) {
			return true
		}
	}

	return false
}

// report emits one finding per node, honoring nolint comments.
func (c *checker) report(rng analysis.Range, format string, args ...any) {
	if node, ok := rng.(ast.Node); ok {
		if c.reported[node] {
			return
		}

		c.reported[node] = true
	}

	if c.file.NoLintComment(rng.Pos(), c.name) {
		return
	}

	c.pass.Report(analysis.Diagnostic{
		Pos:     rng.Pos(),
		End:     rng.End(),
		Message: fmt.Sprintf(format, args...),
	})
}
