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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/ormguard/ormguard/internal/astutil"
	"github.com/ormguard/ormguard/internal/resolve"
)

// violation classifies how an unregistered construction was lost.
type violation uint8

const (
	neverRegistered violation = iota
	usedBeforeRegistration
	returnedUnregistered
	escapesUnregistered
)

// tracker holds the per-run state of the registration analysis: the dedup
// set of classified constructions, the memo of proven factory methods, and
// the reported-violation set. All of it is created inside Run, so parallel
// passes over different packages never share a tracker.
type tracker struct {
	pass  *analysis.Pass
	name  string
	file  astutil.CurrentFile
	req   RequiredCall
	reqOK bool
	// reqLabel is the raw configured path, used verbatim in messages.
	reqLabel string

	markers     map[string]bool
	processed   map[ast.Node]bool
	reported    map[ast.Node]bool
	factories   map[string]bool
	trackedMemo map[*types.Named]bool

	// proving suppresses reporting and counts outcomes instead, for
	// factory-method proofs.
	proving    bool
	registered int
	lost       int
}

func newTracker(p *analysis.Pass, name, requiredCall string, markers []string) *tracker {
	req, ok := ParseRequiredCall(requiredCall)

	markerSet := make(map[string]bool, len(markers))
	for _, m := range markers {
		markerSet[m] = true
	}

	return &tracker{
		pass:        p,
		name:        name,
		req:         req,
		reqOK:       ok,
		reqLabel:    requiredCall,
		markers:     markerSet,
		processed:   make(map[ast.Node]bool),
		reported:    make(map[ast.Node]bool),
		factories:   make(map[string]bool),
		trackedMemo: make(map[*types.Named]bool),
	}
}

// tracked reports whether typ is a tracked entity type: a struct embedding
// one of the configured marker types. Results are memoized per named type.
func (t *tracker) tracked(typ types.Type) bool {
	if typ == nil {
		return false
	}

	typ = types.Unalias(typ)
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(ptr.Elem())
	}

	named, ok := typ.(*types.Named)
	if !ok {
		return false
	}

	if v, ok := t.trackedMemo[named]; ok {
		return v
	}

	t.trackedMemo[named] = false // cycle guard

	res := false
	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := range st.NumFields() {
			f := st.Field(i)
			if f.Embedded() && t.markers[resolve.TypeName(f.Type())] {
				res = true

				break
			}
		}
	}

	t.trackedMemo[named] = res

	return res
}

// construction unwraps expr to a construction site of a tracked type:
// a composite literal, its address, or new(T). The returned node identifies
// the site for deduplication.
func (t *tracker) construction(expr ast.Expr) (ast.Node, types.Type, bool) {
	e := ast.Unparen(expr)
	if unary, ok := e.(*ast.UnaryExpr); ok && unary.Op == token.AND {
		e = ast.Unparen(unary.X)
	}

	switch e := e.(type) {
	case *ast.CompositeLit:
		if typ := t.pass.TypesInfo.TypeOf(e); t.tracked(typ) {
			return e, typ, true
		}

	case *ast.CallExpr:
		if resolve.CalleeName(t.pass.TypesInfo, e) == "new" && len(e.Args) == 1 {
			if typ := t.pass.TypesInfo.TypeOf(e.Args[0]); t.tracked(typ) {
				return e, typ, true
			}
		}
	}

	return nil, nil, false
}

// register classifies a construction site as registered. Terminal, at most
// once per node.
func (t *tracker) register(node ast.Node) {
	if t.processed[node] {
		return
	}

	t.processed[node] = true

	if t.proving {
		t.registered++
	}
}

// violate classifies a construction site as unregistered. Terminal, at most
// once per node; reporting honors nolint comments.
func (t *tracker) violate(node ast.Node, typ types.Type, v violation) {
	if t.processed[node] {
		return
	}

	t.processed[node] = true

	if t.proving {
		t.lost++

		return
	}

	if t.reported[node] {
		return
	}

	t.reported[node] = true

	if t.file.NoLintComment(node.Pos(), t.name) {
		return
	}

	entity := resolve.TypeName(typ)

	var msg string
	switch v {
	case usedBeforeRegistration:
		msg = fmt.Sprintf("entity %s is used before being registered with %s", entity, t.reqLabel)
	case returnedUnregistered:
		msg = fmt.Sprintf("entity %s is constructed and returned without being registered with %s", entity, t.reqLabel)
	case escapesUnregistered:
		msg = fmt.Sprintf("entity %s is constructed and escapes without being registered with %s", entity, t.reqLabel)
	default:
		msg = fmt.Sprintf("entity %s is constructed but never registered with %s", entity, t.reqLabel)
	}

	t.pass.Report(analysis.Diagnostic{Pos: node.Pos(), End: node.End(), Message: msg})
}
