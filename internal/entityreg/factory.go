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
	"go/types"

	"github.com/ormguard/ormguard/internal/resolve"
)

// isFactory reports whether fun is a proven factory method: it declares a
// tracked result type, constructs a tracked entity, and binds the required
// call to that construction. Proven names are memoized for the run, so every
// later encounter is trusted without re-deriving the proof; the factory
// already guarantees registration for all its callers.
func (t *tracker) isFactory(fun *ast.FuncDecl) bool {
	fn, ok := t.pass.TypesInfo.Defs[fun.Name].(*types.Func)
	if !ok {
		return false
	}

	qname := resolve.FuncName(fn)
	if proven, ok := t.factories[qname]; ok {
		return proven
	}

	t.factories[qname] = false // recursion guard
	proven := t.prove(fun)
	t.factories[qname] = proven

	return proven
}

// prove runs the registration walk over the candidate's body in counting
// mode: the factory qualifies when at least one construction classifies as
// registered.
func (t *tracker) prove(fun *ast.FuncDecl) bool {
	if !t.reqOK || fun.Body == nil || fun.Type.Results == nil {
		return false
	}

	returnsTracked := false

	for _, res := range fun.Type.Results.List {
		if t.tracked(t.pass.TypesInfo.TypeOf(res.Type)) {
			returnsTracked = true

			break
		}
	}

	if !returnsTracked {
		return false
	}

	proof := *t
	proof.proving = true
	proof.registered = 0
	proof.lost = 0
	proof.processed = make(map[ast.Node]bool)

	proof.walkBody(fun.Body)

	return proof.registered > 0
}
