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
	"strings"
)

// RequiredCall identifies the registration call by owner and method name.
// The owner is a simple name matched against receiver type names, package
// names, and package path suffixes; ambiguity resolves in favor of matching,
// preferring availability of the check over precision.
type RequiredCall struct {
	Owner  string
	Method string
}

// ParseRequiredCall splits a dotted path into a [RequiredCall]: the last
// segment is the method name, the segment before it the owner's simple name.
// A path-qualified owner like example.com/orm.Tracker is reduced to its
// simple name. The second result is false for a malformed path; callers then
// treat every construction as unregistrable rather than failing the run.
func ParseRequiredCall(path string) (RequiredCall, bool) {
	parts := strings.Split(path, ".")
	if len(parts) < 2 {
		return RequiredCall{}, false
	}

	owner, method := parts[len(parts)-2], parts[len(parts)-1]
	if i := strings.LastIndexByte(owner, '/'); i >= 0 {
		owner = owner[i+1:]
	}

	if owner == "" || method == "" {
		return RequiredCall{}, false
	}

	return RequiredCall{Owner: owner, Method: method}, true
}

// Matches reports whether the call invokes the required method on the
// required owner: a method whose receiver type has the owner's name, or a
// package function whose package name or path suffix matches the owner.
func (r RequiredCall) Matches(info *types.Info, call *ast.CallExpr) bool {
	var sel *ast.Ident

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.SelectorExpr:
		sel = fun.Sel
	case *ast.Ident:
		sel = fun
	default:
		return false
	}

	if sel.Name != r.Method {
		return false
	}

	fn, ok := info.Uses[sel].(*types.Func)
	if !ok {
		return false
	}

	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return r.ownerType(sig.Recv().Type())
	}

	return r.ownerPackage(fn.Pkg())
}

// MethodNamed reports whether the call invokes a method with the required
// name, regardless of the receiver type. This covers the chained form where
// the construction itself is the receiver of the registration.
func (r RequiredCall) MethodNamed(call *ast.CallExpr) bool {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)

	return ok && sel.Sel.Name == r.Method
}

func (r RequiredCall) ownerType(typ types.Type) bool {
	typ = types.Unalias(typ)
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(ptr.Elem())
	}

	named, ok := typ.(*types.Named)

	return ok && named.Obj().Name() == r.Owner
}

func (r RequiredCall) ownerPackage(pkg *types.Package) bool {
	if pkg == nil {
		return false
	}

	return pkg.Name() == r.Owner || strings.HasSuffix(pkg.Path(), "/"+r.Owner) || pkg.Path() == r.Owner
}
