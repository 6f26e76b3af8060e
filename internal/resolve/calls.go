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

package resolve

import (
	"go/ast"
	"go/types"
)

// CalleeName returns the dotted qualified name of a call's target:
// "pkg/path.Func" for package functions, "pkg/path.Type.Method" for methods,
// the bare name for builtins, and the qualified type name for conversions.
// The empty string means the target could not be resolved.
func CalleeName(info *types.Info, call *ast.CallExpr) string {
	fun := ast.Unparen(call.Fun)

	// unwrap explicit generic instantiation
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = ast.Unparen(f.X)
	case *ast.IndexListExpr:
		fun = ast.Unparen(f.X)
	}

	switch f := fun.(type) {
	case *ast.Ident:
		return objectName(info.Uses[f])

	case *ast.SelectorExpr:
		return objectName(info.Uses[f.Sel])
	}

	// conversion to an unnamed type, e.g. []Child(x)
	if tv, ok := info.Types[fun]; ok && tv.IsType() {
		return TypeName(tv.Type)
	}

	return ""
}

// FuncName returns the dotted qualified name of a function or method
// declaration, the same rendering [CalleeName] produces for its call sites.
func FuncName(fn *types.Func) string {
	return objectName(fn)
}

// objectName renders a resolved object as a dotted qualified name.
func objectName(obj types.Object) string {
	switch o := obj.(type) {
	case nil:
		return ""

	case *types.Builtin:
		return o.Name()

	case *types.TypeName:
		return TypeName(o.Type())

	case *types.Func:
		if sig, ok := o.Type().(*types.Signature); ok && sig.Recv() != nil {
			if recv := TypeName(sig.Recv().Type()); recv != "" {
				return recv + "." + o.Name()
			}

			return o.Name()
		}

		return qualify(o.Pkg(), o.Name())

	default:
		return qualify(obj.Pkg(), obj.Name())
	}
}

// TypeName returns the dotted qualified name of a named type, dereferencing
// one pointer level. Unnamed types render with [types.Type.String].
func TypeName(t types.Type) string {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return t.String()
	}

	obj := named.Obj()

	return qualify(obj.Pkg(), obj.Name())
}

func qualify(pkg *types.Package, name string) string {
	if pkg == nil {
		return name
	}

	return pkg.Path() + "." + name
}
