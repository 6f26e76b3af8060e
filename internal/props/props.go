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

// Package props implements the entity field shape check: a single pass over
// tracked entity struct declarations verifying each persisted field has a
// shape the ORM can manage. All defects of one field merge into a single
// finding; distinct fields report separately.
package props

import (
	"fmt"
	"go/ast"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/ormguard/ormguard/internal/astutil"
	"github.com/ormguard/ormguard/internal/resolve"
)

// Options configures the shape check.
type Options struct {
	// Name is the analyzer name, used for nolint matching.
	Name string

	// TagKeys are the struct-tag keys checked for the "-" exemption.
	TagKeys []string

	// Markers are qualified names of embedded types marking a struct as a
	// tracked entity.
	Markers []string

	// Generated enables analysis of generated files.
	Generated bool
}

// Run executes the shape check over one package.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	in, err := astutil.Inspector(p)
	if err != nil {
		return nil, err
	}

	markers := make(map[string]bool, len(o.Markers))
	for _, m := range o.Markers {
		markers[m] = true
	}

	var file astutil.CurrentFile

	for f := range in.Root().Children() {
		astFile, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		file = astutil.NewCurrentFile(p.Fset, astFile)
		if !file.Valid() {
			astutil.InternalError(p, astFile, "File %s without valid info", astFile.Name.Name)

			continue
		}

		if file.Generated() && !o.Generated {
			continue
		}

		if astFile.Doc != nil && astutil.CommentHasNoLint(astFile.Doc.List[len(astFile.Doc.List)-1], o.Name) {
			continue
		}

		for cur := range f.Preorder((*ast.TypeSpec)(nil)) {
			spec := cur.Node().(*ast.TypeSpec)

			st, ok := spec.Type.(*ast.StructType)
			if !ok || st.Fields == nil {
				continue
			}

			if !entity(p.TypesInfo, st, markers) {
				continue
			}

			for _, field := range st.Fields.List {
				checkField(p, file, o, spec.Name.Name, field)
			}
		}
	}

	return nil, nil
}

// entity reports whether the struct embeds one of the marker types.
func entity(info *types.Info, st *ast.StructType, markers map[string]bool) bool {
	for _, field := range st.Fields.List {
		if len(field.Names) > 0 {
			continue
		}

		if t := info.TypeOf(field.Type); t != nil && markers[resolve.TypeName(t)] {
			return true
		}
	}

	return false
}

// checkField validates one declared field, merging all of its defects into a
// single finding.
func checkField(p *analysis.Pass, file astutil.CurrentFile, o *Options, entityName string, field *ast.Field) {
	if len(field.Names) == 0 {
		return // embedded, including the marker itself
	}

	if exempt(field, o.TagKeys) {
		return
	}

	typ := p.TypesInfo.TypeOf(field.Type)

	for _, name := range field.Names {
		var defects []string

		if !name.IsExported() {
			defects = append(defects, "must be exported")
		}

		if typ != nil && !persistable(typ) {
			defects = append(defects, fmt.Sprintf("must have a persistable type, not %s", typ))
		}

		if len(defects) == 0 {
			continue
		}

		if file.NoLintComment(field.Pos(), o.Name) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     name.Pos(),
			End:     name.End(),
			Message: fmt.Sprintf("field %s of entity %s %s", name.Name, entityName, strings.Join(defects, " and ")),
		})
	}
}

// exempt reports whether the field opts out of persistence with a "-" tag
// under one of the configured keys.
func exempt(field *ast.Field, keys []string) bool {
	if field.Tag == nil {
		return false
	}

	tag, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return false
	}

	st := reflect.StructTag(tag)
	for _, key := range keys {
		if value, ok := st.Lookup(key); ok && value == "-" {
			return true
		}
	}

	return false
}

// persistable rejects types no ORM can map to a column or relation.
func persistable(typ types.Type) bool {
	switch u := typ.Underlying().(type) {
	case *types.Chan, *types.Signature:
		return false

	case *types.Basic:
		return u.Kind() != types.UnsafePointer

	default:
		return true
	}
}
