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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
)

// Public API constants for the ormguard analyzers.
const (
	associationsName = "ormassoc"
	associationsDoc  = `ormassoc detects aliasing leaks of ORM-managed association collections`

	registrationName = "ormregister"
	registrationDoc  = `ormregister verifies tracked entities are registered after construction`

	shapeName = "ormshape"
	shapeDoc  = `ormshape checks that entity struct fields have a shape the ORM can manage`

	url = "https://pkg.go.dev/github.com/ormguard/ormguard"
)

// NewAssociations creates a new instance of the association safety analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Associations] variable is typically sufficient.
func NewAssociations(opts ...Option) *analysis.Analyzer {
	r := makeRunOptions(Options(opts))

	a := &analysis.Analyzer{
		Name:     associationsName,
		Doc:      associationsDoc,
		URL:      url,
		Run:      r.runAssociations,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerAssociationFlags(&a.Flags, r)

	return a
}

// NewRegistration creates a new instance of the entity registration analyzer.
func NewRegistration(opts ...Option) *analysis.Analyzer {
	r := makeRunOptions(Options(opts))

	a := &analysis.Analyzer{
		Name:     registrationName,
		Doc:      registrationDoc,
		URL:      url,
		Run:      r.runRegistration,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerRegistrationFlags(&a.Flags, r)

	return a
}

// NewShape creates a new instance of the entity field shape analyzer.
func NewShape(opts ...Option) *analysis.Analyzer {
	r := makeRunOptions(Options(opts))

	a := &analysis.Analyzer{
		Name:     shapeName,
		Doc:      shapeDoc,
		URL:      url,
		Run:      r.runShape,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerShapeFlags(&a.Flags, r)

	return a
}

// Analyzers returns all three ormguard analyzers with the same options
// applied to each.
func Analyzers(opts ...Option) []*analysis.Analyzer {
	return []*analysis.Analyzer{
		NewAssociations(opts...),
		NewRegistration(opts...),
		NewShape(opts...),
	}
}

// Pre-configured analyzers with default settings.
var (
	// Associations is a pre-configured *[analysis.Analyzer] detecting
	// aliasing leaks of managed association collections.
	Associations = NewAssociations()

	// Registration is a pre-configured *[analysis.Analyzer] verifying
	// registration of tracked entities after construction.
	Registration = NewRegistration()

	// Shape is a pre-configured *[analysis.Analyzer] checking entity field
	// shapes.
	Shape = NewShape()
)
