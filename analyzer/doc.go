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

// Package analyzer implements the ormguard static analysis passes.
//
// # Overview
//
// ormguard polices mutable state managed by an ORM. Three analyzers ship in
// this package:
//
//   - ormassoc flags code that leaks or mutates the live backing store of an
//     association collection field instead of working on a copy.
//   - ormregister flags constructions of tracked entity types that are never
//     handed to the required registration call.
//   - ormshape flags entity struct fields the ORM cannot manage.
//
// # Example
//
// Given an entity with a managed association collection:
//
//	type Parent struct {
//	    orm.Model
//	    children []Child `orm:"one2many"`
//	}
//
// returning the field directly leaks the live collection:
//
//	func (p *Parent) Children() []Child { return p.children } // reported
//
// while returning a copy is safe:
//
//	func (p *Parent) Children() []Child { return slices.Clone(p.children) }
//
// Only whitelisted operations count as copies. The built-in whitelist covers
// the slices and maps packages and common read-only terminals; configuration
// can widen it with additional qualified names, never narrow it.
//
// # Suppressing diagnostics
//
// Individual lines can be exempted with a trailing
// //nolint:ormassoc, //nolint:ormregister, //nolint:ormshape, or
// //nolint:ormguard comment.
package analyzer
