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

// Package config holds the resolved settings shared by the ormguard analyzers.
package config

import "slices"

// DefaultRequiredCall is the documented placeholder for the registration
// call. The owner segment matches either a receiver type name or a
// package name.
const DefaultRequiredCall = "EntityTracker.Register"

// DefaultTagKeys are the struct-tag keys scanned for association tokens.
var DefaultTagKeys = []string{"orm", "gorm"}

// DefaultEntityMarkers are qualified names of embedded types that mark a
// struct as a tracked entity.
var DefaultEntityMarkers = []string{
	"gorm.io/gorm.Model",
	"github.com/uptrace/bun.BaseModel",
}

// Settings carries the configuration shared by the ormguard analyzers.
// A Settings value is mutated only while flags and options are applied;
// afterwards it is read-only.
type Settings struct {
	// TagKeys are the struct-tag keys scanned for association tokens.
	TagKeys []string

	// SafeOperations are extra qualified operation names unioned into the
	// built-in whitelist. Configuration can only widen the whitelist.
	SafeOperations []string

	// RequiredCall is the dotted Owner.Method path of the call that must
	// follow every construction of a tracked entity type.
	RequiredCall string

	// EntityMarkers are qualified names of embedded marker types that make
	// a struct type tracked.
	EntityMarkers []string

	// Generated enables analysis of generated files.
	Generated bool
}

// Default returns a fresh [Settings] value with all defaults applied.
func Default() *Settings {
	return &Settings{
		TagKeys:       slices.Clone(DefaultTagKeys),
		RequiredCall:  DefaultRequiredCall,
		EntityMarkers: slices.Clone(DefaultEntityMarkers),
	}
}
