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

package gclplugin

import ormguard "github.com/ormguard/ormguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// SafeOperations are additional qualified operation names unioned into
	// the safe-operation whitelist.
	SafeOperations []string `json:"safe-operations,omitzero"`
	// TagKeys replaces the struct-tag keys scanned for association tokens.
	TagKeys []string `json:"tag-keys,omitzero"`
	// RequiredCall is the Owner.Method path of the registration call.
	RequiredCall *string `json:"required-call,omitzero"`
	// EntityMarkers replaces the qualified names of embedded marker types.
	EntityMarkers []string `json:"entity-markers,omitzero"`
}

// Options converts [Settings] into a list of [ormguard.Option] for the
// ormguard analyzers. It processes settings and applies them only when
// explicitly set.
func (s Settings) Options() []ormguard.Option {
	var opts []ormguard.Option

	if len(s.SafeOperations) > 0 {
		opts = append(opts, ormguard.WithSafeOperations(s.SafeOperations...))
	}

	if len(s.TagKeys) > 0 {
		opts = append(opts, ormguard.WithTagKeys(s.TagKeys...))
	}

	if s.RequiredCall != nil {
		opts = append(opts, ormguard.WithRequiredCall(*s.RequiredCall))
	}

	if len(s.EntityMarkers) > 0 {
		opts = append(opts, ormguard.WithEntityMarkers(s.EntityMarkers...))
	}

	return opts
}
