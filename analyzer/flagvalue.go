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
	"strings"

	"github.com/ormguard/ormguard/internal/safelist"
)

// listValue is a comma-separated [flag.Value] bound to a string slice.
// Append mode accumulates across repeated uses; replace mode overwrites the
// bound slice wholesale on every use.
type listValue struct {
	values  *[]string
	replace bool
}

// appendList binds an accumulating list flag to target.
func appendList(target *[]string) *listValue {
	return &listValue{values: target}
}

// replaceList binds an overwriting list flag to target.
func replaceList(target *[]string) *listValue {
	return &listValue{values: target, replace: true}
}

// Set implements [flag.Value].
func (f *listValue) Set(s string) error {
	items := splitList(s)

	if f.replace {
		*f.values = items
	} else {
		*f.values = append(*f.values, items...)
	}

	return nil
}

// String implements [flag.Value].
func (f *listValue) String() string {
	if f == nil || f.values == nil {
		return ""
	}

	return strings.Join(*f.values, ",")
}

// Get implements [flag.Getter].
func (f *listValue) Get() any {
	if f == nil || f.values == nil {
		return []string(nil)
	}

	return *f.values
}

// splitList parses a comma-separated list, dropping empty items.
func splitList(s string) []string {
	var items []string

	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// fileValue is a [flag.Value] loading extra whitelist entries from a YAML
// file into the bound slice.
type fileValue struct {
	values *[]string
	path   string
}

// Set implements [flag.Value].
func (f *fileValue) Set(path string) error {
	extra, err := safelist.Load(path)
	if err != nil {
		return err
	}

	*f.values = append(*f.values, extra...)
	f.path = path

	return nil
}

// String implements [flag.Value].
func (f *fileValue) String() string {
	if f == nil {
		return ""
	}

	return f.path
}

// Get implements [flag.Getter].
func (f *fileValue) Get() any {
	if f == nil {
		return ""
	}

	return f.path
}
