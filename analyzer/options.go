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
	"log/slog"
	"slices"
)

// Option configures specific behavior of a new ormguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSafeOperations is an [Option] adding qualified operation names to the
// safe-operation whitelist. Entries union with the built-in defaults; the
// whitelist can only be widened.
func WithSafeOperations(names ...string) Option {
	return safeOperationsOption{names: names}
}

type safeOperationsOption struct{ names []string }

func (o safeOperationsOption) apply(r *runOptions) {
	r.settings.SafeOperations = append(r.settings.SafeOperations, o.names...)
}

func (o safeOperationsOption) LogAttr() slog.Attr {
	return slog.Any("safeOperations", o.names)
}

// WithTagKeys is an [Option] replacing the struct-tag keys scanned for
// association tokens.
func WithTagKeys(keys ...string) Option {
	return tagKeysOption{keys: keys}
}

type tagKeysOption struct{ keys []string }

func (o tagKeysOption) apply(r *runOptions) {
	r.settings.TagKeys = slices.Clone(o.keys)
}

func (o tagKeysOption) LogAttr() slog.Attr {
	return slog.Any("tagKeys", o.keys)
}

// WithRequiredCall is an [Option] configuring the Owner.Method path of the
// call required after every tracked construction.
func WithRequiredCall(path string) Option {
	return requiredCallOption{path: path}
}

type requiredCallOption struct{ path string }

func (o requiredCallOption) apply(r *runOptions) {
	r.settings.RequiredCall = o.path
}

func (o requiredCallOption) LogAttr() slog.Attr {
	return slog.String("requiredCall", o.path)
}

// WithEntityMarkers is an [Option] replacing the qualified names of embedded
// marker types that make a struct a tracked entity.
func WithEntityMarkers(names ...string) Option {
	return entityMarkersOption{names: names}
}

type entityMarkersOption struct{ names []string }

func (o entityMarkersOption) apply(r *runOptions) {
	r.settings.EntityMarkers = slices.Clone(o.names)
}

func (o entityMarkersOption) LogAttr() slog.Attr {
	return slog.Any("entityMarkers", o.names)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.settings.Generated = o.generated
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}
