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
	"sync"

	"golang.org/x/tools/go/analysis"

	"github.com/ormguard/ormguard/internal/assoc"
	"github.com/ormguard/ormguard/internal/config"
	"github.com/ormguard/ormguard/internal/entityreg"
	"github.com/ormguard/ormguard/internal/props"
	"github.com/ormguard/ormguard/internal/safelist"
)

// runOptions carries one analyzer instance's configuration. Settings are
// mutated by options and flags; the whitelist is built once on first use and
// immutable afterwards.
type runOptions struct {
	settings *config.Settings

	once sync.Once
	safe *safelist.List
}

// makeRunOptions returns a [runOptions] with overriding [Options] applied on
// top of the defaults.
func makeRunOptions(opts Options) *runOptions {
	r := &runOptions{settings: config.Default()}
	opts.apply(r)

	return r
}

// safeList builds the merged whitelist on first use, after flags have been
// parsed.
func (r *runOptions) safeList() *safelist.List {
	r.once.Do(func() {
		r.safe = safelist.New(r.settings.SafeOperations...)
	})

	return r.safe
}

func (r *runOptions) runAssociations(p *analysis.Pass) (any, error) {
	o := &assoc.Options{
		Name:      associationsName,
		TagKeys:   r.settings.TagKeys,
		Safe:      r.safeList(),
		Generated: r.settings.Generated,
	}

	return o.Run(p)
}

func (r *runOptions) runRegistration(p *analysis.Pass) (any, error) {
	o := &entityreg.Options{
		Name:         registrationName,
		RequiredCall: r.settings.RequiredCall,
		Markers:      r.settings.EntityMarkers,
		Generated:    r.settings.Generated,
	}

	return o.Run(p)
}

func (r *runOptions) runShape(p *analysis.Pass) (any, error) {
	o := &props.Options{
		Name:      shapeName,
		TagKeys:   r.settings.TagKeys,
		Markers:   r.settings.EntityMarkers,
		Generated: r.settings.Generated,
	}

	return o.Run(p)
}
