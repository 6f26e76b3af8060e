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

import "flag"

// registerAssociationFlags binds the association analyzer's settings to
// command line flag values.
func registerAssociationFlags(flags *flag.FlagSet, r *runOptions) {
	flags.BoolVar(&r.settings.Generated, "generated", r.settings.Generated, "check generated files")
	flags.Var(appendList(&r.settings.SafeOperations), "safe-ops",
		"additional qualified safe operation names (comma separated)")
	flags.Var(&fileValue{values: &r.settings.SafeOperations}, "safe-ops-file",
		"YAML file with additional safe operation names")
	flags.Var(replaceList(&r.settings.TagKeys), "tag-keys",
		"struct tag keys scanned for association tokens (comma separated)")
}

// registerRegistrationFlags binds the registration analyzer's settings to
// command line flag values.
func registerRegistrationFlags(flags *flag.FlagSet, r *runOptions) {
	flags.BoolVar(&r.settings.Generated, "generated", r.settings.Generated, "check generated files")
	flags.StringVar(&r.settings.RequiredCall, "required-call", r.settings.RequiredCall,
		"Owner.Method path of the call required after every tracked construction")
	flags.Var(replaceList(&r.settings.EntityMarkers), "entity-markers",
		"qualified names of embedded types marking tracked entities (comma separated)")
}

// registerShapeFlags binds the shape analyzer's settings to command line
// flag values.
func registerShapeFlags(flags *flag.FlagSet, r *runOptions) {
	flags.BoolVar(&r.settings.Generated, "generated", r.settings.Generated, "check generated files")
	flags.Var(replaceList(&r.settings.EntityMarkers), "entity-markers",
		"qualified names of embedded types marking tracked entities (comma separated)")
	flags.Var(replaceList(&r.settings.TagKeys), "tag-keys",
		"struct tag keys checked for the \"-\" exemption (comma separated)")
}
