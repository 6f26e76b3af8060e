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

// Ormguard runs the ormguard analyzers as a standalone multichecker.
//
// Usage:
//
//	ormguard [-ormassoc.safe-ops-file=safeops.yaml] ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ormguard/ormguard/analyzer"
)

func main() {
	multichecker.Main(
		analyzer.NewAssociations(),
		analyzer.NewRegistration(),
		analyzer.NewShape(),
	)
}
