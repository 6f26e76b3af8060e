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

package safelist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk format for extra whitelist entries.
type file struct {
	SafeOperations []string `yaml:"safe-operations"`
}

// Load reads extra safe-operation names from a YAML file of the form
//
//	safe-operations:
//	  - example.com/util.CopyOf
//	  - example.com/coll.List
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("safelist: reading %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("safelist: parsing %s: %w", path, err)
	}

	return f.SafeOperations, nil
}
