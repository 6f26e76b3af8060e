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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single", input: "orm", want: []string{"orm"}},
		{name: "multiple", input: "orm,gorm", want: []string{"orm", "gorm"}},
		{name: "whitespace", input: " orm , gorm ", want: []string{"orm", "gorm"}},
		{name: "empty items dropped", input: "orm,,gorm,", want: []string{"orm", "gorm"}},
		{name: "empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, splitList(tt.input))
		})
	}
}

func TestAppendList(t *testing.T) {
	t.Parallel()

	values := []string{"existing"}
	v := appendList(&values)

	require.NoError(t, v.Set("a,b"))
	require.NoError(t, v.Set("c"))

	assert.Equal(t, []string{"existing", "a", "b", "c"}, values)
	assert.Equal(t, "existing,a,b,c", v.String())
	assert.Equal(t, values, v.Get())
}

func TestReplaceList(t *testing.T) {
	t.Parallel()

	values := []string{"orm", "gorm"}
	v := replaceList(&values)

	require.NoError(t, v.Set("db"))

	assert.Equal(t, []string{"db"}, values)

	require.NoError(t, v.Set("x,y"))

	assert.Equal(t, []string{"x", "y"}, values)
}

func TestFileValue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "safe.yaml")
	data := `safe-operations:
  - example.com/util.CopyOf
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	var values []string
	v := fileValue{values: &values}

	require.NoError(t, v.Set(path))

	assert.Equal(t, []string{"example.com/util.CopyOf"}, values)
	assert.Equal(t, path, v.String())
	assert.Equal(t, path, v.Get())
}

func TestFileValueMissing(t *testing.T) {
	t.Parallel()

	var values []string
	v := fileValue{values: &values}

	assert.Error(t, v.Set(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Empty(t, values)
}
