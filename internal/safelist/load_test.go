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

package safelist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ormguard/ormguard/internal/safelist"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "safe.yaml")
	data := `safe-operations:
  - example.com/util.CopyOf
  - example.com/coll.List
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	got, err := safelist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com/util.CopyOf", "example.com/coll.List"}, got)
}

func TestLoadEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "safe.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := safelist.Load(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := safelist.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "safe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("safe-operations: {broken"), 0o600))

	_, err := safelist.Load(path)
	assert.Error(t, err)
}
