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

// defaults are the built-in safe operations. Three families: producers that
// allocate a fresh container, read-only queries and terminals that cannot
// leak a mutable reference, and encoders consuming the container by value.
//
// Deliberately absent: slices.Sort and friends (mutate in place),
// slices.Insert/Delete/Compact (mutate their argument), slice expressions and
// conversions (alias the backing store).
var defaults = []string{
	// fresh-container producers
	"slices.AppendSeq",
	"slices.Clone",
	"slices.Collect",
	"slices.Concat",
	"slices.Repeat",
	"slices.Sorted",
	"slices.SortedFunc",
	"slices.SortedStableFunc",
	"maps.Clone",
	"maps.Collect",
	"golang.org/x/exp/slices.Clone",
	"golang.org/x/exp/maps.Clone",
	"golang.org/x/exp/maps.Keys",
	"golang.org/x/exp/maps.Values",

	// iterator producers; consuming them copies elements, never the container
	"slices.All",
	"slices.Backward",
	"slices.Values",
	"maps.All",
	"maps.Keys",
	"maps.Values",

	// read-only queries and terminals
	"slices.BinarySearch",
	"slices.BinarySearchFunc",
	"slices.Compare",
	"slices.CompareFunc",
	"slices.Contains",
	"slices.ContainsFunc",
	"slices.Equal",
	"slices.EqualFunc",
	"slices.Index",
	"slices.IndexFunc",
	"slices.IsSorted",
	"slices.IsSortedFunc",
	"slices.Max",
	"slices.MaxFunc",
	"slices.Min",
	"slices.MinFunc",
	"maps.Equal",
	"maps.EqualFunc",

	// aggregation and formatting terminals
	"strings.Join",
	"fmt.Errorf",
	"fmt.Fprint",
	"fmt.Fprintf",
	"fmt.Fprintln",
	"fmt.Print",
	"fmt.Printf",
	"fmt.Println",
	"fmt.Sprint",
	"fmt.Sprintf",
	"fmt.Sprintln",

	// encoders consume the value without retaining it
	"encoding/json.Marshal",
	"encoding/json.MarshalIndent",
	"encoding/gob.Encoder.Encode",
	"encoding/json.Encoder.Encode",
}
