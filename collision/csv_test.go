// Copyright 2025 Naren Yellavula
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

package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSVLine(t *testing.T) {
	testCases := []struct {
		Name string
		Line string
		Want []string
	}{
		{Name: "plain", Line: "a,b,c", Want: []string{"a", "b", "c"}},
		{Name: "empty middle entries", Line: "a,,c", Want: []string{"a", "", "c"}},
		{Name: "trailing comma drops empty last entry", Line: "a,b,", Want: []string{"a", "b"}},
		{Name: "spaces between entries", Line: "a , b", Want: []string{"a ", "b"}},
		{Name: "leading spaces skipped", Line: "  a,  b", Want: []string{"a", "b"}},
		{Name: "quoted comma", Line: `"NEW YORK, NY",10001`, Want: []string{"NEW YORK, NY", "10001"}},
		{Name: "quoted spaces kept", Line: `" x ",y`, Want: []string{" x ", "y"}},
		{Name: "smart quotes", Line: "“A, B”,c", Want: []string{"A, B", "c"}},
		{Name: "last entry trimmed", Line: "a,b  ", Want: []string{"a", "b"}},
		{Name: "empty line", Line: "", Want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, SplitCSVLine(tc.Line))
		})
	}
}
