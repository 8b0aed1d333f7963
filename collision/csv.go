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
	"strings"
	"unicode"
)

// SplitCSVLine splits one line of the collisions file on commas. Double quotes
// (including the typographic “ and ”) surround entries that may contain commas.
// Whitespace between entries is dropped, and a trailing empty entry is not returned.
func SplitCSVLine(line string) []string {
	var (
		entries      []string
		word         strings.Builder
		insideQuotes bool
		insideEntry  bool
	)

	for _, ch := range line {
		switch {
		case ch == '"' || ch == '“' || ch == '”':
			insideQuotes = !insideQuotes
			insideEntry = insideQuotes
		case unicode.IsSpace(ch):
			if insideQuotes || insideEntry {
				word.WriteRune(ch)
			}
		case ch == ',':
			if insideQuotes {
				word.WriteRune(ch)
				continue
			}
			insideEntry = false
			entries = append(entries, word.String())
			word.Reset()
		default:
			word.WriteRune(ch)
			insideEntry = true
		}
	}

	if word.Len() > 0 {
		entries = append(entries, strings.TrimSpace(word.String()))
	}
	return entries
}
