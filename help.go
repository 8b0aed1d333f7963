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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Collisions %s**

Summarize motor vehicle collisions by zip code and date range from the NYC open data CSV export.

Built with Go %s

# 1. Usage
* collisions <file> : load the file and answer queries interactively
* collisions report <file> --zip 11201 --start 01/01/2020 --end 06/30/2020 : print one report
* collisions dump <file> : print the shape of the index
* collisions settings : show or create ~/.collisions.yaml

# 2. Interactive queries
* Enter a five digit zip code, then the first and last day of the range (MM/DD/YYYY)
* Or type all three on one line: 11201 01/01/2020 06/30/2020
* Type 'quit' to exit

# 3. Input
* The first line of the file is a header and is skipped
* Rows with a malformed date, zip code, counter or key are skipped
* Rows repeating a zip code, date and key already loaded are ignored

# Environment
* COLLISIONS_DATA_FILE, COLLISIONS_SHOW_PROGRESS, COLLISIONS_LOG_LEVEL override the config file

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
