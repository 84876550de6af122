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
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/patient-records/records"
	"github.com/cybrota/patient-records/render"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Patient Records %s**

Keep patient records in an ordered index keyed by patient ID. Load them from CSV,
look them up, delete them and see the shape of the index as a tree.

Built with Go %s

# 1. Record source
A CSV file with a header line holding these columns (any order, case-sensitive):

* %s

A malformed row rejects the whole file; nothing is loaded.

# 2. Commands
* **browse**: interactive browser with a command bar (default)
* **list**: print records in ID order, optionally between --from and --to
* **search --id N**: print one record
* **delete --id N**: delete a record and print the rest
* **graph --format F**: print the index tree as %s
* **tree**: explore the index tree interactively
* **load**: validate a file and report how it was indexed
* **settings**: show or create ~/%s

# 3. Browser command bar
* add ID "NAME" AGE "DIAGNOSIS" BP PULSE TEMP
* set ID "NAME" AGE "DIAGNOSIS" BP PULSE TEMP (add or replace)
* find ID
* del ID

# Please be aware
* Records live in memory only; changes are not written back to the CSV file
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed
* Image formats (svg, png, pdf) require Graphviz 'dot' on PATH

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), strings.Join(records.Columns, ", "), strings.Join(render.Formats, ", "), configFileName)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
