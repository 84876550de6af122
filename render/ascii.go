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

package render

import (
	"bytes"
	"fmt"

	"github.com/cybrota/patient-records/records"
)

// ASCIIRenderer draws the tree as indented box-drawing text, one node per line
type ASCIIRenderer struct{}

func (a *ASCIIRenderer) SupportsFormat(format string) bool {
	return format == "ascii" || format == "text"
}

func (a *ASCIIRenderer) Priority() int {
	return 1
}

func (a *ASCIIRenderer) Render(_ string, g records.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if len(g.Nodes) == 0 {
		buf.WriteString("(empty)\n")
		return buf.Bytes(), nil
	}

	type frame struct {
		id     int
		prefix string
		marker string
		last   bool
		root   bool
	}

	links := g.Links()
	labels := g.Labels()
	stack := []frame{{id: g.Nodes[0].ID, root: true}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		childPrefix := ""
		if f.root {
			fmt.Fprintf(&buf, "%d %s\n", f.id, labels[f.id])
		} else {
			branch := "├── "
			childPrefix = f.prefix + "│   "
			if f.last {
				branch = "└── "
				childPrefix = f.prefix + "    "
			}
			fmt.Fprintf(&buf, "%s%s%s %d %s\n", f.prefix, branch, f.marker, f.id, labels[f.id])
		}

		c := links[f.id]
		// Push right first so the left child prints first
		if c.HasRight {
			stack = append(stack, frame{id: c.Right, prefix: childPrefix, marker: "R:", last: true})
		}
		if c.HasLeft {
			stack = append(stack, frame{id: c.Left, prefix: childPrefix, marker: "L:", last: !c.HasRight})
		}
	}
	return buf.Bytes(), nil
}
