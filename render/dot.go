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
	"strings"

	"github.com/cybrota/patient-records/records"
)

// DotRenderer writes Graphviz DOT source
type DotRenderer struct{}

func (d *DotRenderer) SupportsFormat(format string) bool {
	return format == "dot" || format == "gv"
}

func (d *DotRenderer) Priority() int {
	return 0
}

func (d *DotRenderer) Render(_ string, g records.Graph) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("digraph {\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "\t%d [label=%s]\n", n.ID, quoteID(n.Label))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "\t%d -> %d\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteID writes s as a DOT double-quoted string. Only backslash and quote
// are escaped; Graphviz reads every other character as is.
func quoteID(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
