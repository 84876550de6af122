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
	"fmt"

	"github.com/cybrota/patient-records/records"
)

// GraphvizRenderer pipes DOT source through the external `dot` tool to
// produce images
type GraphvizRenderer struct {
	cmdRunner *CommandRunner
	dot       DotRenderer
}

func NewGraphvizRenderer(cmdRunner *CommandRunner) *GraphvizRenderer {
	return &GraphvizRenderer{cmdRunner: cmdRunner}
}

func (gv *GraphvizRenderer) SupportsFormat(format string) bool {
	switch format {
	case "svg", "png", "pdf":
		return true
	}
	return false
}

func (gv *GraphvizRenderer) Priority() int {
	return 5 // Needs an external binary
}

func (gv *GraphvizRenderer) Render(format string, g records.Graph) ([]byte, error) {
	if !gv.cmdRunner.CheckCommandExists("dot") {
		return nil, fmt.Errorf("graphviz `dot` not found on PATH; install graphviz or use --format dot")
	}
	src, err := gv.dot.Render("dot", g)
	if err != nil {
		return nil, err
	}
	return gv.cmdRunner.Run(src, "dot", "-T"+format)
}
