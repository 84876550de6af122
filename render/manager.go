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
	"sort"

	"github.com/cybrota/patient-records/records"
)

// Formats lists the format names accepted by the default manager.
var Formats = []string{"dot", "gv", "ascii", "text", "svg", "png", "pdf"}

// Manager picks a renderer for a requested output format
type Manager struct {
	renderers []Renderer
	cmdRunner *CommandRunner
}

// NewManager creates a manager with all built-in renderers
func NewManager() *Manager {
	cmdRunner := NewCommandRunner()

	manager := &Manager{
		cmdRunner: cmdRunner,
	}

	manager.Register(&DotRenderer{})
	manager.Register(&ASCIIRenderer{})
	manager.Register(NewGraphvizRenderer(cmdRunner))

	return manager
}

// Register adds a renderer, keeping the list in priority order
func (m *Manager) Register(renderer Renderer) {
	m.renderers = append(m.renderers, renderer)
	sort.SliceStable(m.renderers, func(i, j int) bool {
		return m.renderers[i].Priority() < m.renderers[j].Priority()
	})
}

// Render draws g in the requested format using the best available renderer
func (m *Manager) Render(format string, g records.Graph) ([]byte, error) {
	format = normalizeFormat(format)
	if format == "" {
		return nil, fmt.Errorf("no output format provided")
	}

	var lastErr error
	for _, renderer := range m.renderers {
		if !renderer.SupportsFormat(format) {
			continue
		}
		out, err := renderer.Render(format, g)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		return nil, fmt.Errorf("no renderer found for format %q", format)
	}
	return nil, fmt.Errorf("failed to render format %q: %w", format, lastErr)
}
