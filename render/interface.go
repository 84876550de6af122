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

// Package render turns an exported record tree graph into text or images.
package render

import (
	"strings"

	"github.com/cybrota/patient-records/records"
)

// Renderer defines the interface for different graph output formats
type Renderer interface {
	Render(format string, g records.Graph) ([]byte, error)
	SupportsFormat(format string) bool
	Priority() int // Lower number = higher priority
}

// normalizeFormat lower-cases a format name and strips a leading dot, so
// ".SVG" and "svg" select the same renderer.
func normalizeFormat(format string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
}
