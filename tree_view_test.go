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
	"strings"
	"testing"

	"github.com/gizak/termui/v3/widgets"

	"github.com/cybrota/patient-records/records"
)

func TestBuildTreeNodesEmpty(t *testing.T) {
	if nodes := buildTreeNodes(records.Graph{}); nodes != nil {
		t.Errorf("buildTreeNodes(empty) = %v; want nil", nodes)
	}
}

func TestBuildTreeNodesShape(t *testing.T) {
	store := records.NewStore()
	for _, id := range []int{50, 30, 70, 20, 40, 80} {
		if err := store.Add(id, "Patient", 40, "Checkup", "120/80", 70, 98.6); err != nil {
			t.Fatalf("Add(%d) error = %v", id, err)
		}
	}

	roots := buildTreeNodes(store.ExportGraph())
	if len(roots) != 1 {
		t.Fatalf("got %d roots; want 1", len(roots))
	}

	root := roots[0]
	if got := root.Value.String(); !strings.HasPrefix(got, "50 ") {
		t.Errorf("root = %q; want patient 50 without a side marker", got)
	}

	wantChildren := map[int][]string{
		50: {"L: 30", "R: 70"},
		30: {"L: 20", "R: 40"},
		70: {"R: 80"},
		20: nil,
		40: nil,
		80: nil,
	}

	var walk func(n *widgets.TreeNode)
	seen := 0
	walk = func(n *widgets.TreeNode) {
		seen++
		id := n.Value.(patientNode).id
		want := wantChildren[id]
		if len(n.Nodes) != len(want) {
			t.Fatalf("node %d has %d children; want %d", id, len(n.Nodes), len(want))
		}
		for i, child := range n.Nodes {
			if got := child.Value.String(); !strings.HasPrefix(got, want[i]+" ") {
				t.Errorf("child %d of %d = %q; want prefix %q", i, id, got, want[i])
			}
			walk(child)
		}
	}
	walk(root)

	if seen != store.Len() {
		t.Errorf("visited %d nodes; want %d", seen, store.Len())
	}
}

func TestBuildTreeNodesDegenerateChain(t *testing.T) {
	store := records.NewStore()
	const n = 5000
	for id := 1; id <= n; id++ {
		if err := store.Add(id, "P", 40, "Checkup", "120/80", 70, 98.6); err != nil {
			t.Fatalf("Add(%d) error = %v", id, err)
		}
	}

	node := buildTreeNodes(store.ExportGraph())[0]
	depth := 1
	for len(node.Nodes) > 0 {
		node = node.Nodes[0]
		depth++
	}
	if depth != n {
		t.Errorf("chain depth = %d; want %d", depth, n)
	}
}

func TestDescribeSelected(t *testing.T) {
	store := records.NewStore()
	if err := store.Add(7, "Grace", 51, "Migraine", "118/76", 66, 98.2); err != nil {
		t.Fatal(err)
	}

	if got := describeSelected(store, nil); got != "The index is empty." {
		t.Errorf("describeSelected(nil) = %q", got)
	}

	node := buildTreeNodes(store.ExportGraph())[0]
	if got := describeSelected(store, node); !strings.Contains(got, "Name: Grace") {
		t.Errorf("describeSelected() = %q; want the record line", got)
	}

	store.Delete(7)
	if got := describeSelected(store, node); !strings.Contains(got, "no longer indexed") {
		t.Errorf("describeSelected() after delete = %q", got)
	}
}
