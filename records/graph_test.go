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

package records

import "testing"

func TestExportGraph(t *testing.T) {
	s := NewStore()
	names := map[int]string{50: "Eve", 30: "Carl", 70: "Grace", 20: "Bea", 40: "Dan"}
	for _, id := range []int{50, 30, 70, 20, 40} {
		s.AddRecord(newPatient(id, names[id]))
	}

	g := s.ExportGraph()

	wantNodes := []GraphNode{{50, "Eve"}, {30, "Carl"}, {20, "Bea"}, {40, "Dan"}, {70, "Grace"}}
	if len(g.Nodes) != len(wantNodes) {
		t.Fatalf("Nodes = %v; want %v", g.Nodes, wantNodes)
	}
	for i := range wantNodes {
		if g.Nodes[i] != wantNodes[i] {
			t.Errorf("Nodes[%d] = %v; want %v", i, g.Nodes[i], wantNodes[i])
		}
	}

	wantEdges := []GraphEdge{
		{50, 30, SideLeft},
		{50, 70, SideRight},
		{30, 20, SideLeft},
		{30, 40, SideRight},
	}
	if len(g.Edges) != len(wantEdges) {
		t.Fatalf("Edges = %v; want %v", g.Edges, wantEdges)
	}
	for i := range wantEdges {
		if g.Edges[i] != wantEdges[i] {
			t.Errorf("Edges[%d] = %v; want %v", i, g.Edges[i], wantEdges[i])
		}
	}

	links := g.Links()
	if c := links[50]; !c.HasLeft || c.Left != 30 || !c.HasRight || c.Right != 70 {
		t.Errorf("Links()[50] = %+v", c)
	}
	if c := links[20]; c.HasLeft || c.HasRight {
		t.Errorf("leaf 20 has children: %+v", c)
	}
	if g.Labels()[70] != "Grace" {
		t.Errorf("Labels()[70] = %q", g.Labels()[70])
	}

	// Export is read-only
	if s.Len() != 5 || !equalInts(idsOf(s.ListAll()), []int{20, 30, 40, 50, 70}) {
		t.Error("ExportGraph modified the store")
	}
}

func TestExportGraphEmpty(t *testing.T) {
	g := NewStore().ExportGraph()
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Errorf("empty store exported %+v", g)
	}
}
