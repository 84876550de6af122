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

import "github.com/cybrota/patient-records/bst"

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// GraphNode is a tree node identified by patient ID and labelled with the
// patient's name.
type GraphNode struct {
	ID    int
	Label string
}

// GraphEdge links a parent to one of its children.
type GraphEdge struct {
	From int
	To   int
	Side Side
}

// Graph describes the tree shape for a rendering backend. Nodes are listed
// in pre-order, so Nodes[0] is the root when the graph is not empty.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// Children holds the child IDs of one node.
type Children struct {
	Left     int
	Right    int
	HasLeft  bool
	HasRight bool
}

// Links indexes the edges by parent ID.
func (g Graph) Links() map[int]Children {
	links := make(map[int]Children, len(g.Nodes))
	for _, e := range g.Edges {
		l := links[e.From]
		switch e.Side {
		case SideLeft:
			l.Left, l.HasLeft = e.To, true
		case SideRight:
			l.Right, l.HasRight = e.To, true
		}
		links[e.From] = l
	}
	return links
}

// Labels indexes node labels by ID.
func (g Graph) Labels() map[int]string {
	labels := make(map[int]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.ID] = n.Label
	}
	return labels
}

// ExportGraph describes the current tree shape. It does not modify the store.
func (s *Store) ExportGraph() Graph {
	g := Graph{
		Nodes: make([]GraphNode, 0, s.tree.Len()),
	}
	s.tree.Walk(func(node *bst.Node[PatientRecord]) bool {
		g.Nodes = append(g.Nodes, GraphNode{ID: node.Key(), Label: node.Value.Name})
		if left := node.Left(); left != nil {
			g.Edges = append(g.Edges, GraphEdge{From: node.Key(), To: left.Key(), Side: SideLeft})
		}
		if right := node.Right(); right != nil {
			g.Edges = append(g.Edges, GraphEdge{From: node.Key(), To: right.Key(), Side: SideRight})
		}
		return true
	})
	return g
}
