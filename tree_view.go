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
	"log"

	"github.com/atotto/clipboard"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/patient-records/records"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// patientNode is the value shown for one tree node
type patientNode struct {
	id    int
	label string
	side  records.Side
}

func (p patientNode) String() string {
	switch p.side {
	case records.SideLeft:
		return fmt.Sprintf("L: %d %s", p.id, p.label)
	case records.SideRight:
		return fmt.Sprintf("R: %d %s", p.id, p.label)
	}
	return fmt.Sprintf("%d %s", p.id, p.label)
}

// buildTreeNodes converts an exported graph into termui tree nodes. Left
// children come before right children. The result holds at most one root.
func buildTreeNodes(g records.Graph) []*widgets.TreeNode {
	if len(g.Nodes) == 0 {
		return nil
	}

	byID := make(map[int]*widgets.TreeNode, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = &widgets.TreeNode{
			Value:    patientNode{id: n.ID, label: n.Label},
			Expanded: true,
		}
	}

	attach := func(parent *widgets.TreeNode, childID int, side records.Side) {
		child := byID[childID]
		v := child.Value.(patientNode)
		v.side = side
		child.Value = v
		parent.Nodes = append(parent.Nodes, child)
	}

	links := g.Links()
	for _, n := range g.Nodes {
		parent := byID[n.ID]
		c := links[n.ID]
		if c.HasLeft {
			attach(parent, c.Left, records.SideLeft)
		}
		if c.HasRight {
			attach(parent, c.Right, records.SideRight)
		}
	}

	return []*widgets.TreeNode{byID[g.Nodes[0].ID]}
}

func describeSelected(store *records.Store, node *widgets.TreeNode) string {
	if node == nil {
		return "The index is empty."
	}
	p, ok := node.Value.(patientNode)
	if !ok {
		return ""
	}
	rec, found := store.Search(p.id)
	if !found {
		return fmt.Sprintf("Patient %d is no longer indexed.", p.id)
	}
	return fmt.Sprintf("%s\n\nChildren: %d", rec, len(node.Nodes))
}

// runTreeView shows the index as a collapsible tree with record details
func runTreeView(store *records.Store) {
	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	tree := widgets.NewTree()
	tree.Title = fmt.Sprintf(" Index Tree (%d records, height %d) ", store.Len(), store.Height())
	tree.TextStyle = StyleText()
	tree.SelectedRowStyle = StylePrimary()
	tree.BorderStyle = StyleBorder(true)
	tree.WrapText = false
	tree.SetNodes(buildTreeNodes(store.ExportGraph()))

	detailPara := widgets.NewParagraph()
	detailPara.Title = " Patient "
	detailPara.WrapText = true
	detailPara.BorderStyle = StyleBorder(false)
	detailPara.TextStyle = StyleText()

	keyboardPara := widgets.NewParagraph()
	keyboardPara.Title = " Keyboard Shortcuts "
	keyboardPara.TextStyle = StyleTextMuted()
	keyboardPara.BorderStyle = StyleBorder(false)
	keyboardPara.Text = `[<up>/<down>](fg:green) or [j/k](fg:green) -> Move selection
[<enter>](fg:green) -> Expand or collapse a node
[E](fg:green) / [C](fg:green) -> Expand or collapse all
[g](fg:green) / [G](fg:green) -> Jump to top or bottom
[<ctrl> + y](fg:green) -> Copy the selected record
[q](fg:green), [<esc>](fg:green) or [<ctrl> + c](fg:green) -> Quit`

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewCol(0.5, tree),
		ui.NewCol(0.5,
			ui.NewRow(0.6, detailPara),
			ui.NewRow(0.4, keyboardPara),
		),
	)

	refresh := func() {
		detailPara.Text = describeSelected(store, tree.SelectedNode())
		ui.Render(grid)
	}
	refresh()

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
		}

		// Tree navigation indexes the visible rows, so skip it when there are none
		if tree.SelectedNode() == nil {
			refresh()
			continue
		}

		switch e.ID {
		case "<Up>", "k":
			tree.ScrollUp()
		case "<Down>", "j":
			tree.ScrollDown()
		case "<Enter>":
			tree.ToggleExpand()
		case "E":
			tree.ExpandAll()
		case "C":
			tree.CollapseAll()
		case "g", "<Home>":
			tree.ScrollTop()
		case "G", "<End>":
			tree.ScrollBottom()
		case "<C-y>":
			if node := tree.SelectedNode(); node != nil {
				if p, ok := node.Value.(patientNode); ok {
					if rec, found := store.Search(p.id); found {
						if err := clipboard.WriteAll(rec.String()); err != nil {
							log.Printf("Failed to copy record: %v", err)
						}
					}
				}
			}
		}
		refresh()
	}
}
