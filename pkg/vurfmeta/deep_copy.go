// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta

func (n *Section) DeepCopyAsNode() Node  { return n.DeepCopy() }
func (n *Package) DeepCopyAsNode() Node  { return n.DeepCopy() }
func (n *Comment) DeepCopyAsNode() Node  { return n.DeepCopy() }
func (n *Ellipsis) DeepCopyAsNode() Node { return &Ellipsis{Position: n.Position.DeepCopy()} }
func (n *If) DeepCopyAsNode() Node       { return n.DeepCopy() }
func (n *Elif) DeepCopyAsNode() Node     { return n.DeepCopy() }
func (n *Else) DeepCopyAsNode() Node     { return n.DeepCopy() }

func (d *Document) DeepCopy() *Document {
	return &Document{Items: nodesDeepCopy(d.Items), Position: d.Position.DeepCopy()}
}

func (n *Section) DeepCopy() *Section {
	return &Section{Name: n.Name, Children: nodesDeepCopy(n.Children), Position: n.Position.DeepCopy()}
}

func (n *Package) DeepCopy() *Package {
	return &Package{Name: n.Name, Quote: n.Quote, Comment: n.Comment.DeepCopy(), Position: n.Position.DeepCopy()}
}

func (n *Comment) DeepCopy() *Comment {
	if n == nil {
		return nil
	}
	return &Comment{Text: n.Text, Position: n.Position.DeepCopy()}
}

func (n *If) DeepCopy() *If {
	var elifs []*Elif
	for _, elif := range n.Elifs {
		elifs = append(elifs, elif.DeepCopy())
	}
	return &If{
		Guard:    n.Guard,
		Children: nodesDeepCopy(n.Children),
		Elifs:    elifs,
		Else:     n.Else.DeepCopy(),
		Position: n.Position.DeepCopy(),
	}
}

func (n *Elif) DeepCopy() *Elif {
	return &Elif{Guard: n.Guard, Children: nodesDeepCopy(n.Children), Position: n.Position.DeepCopy()}
}

func (n *Else) DeepCopy() *Else {
	if n == nil {
		return nil
	}
	return &Else{Children: nodesDeepCopy(n.Children), Position: n.Position.DeepCopy()}
}

func nodesDeepCopy(nodes []Node) []Node {
	var result []Node
	for _, node := range nodes {
		result = append(result, node.DeepCopyAsNode())
	}
	return result
}
