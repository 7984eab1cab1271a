// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta

// Visitor performs an operation on the given Node while traversing the AST.
type Visitor interface {
	Visit(Node) error
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(Node) error

func (f VisitorFunc) Visit(n Node) error { return f(n) }

// Walk traverses the tree starting at `n`, recursively, depth-first, invoking `v` on each node.
// Branches of a conditional chain are visited after the body of their If.
// if `v` returns non-nil error, the traversal is aborted.
func Walk(n Node, v Visitor) error {
	err := v.Visit(n)
	if err != nil {
		return err
	}

	for _, c := range n.GetChildren() {
		err := Walk(c, v)
		if err != nil {
			return err
		}
	}

	if typedN, ok := n.(*If); ok {
		for _, branch := range typedN.Branches()[1:] {
			err := Walk(branch, v)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Walk visits every node of the document in document order.
func (d *Document) Walk(v Visitor) error {
	for _, item := range d.Items {
		err := Walk(item, v)
		if err != nil {
			return err
		}
	}
	return nil
}
