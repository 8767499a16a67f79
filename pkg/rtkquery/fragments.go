package rtkquery

import "github.com/vektah/gqlparser/v2/ast"

// FragmentReferences returns the distinct names of all fragments spread inside set, in the order
// of their first appearance. Field and inline fragment selections are descended into,
// fragment definitions are not: the fragments a spread fragment depends on must be resolved upstream.
func FragmentReferences(set ast.SelectionSet) []string {
	c := fragmentCollector{
		seen: map[string]struct{}{},
	}
	c.walkSelectionSet(set)
	return c.names
}

type fragmentCollector struct {
	names []string
	seen  map[string]struct{}
}

func (c *fragmentCollector) walkSelectionSet(set ast.SelectionSet) {
	for _, selection := range set {
		switch selection := selection.(type) {
		case *ast.Field:
			c.walkSelectionSet(selection.SelectionSet)
		case *ast.InlineFragment:
			c.walkSelectionSet(selection.SelectionSet)
		case *ast.FragmentSpread:
			c.enterFragmentSpread(selection)
		}
	}
}

func (c *fragmentCollector) enterFragmentSpread(spread *ast.FragmentSpread) {
	if _, ok := c.seen[spread.Name]; ok {
		return
	}
	c.seen[spread.Name] = struct{}{}
	c.names = append(c.names, spread.Name)
}
