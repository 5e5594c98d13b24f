// Package compiler lowers a parsed programme (a slice of ast.Node) into
// a slice of ops.Transform ready for the interpreter to run in order.
// The mapping is 1:1 and carries no optimization passes; the only work
// beyond construction is validating each Selection's slice steps, which
// is the one error class that can only be caught here rather than
// during parsing (a step is syntactically a signed integer, and 0 is
// only invalid in the context of slicing semantics).
package compiler

import (
	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/errs"
	"github.com/mako10k/t/internal/ops"
)

// Compile lowers a full programme AST into an ordered Transform list.
func Compile(nodes []ast.Node) ([]ops.Transform, error) {
	out := make([]ops.Transform, 0, len(nodes))
	for _, n := range nodes {
		tr, err := compileNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, nil
}

func compileNode(n ast.Node) (ops.Transform, error) {
	switch node := n.(type) {
	case *ast.Split:
		return ops.NewSplit(node.Delimiter, node.HasDelim), nil
	case *ast.Join:
		return ops.NewJoin(node.Delimiter, node.HasDelim), nil
	case *ast.CaseOp:
		if err := validateSelection(node.Selection); err != nil {
			return nil, err
		}
		return ops.NewCaseOp(node.Kind, node.Selection), nil
	case *ast.Replace:
		if err := validateSelection(node.Selection); err != nil {
			return nil, err
		}
		return ops.NewReplace(node.Pattern, node.Replace, node.Selection), nil
	case *ast.Filter:
		return ops.NewFilter(node.Pattern, node.Invert), nil
	case *ast.Match:
		return ops.NewMatch(node.Pattern), nil
	case *ast.Dedupe:
		if err := validateSelection(node.Selection); err != nil {
			return nil, err
		}
		return ops.NewDedupe(node.Selection), nil
	case *ast.Sort:
		return ops.NewSort(node.Ascending), nil
	case *ast.DropEmpty:
		return ops.DropEmpty{}, nil
	case *ast.GroupBy:
		if err := validateSelection(node.Selection); err != nil {
			return nil, err
		}
		return ops.NewGroupBy(node.Selection), nil
	case *ast.Count:
		return ops.Count{}, nil
	case *ast.Sum:
		return ops.Sum{}, nil
	case *ast.Columnate:
		return ops.NewColumnate(node.Delimiter, node.HasDelim), nil
	case *ast.Partition:
		if err := validateSelection(node.Selection); err != nil {
			return nil, err
		}
		return ops.NewPartition(node.Selection), nil
	case *ast.Focus:
		return ops.NewFocus(node.Descend), nil
	case *ast.NoOp:
		return ops.NoOp{}, nil
	case *ast.Select:
		if err := validateSelection(node.Selection); err != nil {
			return nil, err
		}
		return ops.NewSelect(node.Selection), nil
	default:
		return nil, errs.Compile("unknown AST node %T", n)
	}
}

// validateSelection rejects a slice item whose step is explicitly zero.
// A nil Selection (the "whole value" case for Case/Replace/Dedupe) is
// always fine.
func validateSelection(sel *ast.Selection) error {
	if sel == nil {
		return nil
	}
	for _, item := range sel.Items {
		if item.IsSlice && item.Slice.HasStep && item.Slice.Step == 0 {
			return errs.Compile("slice step must not be zero")
		}
	}
	return nil
}
