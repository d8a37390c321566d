package ast

import (
	"errors"
	"strings"
)

// SkipChildren may be returned by a WalkFunc to skip the children of the
// current node without stopping the walk.
var SkipChildren = errors.New("skip children") //nolint:errname,revive // Sentinel used as control value.

// WalkFunc is called for every inline node visited by Walk.
// Return a non-nil error to stop the walk.
type WalkFunc func(n InlineStatement) error

// Walk performs a pre-order traversal of the inline nodes of every statement.
func Walk(stmts []Statement, walkFunc WalkFunc) error {
	for _, stmt := range stmts {
		if err := WalkInline(stmt.Contents(), walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// WalkInline performs a pre-order traversal of a sequence of inline nodes.
func WalkInline(nodes []InlineStatement, walkFunc WalkFunc) error {
	for _, node := range nodes {
		err := walkFunc(node)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if err := WalkInline(Children(node), walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// PlainText concatenates the visible text of inline nodes: text, code,
// quotes and link text. Images contribute nothing.
func PlainText(nodes []InlineStatement) string {
	var builder strings.Builder
	_ = WalkInline(nodes, func(n InlineStatement) error {
		switch node := n.(type) {
		case *Text:
			builder.WriteString(node.Value)
		case *Code:
			builder.WriteString(node.Value)
		case *BlockQuote:
			builder.WriteString(node.Value)
		case *Link:
			builder.WriteString(node.LinkText)
		}
		return nil
	})
	return builder.String()
}

// FirstHeading returns the first heading among stmts, or nil.
func FirstHeading(stmts []Statement) *Heading {
	for _, stmt := range stmts {
		if heading, ok := stmt.(*Heading); ok {
			return heading
		}
	}
	return nil
}
