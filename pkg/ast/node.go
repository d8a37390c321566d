// Package ast defines the tokens and syntax tree of Jirai source.
//
// Block statements (headings, paragraphs, unordered lists) hold sequences
// of inline statements. Only inline statements nest; the tree has no
// parent pointers and no sharing.
package ast

// SourceKind describes what a piece of Jirai source represents.
type SourceKind uint8

const (
	// SourceFragment is a bare sequence of blocks, rendered as an HTML fragment.
	SourceFragment SourceKind = iota

	// SourceDocument is enclosed in "(^-^)" limiters and rendered as a full page.
	SourceDocument
)

// String returns the configuration name of the kind.
func (k SourceKind) String() string {
	switch k {
	case SourceDocument:
		return "document"
	default:
		return "fragment"
	}
}

// ParseSourceKind maps a configuration name to a SourceKind.
// The empty string selects SourceFragment.
func ParseSourceKind(name string) (SourceKind, bool) {
	switch name {
	case "", "fragment":
		return SourceFragment, true
	case "document":
		return SourceDocument, true
	default:
		return SourceFragment, false
	}
}

// Statement is a block-level node.
type Statement interface {
	// Contents returns the inline statements held by the block.
	Contents() []InlineStatement
	statementNode()
}

// InlineStatement is an inline node nested inside a block.
type InlineStatement interface {
	inlineNode()
}

// Heading is a "<3"-prefixed line. Level is the number of markers.
type Heading struct {
	Level  int
	Inline []InlineStatement
}

// Paragraph is a line of inline content.
type Paragraph struct {
	Inline []InlineStatement
}

// UnorderedList holds consecutive "~" lines. Items are ListItem nodes
// stored flat in Inline.
type UnorderedList struct {
	Inline []InlineStatement
}

func (h *Heading) Contents() []InlineStatement       { return h.Inline }
func (p *Paragraph) Contents() []InlineStatement     { return p.Inline }
func (l *UnorderedList) Contents() []InlineStatement { return l.Inline }

func (*Heading) statementNode()       {}
func (*Paragraph) statementNode()     {}
func (*UnorderedList) statementNode() {}

// Text is a literal run of user text.
type Text struct {
	Value string
}

// Code is the raw text inside "<...>".
type Code struct {
	Value string
}

// Link is "{#[alt][text][url]}". Alt is nil when the brackets are empty.
type Link struct {
	Alt      *string
	URL      string
	LinkText string
}

// Image is "{@[alt][url]}". Alt is nil when the brackets are empty.
type Image struct {
	Alt *string
	URL string
}

// BlockQuote is the text inside ">(...)<".
type BlockQuote struct {
	Value string
}

// ListItem is a "~" item and everything up to the end of its line.
type ListItem struct {
	Children []InlineStatement
}

// BoldText is content between a pair of "*".
type BoldText struct {
	Children []InlineStatement
}

// ItalicText is content between a pair of "$".
type ItalicText struct {
	Children []InlineStatement
}

func (*Text) inlineNode()       {}
func (*Code) inlineNode()       {}
func (*Link) inlineNode()       {}
func (*Image) inlineNode()      {}
func (*BlockQuote) inlineNode() {}
func (*ListItem) inlineNode()   {}
func (*BoldText) inlineNode()   {}
func (*ItalicText) inlineNode() {}

// Children returns the nested inline statements of container nodes,
// or nil for leaves.
func Children(n InlineStatement) []InlineStatement {
	switch node := n.(type) {
	case *ListItem:
		return node.Children
	case *BoldText:
		return node.Children
	case *ItalicText:
		return node.Children
	default:
		return nil
	}
}
