package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `(?://|;)[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d+|\d+|\.\d+)(?:[eE][-+]?\d+)?(?:[A-Za-z]+|%)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_$][A-Za-z0-9_\-.:$]*`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
	)
)

// Document is the root AST node of a chart description file.
type Document struct {
	Exprs []*Expr `parser:"@@*"`
}

// Root returns the single top-level expression of the document.
func (d *Document) Root() (*Expr, error) {
	if d == nil || len(d.Exprs) == 0 {
		return nil, fmt.Errorf("文档中缺少表达式")
	}
	if len(d.Exprs) > 1 {
		return nil, fmt.Errorf("文档只能包含一个顶层表达式，实际 %d 个（%s）", len(d.Exprs), d.Exprs[1].Pos)
	}
	return d.Exprs[0], nil
}

// Expr is either a parenthesised list or a single atom.
type Expr struct {
	Pos    lexer.Position `parser:"" json:"-"`
	List   *List          `parser:"  @@"`
	String *StringLiteral `parser:"| @String"`
	Color  *string        `parser:"| @Color"`
	Number *string        `parser:"| @Number"`
	Symbol *string        `parser:"| @Ident"`
}

// List captures `( ... )`.
type List struct {
	Items []*Expr `parser:"'(' @@* ')'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a chart description from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses a chart description from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// ParseExpr 解析只含一个表达式的文本并直接返回该表达式。
func ParseExpr(input string) (*Expr, error) {
	doc, err := ParseString(input)
	if err != nil {
		return nil, err
	}
	return doc.Root()
}
