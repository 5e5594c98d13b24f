// Package progparser is the hand-written, character-level parser for
// programme strings. It consumes the programme left-to-right with a
// single-character lookahead and a position cursor; it never backtracks
// arbitrarily, and on error it returns a *errs.Error carrying a byte
// offset into the original string plus a short message.
package progparser

import (
	"regexp"
	"strconv"

	"github.com/mako10k/t/internal/ast"
	"github.com/mako10k/t/internal/errs"
)

// Parser holds cursor state over a single programme string.
type Parser struct {
	input string
	pos   int
}

// New creates a Parser over programme.
func New(programme string) *Parser {
	return &Parser{input: programme}
}

// Parse consumes the whole programme and returns its operator AST.
func Parse(programme string) ([]ast.Node, error) {
	return New(programme).Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() ([]ast.Node, error) {
	var nodes []ast.Node
	for !p.atEnd() {
		n, err := p.parseOperator()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.input) }

func (p *Parser) current() byte {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) peek() byte {
	if p.pos+1 >= len(p.input) {
		return 0
	}
	return p.input[p.pos+1]
}

func (p *Parser) advance() { p.pos++ }

func (p *Parser) errAt(offset int, format string, args ...interface{}) error {
	return errs.Parse(offset, format, args...)
}

// parseOperator dispatches on the current character to produce a single
// AST node, consuming exactly the characters that belong to it.
func (p *Parser) parseOperator() (ast.Node, error) {
	start := p.pos
	c := p.current()

	switch c {
	case 's':
		p.advance()
		return &ast.Split{HasDelim: false}, nil
	case 'S':
		p.advance()
		delim, err := p.readDelimiter(start)
		if err != nil {
			return nil, err
		}
		return &ast.Split{Delimiter: delim, HasDelim: true}, nil
	case 'j':
		p.advance()
		return &ast.Join{HasDelim: false}, nil
	case 'J':
		p.advance()
		delim, err := p.readDelimiter(start)
		if err != nil {
			return nil, err
		}
		return &ast.Join{Delimiter: delim, HasDelim: true}, nil
	case 'l':
		p.advance()
		return &ast.CaseOp{Kind: ast.Lower}, nil
	case 'u':
		p.advance()
		return &ast.CaseOp{Kind: ast.Upper}, nil
	case 't':
		p.advance()
		return &ast.CaseOp{Kind: ast.Trim}, nil
	case 'n':
		p.advance()
		return &ast.CaseOp{Kind: ast.ToNumber}, nil
	case 'L', 'U', 'T', 'N':
		p.advance()
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		kind := map[byte]ast.CaseKind{'L': ast.Lower, 'U': ast.Upper, 'T': ast.Trim, 'N': ast.ToNumber}[c]
		return &ast.CaseOp{Kind: kind, Selection: sel}, nil
	case 'r':
		p.advance()
		var sel *ast.Selection
		if p.current() != '/' {
			s, err := p.parseSelection()
			if err != nil {
				return nil, err
			}
			sel = s
		}
		if p.current() != '/' {
			return nil, p.errAt(p.pos, "expected '/' to start replace pattern")
		}
		re, replacement, err := p.parseReplacePair()
		if err != nil {
			return nil, err
		}
		return &ast.Replace{Pattern: re, Replace: replacement, Selection: sel}, nil
	case '/':
		re, err := p.parseRegexLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.Filter{Pattern: re, Invert: false}, nil
	case '!':
		p.advance()
		if p.current() != '/' {
			return nil, p.errAt(p.pos, "expected '/' after '!'")
		}
		re, err := p.parseRegexLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.Filter{Pattern: re, Invert: true}, nil
	case 'm':
		p.advance()
		if p.current() != '/' {
			return nil, p.errAt(p.pos, "expected '/' after 'm'")
		}
		re, err := p.parseRegexLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.Match{Pattern: re}, nil
	case 'd':
		p.advance()
		return &ast.Dedupe{}, nil
	case 'D':
		p.advance()
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		return &ast.Dedupe{Selection: sel}, nil
	case 'o':
		p.advance()
		return &ast.Sort{Ascending: false}, nil
	case 'O':
		p.advance()
		return &ast.Sort{Ascending: true}, nil
	case 'x':
		p.advance()
		return &ast.DropEmpty{}, nil
	case 'g':
		p.advance()
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		return &ast.GroupBy{Selection: sel}, nil
	case '#':
		p.advance()
		return &ast.Count{}, nil
	case '+':
		p.advance()
		return &ast.Sum{}, nil
	case 'c':
		p.advance()
		return &ast.Columnate{}, nil
	case 'C':
		p.advance()
		delim, err := p.readDelimiter(start)
		if err != nil {
			return nil, err
		}
		return &ast.Columnate{Delimiter: delim, HasDelim: true}, nil
	case 'p':
		p.advance()
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		return &ast.Partition{Selection: sel}, nil
	case '@':
		p.advance()
		return &ast.Focus{Descend: true}, nil
	case '^':
		p.advance()
		return &ast.Focus{Descend: false}, nil
	case ';':
		p.advance()
		return &ast.NoOp{}, nil
	default:
		if isSelectionStart(c) {
			sel, err := p.parseSelection()
			if err != nil {
				return nil, err
			}
			return &ast.Select{Selection: sel}, nil
		}
		return nil, p.errAt(start, "unexpected character %q", c)
	}
}

// isOperatorStart reports whether c begins a new operator, used by the
// delimiter reader to find its own right boundary.
func isOperatorStart(c byte) bool {
	switch c {
	case 's', 'S', 'j', 'J', 'l', 'u', 't', 'n', 'L', 'U', 'T', 'N', 'r',
		'/', '!', 'm', 'd', 'D', 'o', 'O', 'x', 'g', '#', '+', 'c', 'C',
		'p', '@', '^', ';':
		return true
	}
	return isSelectionStart(c)
}

func isSelectionStart(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '-' || c == ':'
}

// readDelimiter implements the S/J/C delimiter-reading form: the
// character immediately following the operator letter always belongs to
// the delimiter, even if it looks like another operator's leader;
// subsequent characters extend the delimiter until the next operator
// boundary (or end of input). A literal backslash escapes the following
// character, including one that would otherwise end the delimiter.
func (p *Parser) readDelimiter(opStart int) (string, error) {
	var out []byte

	readOne := func() error {
		if p.current() == '\\' {
			p.advance()
			if p.atEnd() {
				return p.errAt(p.pos, "trailing escape in delimiter")
			}
			out = append(out, p.current())
			p.advance()
			return nil
		}
		out = append(out, p.current())
		p.advance()
		return nil
	}

	if p.atEnd() {
		return "", p.errAt(opStart, "delimiter operator requires at least one character")
	}
	if err := readOne(); err != nil {
		return "", err
	}

	for !p.atEnd() && !isOperatorStart(p.current()) {
		if err := readOne(); err != nil {
			return "", err
		}
	}
	return string(out), nil
}

// parseRegexLiteral parses a `/pattern/` literal starting at the current
// '/' and compiles it eagerly. Invalid regex is a ParseError pointing at
// the first pattern character.
func (p *Parser) parseRegexLiteral() (*regexp.Regexp, error) {
	p.advance() // consume opening '/'
	patternStart := p.pos
	pattern, err := p.readUntilUnescapedSlash()
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errs.ParseWrap(err, patternStart, "invalid regex: %s", err)
	}
	return re, nil
}

// parseReplacePair parses `/pattern/replacement/` for the `r` operator,
// where `/` is the three-way field separator and `\/` escapes a literal
// slash inside either field.
func (p *Parser) parseReplacePair() (*regexp.Regexp, string, error) {
	p.advance() // consume opening '/'
	patternStart := p.pos
	pattern, err := p.readUntilUnescapedSlash()
	if err != nil {
		return nil, "", err
	}
	replacement, err := p.readUntilUnescapedSlash()
	if err != nil {
		return nil, "", err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, "", errs.ParseWrap(err, patternStart, "invalid regex: %s", err)
	}
	return re, replacement, nil
}

// readUntilUnescapedSlash reads raw text up to (and consuming) the next
// unescaped '/'. `\/` yields a literal '/'; `\\` yields a literal '\'.
func (p *Parser) readUntilUnescapedSlash() (string, error) {
	start := p.pos
	var out []byte
	for {
		if p.atEnd() {
			return "", p.errAt(start, "unterminated regex literal")
		}
		c := p.current()
		if c == '/' {
			p.advance()
			return string(out), nil
		}
		if c == '\\' {
			p.advance()
			if p.atEnd() {
				return "", p.errAt(start, "trailing escape in regex literal")
			}
			out = append(out, p.current())
			p.advance()
			continue
		}
		out = append(out, c)
		p.advance()
	}
}

// parseSelection parses a comma-separated list of selection items.
func (p *Parser) parseSelection() (*ast.Selection, error) {
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.current() == ',' {
			p.advance()
			continue
		}
		break
	}
	return &ast.Selection{Items: items}, nil
}

// parseSelectItem parses either an integer index or a start:end:step
// slice. Any component of the slice may be omitted.
func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	start := p.pos
	numStr, hasNum := p.readSignedDigits()

	if p.current() != ':' {
		if !hasNum {
			return ast.SelectItem{}, p.errAt(start, "expected a selection index or slice")
		}
		idx, err := strconv.Atoi(numStr)
		if err != nil {
			return ast.SelectItem{}, p.errAt(start, "invalid selection index %q", numStr)
		}
		return ast.SelectItem{IsSlice: false, Index: idx}, nil
	}

	// Slice form: [start]:[end][:[step]]
	slice := ast.Slice{}
	if hasNum {
		v, _ := strconv.Atoi(numStr)
		slice.Start, slice.HasStart = v, true
	}
	p.advance() // consume ':'

	endStr, hasEnd := p.readSignedDigits()
	if hasEnd {
		v, _ := strconv.Atoi(endStr)
		slice.End, slice.HasEnd = v, true
	}

	if p.current() == ':' {
		p.advance()
		stepStr, hasStep := p.readSignedDigits()
		if hasStep {
			v, _ := strconv.Atoi(stepStr)
			slice.Step, slice.HasStep = v, true
		}
	}

	return ast.SelectItem{IsSlice: true, Slice: slice}, nil
}

// readSignedDigits reads an optional leading '-' followed by zero or
// more digits. hasNum is false when no digit was actually read (a bare
// '-' is not a valid number and is left unconsumed).
func (p *Parser) readSignedDigits() (string, bool) {
	save := p.pos
	neg := false
	if p.current() == '-' {
		neg = true
		p.advance()
	}
	digitsStart := p.pos
	for isDigit(p.current()) {
		p.advance()
	}
	if p.pos == digitsStart {
		p.pos = save
		return "", false
	}
	if neg {
		return "-" + p.input[digitsStart:p.pos], true
	}
	return p.input[digitsStart:p.pos], true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
