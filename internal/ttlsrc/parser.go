package ttlsrc

import (
	"fmt"

	"github.com/ttl-lang/ttlc/internal/ast"
)

// Parser builds internal/ast nodes from a token stream, one token of
// lookahead, over TTL's small grammar: name | string | number | call |
// function | object.
type Parser struct {
	lex  *Lexer
	file string
	cur  Token
}

// Parse reads one TTL expression from source and returns its AST. line/col
// offset every position recorded on the returned nodes (and in the
// trailing-token error), so a TTL annotation embedded partway through a
// larger file reports accurate diagnostics. Other syntax errors report
// line:column relative to the start of source, without the offset.
func Parse(source, file string, line, col int) (ast.Node, error) {
	p := &Parser{lex: NewLexer(source), file: file}
	if err := p.next(); err != nil {
		return nil, err
	}
	n, err := p.parseExpr(line, col)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != EOF {
		return nil, fmt.Errorf("%s: unexpected trailing token %s", p.pos(p.cur, line, col), p.cur)
	}
	return n, nil
}

func (p *Parser) next() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *Parser) pos(t Token, lineOffset, colOffset int) ast.Pos {
	l := t.Line + lineOffset - 1
	c := t.Column
	if t.Line == 1 {
		c += colOffset - 1
	}
	return ast.Pos{File: p.file, Line: l, Column: c}
}

func (p *Parser) expect(tt TokenType) (Token, error) {
	if p.cur.Type != tt {
		return Token{}, fmt.Errorf("%d:%d: expected %s, got %s", p.cur.Line, p.cur.Column, tt, p.cur.Type)
	}
	t := p.cur
	if err := p.next(); err != nil {
		return Token{}, err
	}
	return t, nil
}

func (p *Parser) parseExpr(lineOffset, colOffset int) (ast.Node, error) {
	switch p.cur.Type {
	case STRING:
		t := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.StringLit{Value: t.Literal, Pos: p.pos(t, lineOffset, colOffset)}, nil
	case NUMBER:
		t := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.NumberLit{Value: t.Num, Pos: p.pos(t, lineOffset, colOffset)}, nil
	case LBRACE:
		return p.parseObjectLiteral(lineOffset, colOffset)
	case LPAREN:
		return p.parseFunction(lineOffset, colOffset)
	case IDENT:
		return p.parseNameOrCall(lineOffset, colOffset)
	default:
		return nil, fmt.Errorf("%d:%d: unexpected token %s", p.cur.Line, p.cur.Column, p.cur.Type)
	}
}

func (p *Parser) parseNameOrCall(lineOffset, colOffset int) (ast.Node, error) {
	head := p.cur
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Type != LPAREN {
		return &ast.Name{Value: head.Literal, Pos: p.pos(head, lineOffset, colOffset)}, nil
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Node
	for p.cur.Type != RPAREN {
		arg, err := p.parseExpr(lineOffset, colOffset)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == COMMA {
			if err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return &ast.Call{
		Head: ast.Name{Value: head.Literal, Pos: p.pos(head, lineOffset, colOffset)},
		Args: args,
		Pos:  p.pos(head, lineOffset, colOffset),
	}, nil
}

// parseFunction parses (p1, p2, ...) => body, the function-literal argument
// shape used by mapunion and maprecord.
func (p *Parser) parseFunction(lineOffset, colOffset int) (ast.Node, error) {
	open := p.cur
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.cur.Type != RPAREN {
		name, err := p.expect(IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: ast.Name{Value: name.Literal, Pos: p.pos(name, lineOffset, colOffset)}})
		if p.cur.Type == COMMA {
			if err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(FARROW); err != nil {
		return nil, err
	}
	body, err := p.parseExpr(lineOffset, colOffset)
	if err != nil {
		return nil, err
	}
	return &ast.Function{Params: params, Body: body, Pos: p.pos(open, lineOffset, colOffset)}, nil
}

// parseObjectLiteral parses { name: expr, [key]: expr, ... }, record(...)'s
// sole argument shape.
func (p *Parser) parseObjectLiteral(lineOffset, colOffset int) (ast.Node, error) {
	open := p.cur
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	var props []*ast.Property
	for p.cur.Type != RBRACE {
		prop, err := p.parseProperty(lineOffset, colOffset)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
		if p.cur.Type == COMMA {
			if err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return &ast.ObjectLiteral{Properties: props, Pos: p.pos(open, lineOffset, colOffset)}, nil
}

func (p *Parser) parseProperty(lineOffset, colOffset int) (*ast.Property, error) {
	start := p.cur
	if p.cur.Type == LBRACKET {
		if err := p.next(); err != nil {
			return nil, err
		}
		key, err := p.expect(IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RBRACKET); err != nil {
			return nil, err
		}
		if _, err := p.expect(COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpr(lineOffset, colOffset)
		if err != nil {
			return nil, err
		}
		return &ast.Property{
			Computed: &ast.ComputedProperty{
				Key: ast.Name{Value: key.Literal, Pos: p.pos(key, lineOffset, colOffset)},
				Pos: p.pos(start, lineOffset, colOffset),
			},
			Value: value,
			Pos:   p.pos(start, lineOffset, colOffset),
		}, nil
	}

	name, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}
	value, err := p.parseExpr(lineOffset, colOffset)
	if err != nil {
		return nil, err
	}
	return &ast.Property{
		PlainName: name.Literal,
		Value:     value,
		Pos:       p.pos(start, lineOffset, colOffset),
	}, nil
}
