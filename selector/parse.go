package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Parser turns selector text back into a Builder. Parsed fragments are
// replayed through the fluent append path, so parsing enforces the same
// ordering and cardinality rules as hand-built selectors.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a selector parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("selector-parser")}
}

// token is a lexed unit with its byte offset, kept so the whole selector can
// be lexed up front and walked with lookahead.
type token struct {
	tt   css.TokenType
	text string
	pos  int
}

// Parse lexes a single compound or complex selector and rebuilds it fragment
// by fragment. Selector groups (commas) are not accepted - one Builder models
// one selector. Descendant combinators normalize to the explicit single-space
// token, so Parse(s).String() is a normalized form of s, not necessarily s
// itself.
func (p *Parser) Parse(s string) (*Builder, error) {
	toks, err := p.lex(s)
	if err != nil {
		return nil, fmt.Errorf("lexing selector %q: %w", s, err)
	}

	b := new(Builder)
	var (
		pending   string // combinator waiting for its right-hand side
		pendingWS bool   // whitespace seen since the last fragment
	)

	// flush injects the pending combinator (explicit or descendant) before
	// the next compound fragment
	flush := func() {
		if pending != "" {
			b.appendCombinator(pending)
		} else if pendingWS {
			b.appendCombinator(" ")
		}
		pending, pendingWS = "", false
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.tt {
		case css.WhitespaceToken:
			pendingWS = true

		case css.DelimToken:
			switch t.text {
			case ">", "+", "~":
				if len(b.frags) == 0 {
					return nil, fmt.Errorf("selector %q: combinator %q has no left-hand side", s, t.text)
				}
				if pending != "" {
					return nil, fmt.Errorf("selector %q: consecutive combinators at offset %d", s, t.pos)
				}
				pending = t.text
			case ".":
				if i+1 >= len(toks) || toks[i+1].tt != css.IdentToken {
					return nil, fmt.Errorf("selector %q: expected class name after '.' at offset %d", s, t.pos)
				}
				flush()
				b.Class(toks[i+1].text)
				i++
			case "*":
				flush()
				b.Element("*")
			default:
				return nil, fmt.Errorf("selector %q: unexpected %q at offset %d", s, t.text, t.pos)
			}

		case css.IdentToken:
			flush()
			b.Element(t.text)

		case css.HashToken:
			flush()
			b.ID(strings.TrimPrefix(t.text, "#"))

		case css.LeftBracketToken:
			expr, next, err := collectUntil(toks, i+1, css.RightBracketToken)
			if err != nil {
				return nil, fmt.Errorf("selector %q: unterminated attribute at offset %d", s, t.pos)
			}
			flush()
			b.Attribute(expr)
			i = next

		case css.ColonToken:
			double := i+1 < len(toks) && toks[i+1].tt == css.ColonToken
			j := i + 1
			if double {
				j++
			}
			if j >= len(toks) {
				return nil, fmt.Errorf("selector %q: dangling ':' at offset %d", s, t.pos)
			}
			name := toks[j]
			switch name.tt {
			case css.IdentToken:
				flush()
				if double {
					b.PseudoElement(name.text)
				} else {
					b.PseudoClass(name.text)
				}
				i = j
			case css.FunctionToken:
				args, next, err := collectUntil(toks, j+1, css.RightParenthesisToken)
				if err != nil {
					return nil, fmt.Errorf("selector %q: unterminated %q at offset %d", s, name.text, name.pos)
				}
				full := name.text + args + ")"
				flush()
				if double {
					b.PseudoElement(full)
				} else {
					b.PseudoClass(full)
				}
				i = next
			default:
				return nil, fmt.Errorf("selector %q: expected pseudo name at offset %d", s, name.pos)
			}

		case css.CommaToken:
			return nil, fmt.Errorf("selector %q: selector groups are not supported", s)

		default:
			return nil, fmt.Errorf("selector %q: unexpected %q at offset %d", s, t.text, t.pos)
		}
	}

	if pending != "" {
		return nil, fmt.Errorf("selector %q: trailing combinator %q", s, pending)
	}
	if b.err != nil {
		return nil, multierr.Append(fmt.Errorf("selector %q is malformed", s), b.err)
	}
	if len(b.frags) == 0 {
		return nil, fmt.Errorf("selector %q is empty", s)
	}

	p.log.Debug("Parsed selector", zap.String("input", s), zap.Int("fragments", len(b.frags)))
	return b, nil
}

// lex runs the css lexer over the whole input, dropping comments. Leading and
// trailing whitespace never separates anything, so it is trimmed up front.
func (p *Parser) lex(s string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(strings.TrimSpace(s)))

	var toks []token
	pos := 0
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return toks, nil
		case css.CommentToken:
			// ignore
		default:
			toks = append(toks, token{tt: tt, text: string(data), pos: pos})
		}
		pos += len(data)
	}
}

// collectUntil concatenates raw token text from start until the closing token
// type, honoring nested parentheses and brackets. It returns the collected
// text and the index of the closing token.
func collectUntil(toks []token, start int, closing css.TokenType) (string, int, error) {
	var sb strings.Builder
	depth := 0
	for i := start; i < len(toks); i++ {
		t := toks[i]
		if depth == 0 && t.tt == closing {
			return sb.String(), i, nil
		}
		switch t.tt {
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		}
		sb.WriteString(t.text)
	}
	return "", 0, io.ErrUnexpectedEOF
}
