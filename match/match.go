// Package match applies built selectors to parsed HTML documents. A selector
// is compiled once into a Matcher and then evaluated against any number of
// nodes from golang.org/x/net/html.
//
// Matching is stricter than building: while the selector package accepts any
// combinator token and any pseudo-class text, a Matcher can only be compiled
// from what it knows how to evaluate. Pseudo-elements select positions inside
// elements rather than elements, so they cannot be compiled at all.
package match

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"cssb/selector"
)

type combinator int

const (
	descendant combinator = iota
	child
	adjacent
	sibling
)

// attrCheck is one attribute condition. An empty op means bare presence.
type attrCheck struct {
	key string
	op  string
	val string
}

type pseudoCheck int

const (
	firstChild pseudoCheck = iota
	lastChild
	onlyChild
	emptyNode
	rootNode
)

// compound is the per-group matching state: all fragments between two
// combinators folded into direct checks.
type compound struct {
	element string // empty or "*" matches any element
	id      string
	classes []string
	attrs   []attrCheck
	pseudos []pseudoCheck
}

// Matcher is a compiled selector. groups run left to right; combs[i] joins
// groups[i] and groups[i+1].
type Matcher struct {
	groups []compound
	combs  []combinator
}

// Compile turns a built selector into a Matcher. The builder must be
// error-free and every fragment must be evaluatable.
func Compile(b *selector.Builder) (*Matcher, error) {
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("selector is malformed: %w", err)
	}
	frags := b.Fragments()
	if len(frags) == 0 {
		return nil, fmt.Errorf("empty selector")
	}

	m := &Matcher{groups: make([]compound, 1)}
	cur := &m.groups[0]

	for _, f := range frags {
		switch f.Kind {
		case selector.KindCombinator:
			c, err := parseCombinator(f.Text)
			if err != nil {
				return nil, err
			}
			m.combs = append(m.combs, c)
			m.groups = append(m.groups, compound{})
			cur = &m.groups[len(m.groups)-1]
		case selector.KindElement:
			cur.element = f.Text
		case selector.KindID:
			cur.id = f.Text
		case selector.KindClass:
			cur.classes = append(cur.classes, f.Text)
		case selector.KindAttribute:
			ac, err := parseAttr(f.Text)
			if err != nil {
				return nil, err
			}
			cur.attrs = append(cur.attrs, ac)
		case selector.KindPseudoClass:
			pc, err := parsePseudoClass(f.Text)
			if err != nil {
				return nil, err
			}
			cur.pseudos = append(cur.pseudos, pc)
		case selector.KindPseudoElement:
			return nil, fmt.Errorf("pseudo-element %q does not select elements", f.Text)
		}
	}
	return m, nil
}

func parseCombinator(tok string) (combinator, error) {
	switch strings.TrimSpace(tok) {
	case "":
		return descendant, nil
	case ">":
		return child, nil
	case "+":
		return adjacent, nil
	case "~":
		return sibling, nil
	default:
		return 0, fmt.Errorf("unsupported combinator %q", tok)
	}
}

// parseAttr splits a raw attribute expression like `href$=".png"` into key,
// operator and unquoted value.
func parseAttr(expr string) (attrCheck, error) {
	for _, op := range []string{"~=", "|=", "^=", "$=", "*=", "="} {
		if key, val, found := strings.Cut(expr, op); found {
			key = strings.TrimSpace(key)
			if key == "" {
				return attrCheck{}, fmt.Errorf("attribute expression %q has no name", expr)
			}
			return attrCheck{key: key, op: op, val: unquote(strings.TrimSpace(val))}, nil
		}
	}
	key := strings.TrimSpace(expr)
	if key == "" {
		return attrCheck{}, fmt.Errorf("empty attribute expression")
	}
	return attrCheck{key: key}, nil
}

func parsePseudoClass(name string) (pseudoCheck, error) {
	switch strings.ToLower(name) {
	case "first-child":
		return firstChild, nil
	case "last-child":
		return lastChild, nil
	case "only-child":
		return onlyChild, nil
	case "empty":
		return emptyNode, nil
	case "root":
		return rootNode, nil
	default:
		return 0, fmt.Errorf("unsupported pseudo-class %q", name)
	}
}

// Match reports whether n satisfies the whole selector, n being matched
// against the rightmost group.
func (m *Matcher) Match(n *html.Node) bool {
	return m.match(len(m.groups)-1, n)
}

// All walks the tree under root and returns every matching element in
// document order.
func (m *Matcher) All(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && m.Match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// match checks group i against n and then resolves the combinator chain to
// the left, trying every qualifying ancestor or sibling.
func (m *Matcher) match(i int, n *html.Node) bool {
	if !m.groups[i].matches(n) {
		return false
	}
	if i == 0 {
		return true
	}
	switch m.combs[i-1] {
	case child:
		if p := n.Parent; p != nil && p.Type == html.ElementNode {
			return m.match(i-1, p)
		}
	case descendant:
		for p := n.Parent; p != nil; p = p.Parent {
			if p.Type == html.ElementNode && m.match(i-1, p) {
				return true
			}
		}
	case adjacent:
		if s := prevElement(n); s != nil {
			return m.match(i-1, s)
		}
	case sibling:
		for s := prevElement(n); s != nil; s = prevElement(s) {
			if m.match(i-1, s) {
				return true
			}
		}
	}
	return false
}

func (c *compound) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if c.element != "" && c.element != "*" && n.Data != c.element {
		return false
	}
	if c.id != "" && attrValue(n, "id") != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := strings.Fields(attrValue(n, "class"))
		for _, want := range c.classes {
			if !slices.Contains(have, want) {
				return false
			}
		}
	}
	for _, ac := range c.attrs {
		if !ac.matches(n) {
			return false
		}
	}
	for _, pc := range c.pseudos {
		if !pc.matches(n) {
			return false
		}
	}
	return true
}

func (a attrCheck) matches(n *html.Node) bool {
	val, ok := lookupAttr(n, a.key)
	if !ok {
		return false
	}
	switch a.op {
	case "":
		return true
	case "=":
		return val == a.val
	case "~=":
		return slices.Contains(strings.Fields(val), a.val)
	case "|=":
		return val == a.val || strings.HasPrefix(val, a.val+"-")
	case "^=":
		return a.val != "" && strings.HasPrefix(val, a.val)
	case "$=":
		return a.val != "" && strings.HasSuffix(val, a.val)
	case "*=":
		return a.val != "" && strings.Contains(val, a.val)
	default:
		return false
	}
}

func (p pseudoCheck) matches(n *html.Node) bool {
	switch p {
	case firstChild:
		return prevElement(n) == nil && n.Parent != nil
	case lastChild:
		return nextElement(n) == nil && n.Parent != nil
	case onlyChild:
		return prevElement(n) == nil && nextElement(n) == nil && n.Parent != nil
	case emptyNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode || c.Type == html.TextNode {
				return false
			}
		}
		return true
	case rootNode:
		return n.Parent != nil && n.Parent.Type == html.DocumentNode
	default:
		return false
	}
}

func prevElement(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrValue(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

// unquote removes surrounding quotes from an attribute value.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
