package selector_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"cssb/selector"
)

func TestParser_Compound(t *testing.T) {
	p := selector.NewParser(zap.NewNop())

	tests := []struct {
		in   string
		want string
	}{
		{"div", "div"},
		{"*", "*"},
		{"#main", "#main"},
		{".container", ".container"},
		{"[disabled]", "[disabled]"},
		{":hover", ":hover"},
		{"::before", "::before"},
		{"a#x.c1.c2", "a#x.c1.c2"},
		{`a[href$=".png"]:focus`, `a[href$=".png"]:focus`},
		{"#main.container.editable", "#main.container.editable"},
		{"li:nth-of-type(even)", "li:nth-of-type(even)"},
		{"p::first-line", "p::first-line"},
		{"input[type=checkbox]:checked", "input[type=checkbox]:checked"},
		{"  div.x  ", "div.x"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			b, err := p.Parse(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := b.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParser_Combinators(t *testing.T) {
	p := selector.NewParser(zap.NewNop())

	tests := []struct {
		in   string
		want string
	}{
		// explicit combinators normalize to single-space padding
		{"ul>li", "ul > li"},
		{"ul > li", "ul > li"},
		{"h1 + p", "h1 + p"},
		{"h1~p", "h1 ~ p"},
		// descendant combinator is itself a space token, hence three spaces
		{"div span", "div   span"},
		{"ul > li a", "ul > li   a"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			b, err := p.Parse(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := b.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParser_GroupsRestartValidation(t *testing.T) {
	p := selector.NewParser(nil)

	// both sides carry an element and an id, valid because each group is
	// validated independently
	b, err := p.Parse("table#data > tr#first")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.String(); got != "table#data > tr#first" {
		t.Errorf("got %q", got)
	}
}

func TestParser_Errors(t *testing.T) {
	p := selector.NewParser(zap.NewNop())

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"selector group", "h1, h2"},
		{"dangling colon", "a:"},
		{"dot without name", "div."},
		{"unterminated attribute", "[href"},
		{"trailing combinator", "ul >"},
		{"leading combinator", "> li"},
		{"consecutive combinators", "ul > > li"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := p.Parse(tc.in); err == nil {
				t.Errorf("expected error for %q", tc.in)
			}
		})
	}
}

func TestParser_MalformedOrderSurfacesBuilderError(t *testing.T) {
	p := selector.NewParser(zap.NewNop())

	// class before id violates fragment order within one group
	_, err := p.Parse(".container#main")
	if !errors.Is(err, selector.ErrOrderViolation) {
		t.Errorf("expected ErrOrderViolation, got %v", err)
	}

	_, err = p.Parse("#a#b")
	if !errors.Is(err, selector.ErrDuplicateSingleton) {
		t.Errorf("expected ErrDuplicateSingleton, got %v", err)
	}
}

func TestParser_RoundTripNormalized(t *testing.T) {
	p := selector.NewParser(zap.NewNop())

	// parsing its own output must be a fixed point
	inputs := []string{
		"ul>li.active:hover",
		`a#x[href$=".png"]::after`,
		"table#data ~ tr:nth-of-type(even)",
	}
	for _, in := range inputs {
		b, err := p.Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		again, err := p.Parse(b.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", b.String(), err)
		}
		if b.String() != again.String() {
			t.Errorf("normalization not stable: %q vs %q", b.String(), again.String())
		}
	}
}
