package selector_test

import (
	"testing"

	"cssb/selector"
)

func TestDef_Build(t *testing.T) {
	tests := []struct {
		name string
		yml  string
		want string
	}{
		{
			"compound",
			`
element: a
attributes: ['href$=".png"']
pseudo_classes: [focus]
`,
			`a[href$=".png"]:focus`,
		},
		{
			"id with classes",
			`
id: main
classes: [container, editable]
`,
			"#main.container.editable",
		},
		{
			"combined",
			`
combinator: ">"
left: {element: ul}
right: {element: li, pseudo_classes: [first-child]}
`,
			"ul > li:first-child",
		},
		{
			"combined defaults to descendant",
			`
left: {element: div}
right: {element: span}
`,
			"div   span",
		},
		{
			"nested combine",
			`
combinator: "~"
left: {element: table, id: data}
right:
  combinator: "+"
  left: {element: tr}
  right: {element: td}
`,
			"table#data ~ tr + td",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def, err := selector.LoadDef([]byte(tc.yml))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			b, err := def.Build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := b.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDef_Errors(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{"empty", `{}`},
		{"combinator without sides", `combinator: ">"`},
		{"one-sided combine", `{combinator: ">", left: {element: a}}`},
		{"fragments on combined node", `
combinator: ">"
element: div
left: {element: a}
right: {element: b}
`},
		{"unknown field", `elment: div`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def, err := selector.LoadDef([]byte(tc.yml))
			if err != nil {
				return // rejected at decode time, fine
			}
			if _, err := def.Build(); err == nil {
				t.Errorf("expected error for %q", tc.yml)
			}
		})
	}
}

func TestDef_ValidationApplies(t *testing.T) {
	def, err := selector.LoadDef([]byte("id: a\nelement: div\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Build replays fields in rank order, so this one is actually valid
	b, err := def.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := b.String(); got != "div#a" {
		t.Errorf("got %q", got)
	}

	// but a duplicate inside one list still fails
	def, err = selector.LoadDef([]byte("left: {id: a}\nright: {id: a}\ncombinator: '+'\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := def.Build(); err != nil {
		t.Fatalf("ids on both sides of a combinator are independent: %v", err)
	}
}
