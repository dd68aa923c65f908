package selector

import "testing"

func TestRender_UnknownKind(t *testing.T) {
	if got := render(Fragment{Kind: Kind(99), Text: "x"}); got != "" {
		t.Errorf("unknown kind must render empty, got %q", got)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElement, "element"},
		{KindID, "id"},
		{KindClass, "class"},
		{KindAttribute, "attribute"},
		{KindPseudoClass, "pseudo-class"},
		{KindPseudoElement, "pseudo-element"},
		{KindCombinator, "combinator"},
		{Kind(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestCheckAppend_GroupRestart(t *testing.T) {
	b := Element("ul").Class("menu")
	b.appendCombinator(">")

	// a fresh group accepts an element and new singletons
	b.Element("li").ID("first")
	if b.Err() != nil {
		t.Fatalf("group restart failed: %v", b.Err())
	}
	if got := b.String(); got != "ul.menu > li#first" {
		t.Errorf("got %q", got)
	}
}
