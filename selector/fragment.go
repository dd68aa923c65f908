package selector

// Kind identifies the type of a selector fragment.
type Kind int

const (
	KindElement       Kind = iota // element name, e.g. "div"
	KindID                        // id, rendered with "#"
	KindClass                     // class, rendered with "."
	KindAttribute                 // attribute expression, rendered inside "[]"
	KindPseudoClass               // pseudo-class, rendered with ":"
	KindPseudoElement             // pseudo-element, rendered with "::"
	KindCombinator                // combinator token joining two selectors
)

// String returns a human readable name of the fragment kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	case KindCombinator:
		return "combinator"
	default:
		return "unknown"
	}
}

// rank is the position of a fragment kind in the CSS grammar order. Combinator
// fragments are group boundaries and carry no rank of their own.
func (k Kind) rank() int {
	switch k {
	case KindElement:
		return 0
	case KindID:
		return 1
	case KindClass:
		return 2
	case KindAttribute:
		return 3
	case KindPseudoClass:
		return 4
	case KindPseudoElement:
		return 5
	default:
		return -1
	}
}

// singleton reports whether a fragment kind may occur at most once per
// selector group.
func (k Kind) singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// Fragment is one typed piece of a selector. Text is the raw user supplied
// value: an element name, a class name without the leading dot, an attribute
// expression without brackets, or a combinator token.
type Fragment struct {
	Kind Kind
	Text string
}
