package selector

import "strings"

// render maps a single fragment to its CSS text.
func render(f Fragment) string {
	switch f.Kind {
	case KindElement:
		return f.Text
	case KindID:
		return "#" + f.Text
	case KindClass:
		return "." + f.Text
	case KindAttribute:
		return "[" + f.Text + "]"
	case KindPseudoClass:
		return ":" + f.Text
	case KindPseudoElement:
		return "::" + f.Text
	case KindCombinator:
		return " " + f.Text + " "
	default:
		// unreachable with the closed kind set
		return ""
	}
}

// String renders the accumulated fragments as a selector, ignoring any
// recorded validation error. Repeated calls yield identical output.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, f := range b.frags {
		sb.WriteString(render(f))
	}
	return sb.String()
}

// Build returns the selector text, or the first validation error recorded
// during construction. Serialization itself never fails.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}
