// Package selector builds CSS compound and complex selectors from typed
// fragments, enforcing CSS ordering and cardinality rules at construction
// time.
//
// Selectors are assembled through a fluent Builder obtained from one of the
// package-level constructors:
//
//	s, err := selector.Element("a").Attribute(`href$=".png"`).PseudoClass("focus").Build()
//	// s == `a[href$=".png"]:focus`
//
// Fragment order follows the CSS grammar: element, id, class, attribute,
// pseudo-class, pseudo-element. Element, id and pseudo-element may appear at
// most once. A violation is recorded on the builder at the offending call and
// reported by Build or Err; the failing call never mutates the sequence.
//
// Two independently built selectors are joined with Combine:
//
//	selector.Combine(selector.Element("ul"), ">", selector.Element("li"))
//
// Combine copies both operand sequences, so mutating an operand afterwards
// does not affect the combination. Ordering rules restart on each side of a
// combinator.
package selector
