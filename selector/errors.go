package selector

import "errors"

// Both errors signal programmer mistakes in selector construction. They are
// raised by the append that violates the rule, never deferred to Build, and
// the failing append leaves the builder untouched.
var (
	// ErrDuplicateSingleton is returned when an element, id or pseudo-element
	// fragment is added to a selector that already has one.
	ErrDuplicateSingleton = errors.New("Element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrOrderViolation is returned when a fragment is added out of the CSS
	// grammar order.
	ErrOrderViolation = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)
