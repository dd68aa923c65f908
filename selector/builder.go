package selector

// Builder accumulates selector fragments through fluent calls. The zero value
// is an empty selector, but callers are expected to start from one of the
// package-level constructors.
//
// Validation happens on every append. The first violation is recorded and
// every later fluent call becomes a no-op, so a chain can be written without
// per-call error checks and inspected once at the end via Err or Build.
type Builder struct {
	frags []Fragment

	// singleton occupancy of the current selector group, kept so the
	// at-most-once check does not rescan the sequence
	hasElement       bool
	hasID            bool
	hasPseudoElement bool

	err error
}

// Element starts a new selector with an element name.
func Element(value string) *Builder {
	return new(Builder).Element(value)
}

// ID starts a new selector with an id fragment.
func ID(value string) *Builder {
	return new(Builder).ID(value)
}

// Class starts a new selector with a class fragment.
func Class(value string) *Builder {
	return new(Builder).Class(value)
}

// Attribute starts a new selector with an attribute fragment. The value is
// the raw expression without brackets, e.g. `href$=".png"`.
func Attribute(value string) *Builder {
	return new(Builder).Attribute(value)
}

// PseudoClass starts a new selector with a pseudo-class fragment.
func PseudoClass(value string) *Builder {
	return new(Builder).PseudoClass(value)
}

// PseudoElement starts a new selector with a pseudo-element fragment.
func PseudoElement(value string) *Builder {
	return new(Builder).PseudoElement(value)
}

// Combine joins two selectors with a combinator token into a new selector.
// Fragments are copied from both operands, so the result is independent of
// later changes to either. The token is taken verbatim and is not checked
// against the CSS combinator set. Operand errors propagate to the result.
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	b := &Builder{frags: make([]Fragment, 0, len(left.frags)+len(right.frags)+1)}
	b.frags = append(b.frags, left.frags...)
	b.frags = append(b.frags, Fragment{Kind: KindCombinator, Text: combinator})
	b.frags = append(b.frags, right.frags...)

	// further fluent calls continue the right-hand group
	b.hasElement = right.hasElement
	b.hasID = right.hasID
	b.hasPseudoElement = right.hasPseudoElement

	if left.err != nil {
		b.err = left.err
	} else {
		b.err = right.err
	}
	return b
}

// Element adds an element fragment. An element must open its selector group.
func (b *Builder) Element(value string) *Builder {
	return b.append(KindElement, value)
}

// ID adds an id fragment.
func (b *Builder) ID(value string) *Builder {
	return b.append(KindID, value)
}

// Class adds a class fragment. Classes may repeat.
func (b *Builder) Class(value string) *Builder {
	return b.append(KindClass, value)
}

// Attribute adds an attribute fragment. Attributes may repeat.
func (b *Builder) Attribute(value string) *Builder {
	return b.append(KindAttribute, value)
}

// PseudoClass adds a pseudo-class fragment. Pseudo-classes may repeat.
func (b *Builder) PseudoClass(value string) *Builder {
	return b.append(KindPseudoClass, value)
}

// PseudoElement adds a pseudo-element fragment.
func (b *Builder) PseudoElement(value string) *Builder {
	return b.append(KindPseudoElement, value)
}

// Err returns the first validation error recorded on the builder, if any.
func (b *Builder) Err() error {
	return b.err
}

// Fragments returns a copy of the accumulated fragment sequence.
func (b *Builder) Fragments() []Fragment {
	out := make([]Fragment, len(b.frags))
	copy(out, b.frags)
	return out
}

func (b *Builder) append(kind Kind, value string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkAppend(kind); err != nil {
		b.err = err
		return b
	}
	switch kind {
	case KindElement:
		b.hasElement = true
	case KindID:
		b.hasID = true
	case KindPseudoElement:
		b.hasPseudoElement = true
	}
	b.frags = append(b.frags, Fragment{Kind: kind, Text: value})
	return b
}

// appendCombinator starts a new selector group. Only the parser uses this
// path - public callers join groups through Combine.
func (b *Builder) appendCombinator(token string) *Builder {
	if b.err != nil {
		return b
	}
	b.frags = append(b.frags, Fragment{Kind: KindCombinator, Text: token})
	b.hasElement = false
	b.hasID = false
	b.hasPseudoElement = false
	return b
}
