package selector

// checkAppend decides whether a fragment of the given kind may be added after
// the current sequence. It never mutates anything - the caller appends and
// updates the singleton flags only after a nil return.
//
// Ordering is checked against the last fragment only: every fluent append
// keeps the sequence ordered, so the last fragment carries the whole ordering
// state. A combinator starts a new selector group and resets both checks.
func (b *Builder) checkAppend(kind Kind) error {
	if kind.singleton() {
		var seen bool
		switch kind {
		case KindElement:
			seen = b.hasElement
		case KindID:
			seen = b.hasID
		case KindPseudoElement:
			seen = b.hasPseudoElement
		}
		if seen {
			return ErrDuplicateSingleton
		}
	}

	if len(b.frags) == 0 {
		return nil
	}
	last := b.frags[len(b.frags)-1].Kind
	if last == KindCombinator {
		// fresh group
		return nil
	}

	switch kind {
	case KindElement:
		// element opens a selector, nothing may precede it
		return ErrOrderViolation
	case KindID:
		if last != KindElement {
			return ErrOrderViolation
		}
	case KindClass:
		if last == KindAttribute || last == KindPseudoClass || last == KindPseudoElement {
			return ErrOrderViolation
		}
	case KindAttribute:
		if last == KindPseudoClass || last == KindPseudoElement {
			return ErrOrderViolation
		}
	case KindPseudoClass:
		if last == KindPseudoElement {
			return ErrOrderViolation
		}
	}
	return nil
}
