package selgen

import (
	"fmt"
	"strings"
)

// rank orders selector fragment kinds. Appends must produce a non-decreasing
// rank sequence: element, id, class, attribute, pseudo-class, pseudo-element.
type rank int

const (
	rankElement rank = iota + 1
	rankID
	rankClass
	rankAttribute
	rankPseudoClass
	rankPseudoElement
)

var rankNames = map[rank]string{
	rankElement:       "element",
	rankID:            "id",
	rankClass:         "class",
	rankAttribute:     "attribute",
	rankPseudoClass:   "pseudo-class",
	rankPseudoElement: "pseudo-element",
}

func (r rank) String() string {
	return rankNames[r]
}

// Builder accumulates CSS selector fragments in append order and validates
// the canonical fragment order as it goes. The zero value is ready to use;
// the package-level factory functions are the usual entry point.
//
// Appends record the first violation and become no-ops afterwards, so a
// chain can be written without per-call error checks and inspected once via
// Build or Err. String stays a pure read of whatever was recorded before the
// violation.
//
// A Builder is not safe for concurrent mutation; build each selector on its
// own instance.
type Builder struct {
	fragments []string
	ranks     []rank

	seenElement       bool
	seenID            bool
	seenPseudoElement bool

	err error
}

// Element appends a type selector fragment, written verbatim. At most one
// element may appear per selector.
func (b *Builder) Element(v string) *Builder {
	if b.err != nil {
		return b
	}
	if b.seenElement {
		b.err = fmt.Errorf("element %q: %w", v, ErrDuplicateFragment)
		return b
	}
	if err := b.checkOrder(rankElement, v); err != nil {
		b.err = err
		return b
	}
	b.record(rankElement, v)
	b.seenElement = true
	return b
}

// ID appends an id fragment, prefixed with "#". At most one id may appear
// per selector.
func (b *Builder) ID(v string) *Builder {
	if b.err != nil {
		return b
	}
	if b.seenID {
		b.err = fmt.Errorf("id %q: %w", v, ErrDuplicateFragment)
		return b
	}
	if err := b.checkOrder(rankID, v); err != nil {
		b.err = err
		return b
	}
	b.record(rankID, "#"+v)
	b.seenID = true
	return b
}

// Class appends a class fragment, prefixed with ".". Classes may repeat.
func (b *Builder) Class(v string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkOrder(rankClass, v); err != nil {
		b.err = err
		return b
	}
	b.record(rankClass, "."+v)
	return b
}

// Attr appends an attribute fragment, wrapped in brackets. The attribute
// text is not interpreted; `href$=".png"` becomes `[href$=".png"]`.
// Attributes may repeat.
func (b *Builder) Attr(v string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkOrder(rankAttribute, v); err != nil {
		b.err = err
		return b
	}
	b.record(rankAttribute, "["+v+"]")
	return b
}

// PseudoClass appends a pseudo-class fragment, prefixed with ":".
// Pseudo-classes may repeat.
func (b *Builder) PseudoClass(v string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.checkOrder(rankPseudoClass, v); err != nil {
		b.err = err
		return b
	}
	b.record(rankPseudoClass, ":"+v)
	return b
}

// PseudoElement appends a pseudo-element fragment, prefixed with "::". At
// most one pseudo-element may appear per selector.
func (b *Builder) PseudoElement(v string) *Builder {
	if b.err != nil {
		return b
	}
	if b.seenPseudoElement {
		b.err = fmt.Errorf("pseudo-element %q: %w", v, ErrDuplicateFragment)
		return b
	}
	if err := b.checkOrder(rankPseudoElement, v); err != nil {
		b.err = err
		return b
	}
	b.record(rankPseudoElement, "::"+v)
	b.seenPseudoElement = true
	return b
}

// Combine replaces the accumulated fragments with the rendered forms of two
// selectors joined by combinator, as "left <combinator> right". The
// combinator text is not interpreted. Singleton flags and recorded ranks are
// left untouched, so fragment appends after Combine are still checked
// against the pre-combine state.
//
// If left or right carries a recorded violation, the receiver adopts the
// first one and the fragments stay unchanged.
func (b *Builder) Combine(left *Builder, combinator string, right *Builder) *Builder {
	if b.err != nil {
		return b
	}
	if err := left.Err(); err != nil {
		b.err = err
		return b
	}
	if err := right.Err(); err != nil {
		b.err = err
		return b
	}
	b.fragments = []string{left.String(), " " + combinator + " ", right.String()}
	return b
}

// checkOrder rejects an append whose rank precedes the most recently
// recorded one. Equal ranks pass, so repeatable kinds chain freely.
func (b *Builder) checkOrder(r rank, v string) error {
	if n := len(b.ranks); n > 0 {
		if last := b.ranks[n-1]; last > r {
			return fmt.Errorf("%s %q after %s: %w", r, v, last, ErrOutOfOrder)
		}
	}
	return nil
}

func (b *Builder) record(r rank, fragment string) {
	b.fragments = append(b.fragments, fragment)
	b.ranks = append(b.ranks, r)
}

// String concatenates the recorded fragments without separators. It is a
// pure read and may be called repeatedly.
func (b *Builder) String() string {
	return strings.Join(b.fragments, "")
}

// Build returns the finished selector, or the first violation recorded
// during the chain. On error the selector text is empty.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}

// Err returns the first violation recorded by the chain, or nil.
func (b *Builder) Err() error {
	return b.err
}
