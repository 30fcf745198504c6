package selgen

// Factory functions start a fresh Builder per call, so chains never share
// state and no instance management is needed at call sites:
//
//	selgen.Element("div").ID("main").Class("wide").String()

// Element starts a selector with a type fragment.
func Element(v string) *Builder {
	return new(Builder).Element(v)
}

// ID starts a selector with an id fragment.
func ID(v string) *Builder {
	return new(Builder).ID(v)
}

// Class starts a selector with a class fragment.
func Class(v string) *Builder {
	return new(Builder).Class(v)
}

// Attr starts a selector with an attribute fragment.
func Attr(v string) *Builder {
	return new(Builder).Attr(v)
}

// PseudoClass starts a selector with a pseudo-class fragment.
func PseudoClass(v string) *Builder {
	return new(Builder).PseudoClass(v)
}

// PseudoElement starts a selector with a pseudo-element fragment.
func PseudoElement(v string) *Builder {
	return new(Builder).PseudoElement(v)
}

// Combine joins two built selectors with a combinator on a fresh Builder.
// Combined selectors nest: the result of one Combine can be the left or
// right side of another.
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	return new(Builder).Combine(left, combinator, right)
}
