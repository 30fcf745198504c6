package selgen

import "errors"

// Sentinel errors recorded by Builder append operations. The recorded error
// wraps one of these with the offending fragment, so callers branch with
// errors.Is and still see what triggered the violation.
var (
	// ErrDuplicateFragment is recorded when an element, id or pseudo-element
	// fragment is appended to a selector that already has one.
	ErrDuplicateFragment = errors.New("element, id and pseudo-element may occur at most once inside a selector")

	// ErrOutOfOrder is recorded when a fragment is appended behind a fragment
	// of a later kind. Fragments must follow the order element, id, class,
	// attribute, pseudo-class, pseudo-element.
	ErrOutOfOrder = errors.New("selector parts must follow the order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrRecipesInvalid is returned by Generate when recipe validation found
	// errors and no output file was written. The GenerateResult still carries
	// the vet findings.
	ErrRecipesInvalid = errors.New("selector recipes failed validation")
)
