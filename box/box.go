// Package box provides a minimal rectangular dimension value in the CSS box
// model sense. It doubles as the canonical example payload for the codec
// package: its method set survives a JSON round trip.
package box

// Box is a rectangular area with outer dimensions. Values are not validated;
// negative or zero dimensions are the caller's business.
type Box struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// New returns a Box with the given dimensions.
func New(width, height float64) Box {
	return Box{Width: width, Height: height}
}

// Area returns the surface covered by the box.
func (b Box) Area() float64 {
	return b.Width * b.Height
}
