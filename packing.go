package postprocessing

import "strconv"

// DepthPacking identifies how depth values are packed in the bound depth
// texture. The identifier is passed through to the blur program as a
// compile-time constant; this package does not validate the range, an
// unsupported identifier surfaces as a program compile error.
type DepthPacking int

// Depth packing strategies.
const (
	// DepthPackingNone stores raw linear-encoded depth in a single float
	// channel.
	DepthPackingNone DepthPacking = 0

	// DepthPackingRGBA spreads depth across the four 8-bit channels of an
	// RGBA texture for targets without float texture support.
	DepthPackingRGBA DepthPacking = 1
)

// String returns a human-readable name for the packing strategy.
func (p DepthPacking) String() string {
	switch p {
	case DepthPackingNone:
		return "None"
	case DepthPackingRGBA:
		return "RGBA"
	default:
		return "DepthPacking(" + strconv.Itoa(int(p)) + ")"
	}
}
