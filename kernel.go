package postprocessing

import "strconv"

// Kernel holds a validated blur kernel size together with the constants
// derived from it. The blur program selects its sampling path (including the
// specialized unrolled paths for sizes 3 and 5) from these constants rather
// than branching at runtime, so they must always be exact and mutually
// consistent. Kernel values are built atomically by newKernel; a Kernel is
// never partially updated.
type Kernel struct {
	// Size is the kernel edge length in texels. Always odd.
	Size int

	// Half is floor(Size/2), the sampling reach on each side of a texel.
	Half int

	// Squared is Size*Size, the total tap count.
	Squared int

	// SquaredHalf is floor(Size*Size/2).
	SquaredHalf int

	// InverseSquared is 1/(Size*Size), the uniform tap weight.
	InverseSquared float64
}

// newKernel validates size and computes the derived constants.
// Even sizes are rejected with a *ValidationError: a box kernel needs a
// center texel, and the program's unrolled paths assume one.
func newKernel(size int) (Kernel, error) {
	if size%2 == 0 {
		return Kernel{}, &ValidationError{
			Field:  "kernel size",
			Reason: strconv.Itoa(size) + " is even, must be odd",
		}
	}
	sq := size * size
	return Kernel{
		Size:           size,
		Half:           size / 2,
		Squared:        sq,
		SquaredHalf:    sq / 2,
		InverseSquared: 1 / float64(sq),
	}, nil
}
