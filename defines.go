package postprocessing

import (
	"strconv"
	"strings"
)

// Formatting precision for float-valued defines. The inverse kernel weight
// needs six decimal digits to keep the unrolled sampling paths exact; the
// bilateral threshold is written with twelve because it crosses the depth
// encoding's non-linearity before the GPU ever rounds it.
const (
	inverseKernelDigits     = 6
	distanceThresholdDigits = 12
)

// Define is one compile-time constant of the blur program, rendered into the
// generated program text as a typed WGSL const declaration.
type Define struct {
	// Name is the constant identifier referenced by the program body.
	Name string

	// Type is the WGSL type of the constant (i32, f32, bool).
	Type string

	// Value is the literal written into the program text.
	Value string
}

// Defines is the ordered compile-time constant set of the blur program.
// The order is fixed, so equal configurations render byte-identical headers
// and the generated text can be hashed or diffed directly.
type Defines []Define

// WGSLHeader renders the define set as WGSL const declarations, one per
// line, ready to be prepended to the program body.
func (ds Defines) WGSLHeader() string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString("const ")
		b.WriteString(d.Name)
		b.WriteString(": ")
		b.WriteString(d.Type)
		b.WriteString(" = ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	return b.String()
}

// Get returns the value of the named define and whether it is present.
func (ds Defines) Get(name string) (string, bool) {
	for _, d := range ds {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// Defines derives the compile-time constant set of the blur program from
// the current configuration. It is a pure mapping: calling it does not
// change the config, and equal configurations produce equal define sets in
// the same order. Anything in this set changing is exactly what
// [BlurConfig.NeedsRecompile] signals.
func (c *BlurConfig) Defines() Defines {
	return Defines{
		{"KERNEL_SIZE", "i32", strconv.Itoa(c.kernel.Size)},
		{"KERNEL_SIZE_HALF", "i32", strconv.Itoa(c.kernel.Half)},
		{"KERNEL_SIZE_SQ", "i32", strconv.Itoa(c.kernel.Squared)},
		{"KERNEL_SIZE_SQ_HALF", "i32", strconv.Itoa(c.kernel.SquaredHalf)},
		{"INV_KERNEL_SIZE_SQ", "f32", strconv.FormatFloat(c.kernel.InverseSquared, 'f', inverseKernelDigits, 64)},
		{"BILATERAL", "bool", strconv.FormatBool(c.bilateral)},
		{"DISTANCE_THRESHOLD", "f32", strconv.FormatFloat(c.distanceThresholdEncoded, 'f', distanceThresholdDigits, 64)},
		{"DEPTH_PACKING", "i32", strconv.Itoa(int(c.depthPacking))},
		{"MAX_VARYING_VECTORS", "i32", strconv.Itoa(c.maxVaryingVectors)},
		{"PERSPECTIVE_CAMERA", "bool", strconv.FormatBool(c.isPerspective)},
		{"USE_NORMAL_DEPTH", "bool", strconv.FormatBool(c.usesNormalDepth)},
	}
}
