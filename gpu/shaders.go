package gpu

import (
	_ "embed"
	"errors"
	"strings"

	"github.com/Tech-Intent/postprocessing"
)

// Embedded WGSL program body, compiled at build time via go:embed.
// The body references the constants generated from the configuration's
// define set; only the concatenation of header and body is a complete
// program.
//
//go:embed shaders/boxblur.wgsl
var boxBlurShaderBody string

// ErrEmptyShaderBody is returned when the embedded program body is missing.
var ErrEmptyShaderBody = errors.New("gpu: box blur shader body is empty")

// BuildShaderSource assembles the complete WGSL program text for a define
// set: the generated const header followed by the embedded body. Equal
// define sets produce byte-identical source, which is what the program
// cache keys on.
func BuildShaderSource(defs postprocessing.Defines) (string, error) {
	if boxBlurShaderBody == "" {
		return "", ErrEmptyShaderBody
	}

	var b strings.Builder
	b.Grow(len(boxBlurShaderBody) + 512)
	b.WriteString("// Generated from the blur configuration. Any change here\n")
	b.WriteString("// means the program had to be recompiled.\n")
	b.WriteString(defs.WGSLHeader())
	b.WriteString("\n")
	b.WriteString(boxBlurShaderBody)
	return b.String(), nil
}
