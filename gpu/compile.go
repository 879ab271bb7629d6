package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// CompileToSPIRV compiles WGSL program text to SPIR-V words.
// naga validates the program as part of compilation, so an inconsistent
// define set (for example an out-of-range depth packing identifier) is
// rejected here rather than at draw time.
func CompileToSPIRV(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile blur program: %w", err)
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
