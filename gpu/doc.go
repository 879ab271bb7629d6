// Package gpu wires a blur configuration to an actual GPU program on
// gogpu/wgpu.
//
// The package owns the seam the root package treats as external: it
// assembles the program text from [postprocessing.BlurConfig.Defines],
// compiles it to SPIR-V through gogpu/naga, caches compiled programs by
// their generated text, and manages the hal render pipeline and uniform
// buffer. [BlurPass.Prepare] implements the caller-side recompilation
// contract: observe NeedsRecompile, rebuild, MarkCompiled, upload uniforms.
package gpu
