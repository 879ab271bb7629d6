// Package postprocessing configures parameterized GPU filter passes for the
// GoGPU ecosystem. The current release covers a single pass: a depth-aware
// box blur with optional bilateral (edge-preserving) filtering.
//
// # Overview
//
// A post-processing pipeline owns GPU textures, schedules draw calls, and
// compiles shader programs. What it needs from this package is the glue in
// between: a [BlurConfig] that translates user-facing options (kernel size,
// bilateral on/off, world-space distance threshold, depth packing) into the
// compile-time constants and per-frame uniforms the blur program consumes,
// and that keeps every derived value consistent whenever an option changes.
//
// # Quick Start
//
//	import "github.com/Tech-Intent/postprocessing"
//
//	cfg := postprocessing.NewBlurConfig(
//		postprocessing.WithKernelSize(3),
//		postprocessing.WithBilateral(true),
//	)
//	cfg.SyncCamera(&postprocessing.CameraState{
//		Near:       0.1,
//		Far:        1000,
//		Projection: postprocessing.ProjectionPerspective,
//	})
//	cfg.SetWorldDistanceThreshold(5) // world units; sync the camera first
//
//	// Per frame:
//	cfg.SetSize(width, height)
//	if cfg.NeedsRecompile() {
//		program := compile(cfg.Defines()) // pipeline-owned
//		cfg.MarkCompiled()
//	}
//	upload(cfg.Uniforms())
//
// # Defines vs. Uniforms
//
// The central performance rule of the package: anything that changes the
// generated program text is a compile-time define and marks the config dirty
// via [BlurConfig.NeedsRecompile]; anything that is just a numeric input to
// an already-compiled program (texel size, blur scale) is a per-frame uniform
// and never forces recompilation. [BlurConfig.Defines] and
// [BlurConfig.Uniforms] expose the two sets separately.
//
// # Architecture
//
// The module is organized into:
//   - Public API: BlurConfig, CameraState, Defines, Uniforms, TextureID
//   - depth: pure view-space <-> encoded depth conversions
//   - gpu: WGSL program assembly, compilation, and pipeline wiring on
//     gogpu/wgpu
//   - software: CPU reference implementation of the configured blur
//
// # Concurrency
//
// A BlurConfig is owned by exactly one pipeline stage at a time. Setters are
// plain synchronous mutations with no internal locking; callers that share a
// config across goroutines must serialize access themselves.
package postprocessing
