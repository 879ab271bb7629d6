package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/Tech-Intent/postprocessing"
)

// BlurPass couples a blur configuration to its GPU pipeline and implements
// the recompilation contract the configuration documents: before each draw,
// Prepare observes the recompile flag, rebuilds the program if needed,
// clears the flag, and uploads the per-frame uniforms.
//
// The pass owns the configuration and the pipeline; texture contents and
// render targets stay with the surrounding render graph.
type BlurPass struct {
	config   *postprocessing.BlurConfig
	pipeline *BlurPipeline
}

// NewBlurPass creates a blur pass on the given device and queue, rendering
// into targets of the given format. Options configure the initial blur
// state exactly as with [postprocessing.NewBlurConfig].
func NewBlurPass(device hal.Device, queue hal.Queue, format gputypes.TextureFormat, opts ...postprocessing.Option) *BlurPass {
	return &BlurPass{
		config:   postprocessing.NewBlurConfig(opts...),
		pipeline: NewBlurPipeline(device, queue, format),
	}
}

// Config returns the pass's configuration for the pipeline to mutate as
// scene and viewport state change.
func (p *BlurPass) Config() *postprocessing.BlurConfig { return p.config }

// Pipeline returns the underlying GPU pipeline.
func (p *BlurPass) Pipeline() *BlurPipeline { return p.pipeline }

// Prepare brings the GPU state in sync with the configuration. It must run
// after the frame's configuration changes and before the draw call that
// uses the pass.
//
// If a define-affecting value changed (or the program was never built),
// the program is recompiled from the current define set and the recompile
// flag is cleared only on success, so a failed rebuild is retried next
// frame. The per-frame uniforms are uploaded unconditionally.
func (p *BlurPass) Prepare() error {
	if p.config.NeedsRecompile() {
		defs := p.config.Defines()
		if err := p.pipeline.Rebuild(defs); err != nil {
			return err
		}
		p.config.MarkCompiled()
		postprocessing.Logger().Info("blur program rebuilt",
			"kernel_size", p.config.KernelSize(),
			"bilateral", p.config.Bilateral(),
		)
	}
	p.pipeline.WriteUniforms(p.config.Uniforms())
	return nil
}

// SetSize updates the viewport-derived texel size. Forwarded to the
// configuration; never triggers a rebuild.
func (p *BlurPass) SetSize(width, height int) {
	p.config.SetSize(width, height)
}

// Destroy releases the pass's GPU resources. The configuration stays valid
// (it holds no GPU objects), the pipeline does not.
func (p *BlurPass) Destroy() {
	p.pipeline.Destroy()
}
