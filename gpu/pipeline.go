package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/Tech-Intent/postprocessing"
)

// blurUniformSize is the byte size of the blur uniform buffer.
// Layout mirrors BlurUniforms in boxblur.wgsl:
//
//	texel_size (vec2<f32>) =  8 bytes
//	scale      (f32)       =  4 bytes
//	camera_near(f32)       =  4 bytes
//	camera_far (f32)       =  4 bytes
//	padding    (3 x f32)   = 12 bytes
//
// Total = 32 bytes (uniform structs round up to 16-byte multiples).
const blurUniformSize = 32

// BlurPipeline manages the GPU resources of the blur pass: the compiled
// shader module, bind group layout, sampler, uniform buffer, and the render
// pipeline drawing a fullscreen triangle.
//
// The pipeline must be rebuilt whenever the configuration's define set
// changes; [BlurPipeline.Rebuild] tears down the shader and pipeline and
// recreates them from the new program text, keeping layout, sampler, and
// uniform buffer (which are define-independent) alive across rebuilds.
type BlurPipeline struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	programs *ProgramCache

	// Define-independent GPU objects, created once.
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	sampler    hal.Sampler
	uniformBuf hal.Buffer

	// Define-dependent GPU objects, recreated by Rebuild.
	shader   hal.ShaderModule
	pipeline hal.RenderPipeline
}

// NewBlurPipeline creates a blur pipeline rendering into targets of the
// given format. No GPU objects are created until the first Rebuild.
func NewBlurPipeline(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) *BlurPipeline {
	return &BlurPipeline{
		device:   device,
		queue:    queue,
		format:   format,
		programs: NewProgramCache(),
	}
}

// Rebuild compiles the program for the given define set and recreates the
// render pipeline. Shared objects (layout, sampler, uniform buffer) are
// created on first use and reused afterwards.
func (p *BlurPipeline) Rebuild(defs postprocessing.Defines) error {
	source, err := BuildShaderSource(defs)
	if err != nil {
		return err
	}
	words, err := p.programs.GetOrCompile(source)
	if err != nil {
		return err
	}

	if err := p.ensureSharedObjects(); err != nil {
		return err
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "box_blur_shader",
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return fmt.Errorf("create box_blur shader module: %w", err)
	}

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "box_blur_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.device.DestroyShaderModule(shader)
		return fmt.Errorf("create box_blur pipeline: %w", err)
	}

	// Swap in the new program only after both objects exist.
	p.destroyProgramObjects()
	p.shader = shader
	p.pipeline = pipeline
	return nil
}

// ensureSharedObjects creates the define-independent GPU objects on first
// use: bind group layout, pipeline layout, sampler, and uniform buffer.
func (p *BlurPipeline) ensureSharedObjects() error {
	if p.bindLayout != nil {
		return nil
	}

	// Bind group layout:
	//   Binding 0: BlurUniforms (uniform buffer, fragment)
	//   Binding 1: input color texture (fragment)
	//   Binding 2: depth texture (fragment)
	//   Binding 3: normal+depth texture (fragment)
	//   Binding 4: sampler (fragment)
	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "box_blur_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    3,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    4,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create box_blur bind layout: %w", err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "box_blur_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create box_blur pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	// Clamp-to-edge keeps boundary texels from bleeding wrap-around
	// neighbors into the blur window.
	sampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "box_blur_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create box_blur sampler: %w", err)
	}
	p.sampler = sampler

	uniformBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "box_blur_uniforms",
		Size:  blurUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create box_blur uniform buffer: %w", err)
	}
	p.uniformBuf = uniformBuf

	return nil
}

// WriteUniforms uploads a per-frame uniform snapshot to the GPU. Requires a
// prior successful Rebuild (which creates the uniform buffer).
func (p *BlurPipeline) WriteUniforms(u postprocessing.Uniforms) {
	if p.uniformBuf == nil {
		return
	}
	var data [blurUniformSize]byte
	putF32 := func(off int, v float32) {
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(v))
	}
	putF32(0, u.TexelSize[0])
	putF32(4, u.TexelSize[1])
	putF32(8, u.Scale)
	putF32(12, u.CameraNear)
	putF32(16, u.CameraFar)
	p.queue.WriteBuffer(p.uniformBuf, 0, data[:])
}

// Pipeline returns the current render pipeline, or nil before the first
// successful Rebuild.
func (p *BlurPipeline) Pipeline() hal.RenderPipeline { return p.pipeline }

// BindGroupLayout returns the bind group layout the pass's texture bind
// groups must match, or nil before the first successful Rebuild.
func (p *BlurPipeline) BindGroupLayout() hal.BindGroupLayout { return p.bindLayout }

// UniformBuffer returns the uniform buffer bound at binding 0, or nil
// before the first successful Rebuild.
func (p *BlurPipeline) UniformBuffer() hal.Buffer { return p.uniformBuf }

// Sampler returns the shared sampler bound at binding 4, or nil before the
// first successful Rebuild.
func (p *BlurPipeline) Sampler() hal.Sampler { return p.sampler }

// CacheStats returns the program cache's hit and miss counts.
func (p *BlurPipeline) CacheStats() (hits, misses uint64) { return p.programs.Stats() }

// destroyProgramObjects releases the define-dependent objects.
func (p *BlurPipeline) destroyProgramObjects() {
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// Destroy releases all GPU resources held by the pipeline. Safe to call
// multiple times or on a pipeline that never built anything.
func (p *BlurPipeline) Destroy() {
	p.destroyProgramObjects()
	if p.uniformBuf != nil {
		p.device.DestroyBuffer(p.uniformBuf)
		p.uniformBuf = nil
	}
	if p.sampler != nil {
		p.device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
}
