package postprocessing

// Uniforms is a snapshot of the per-frame numeric inputs of the blur
// program, together with the texture bindings the pipeline feeds it.
// Nothing in this snapshot affects the generated program text; uploading a
// new snapshot never requires recompilation.
type Uniforms struct {
	// TexelSize is the reciprocal viewport size, (1/width, 1/height).
	TexelSize [2]float32

	// Scale is the blur strength multiplier.
	Scale float32

	// CameraNear and CameraFar mirror the synced clipping planes for
	// programs that decode depth on the fly.
	CameraNear float32
	CameraFar  float32

	// Input is the color texture the blur reads from.
	Input TextureID

	// Depth is the plain depth texture. Ignored by the program when
	// NormalDepth is bound.
	Depth TextureID

	// NormalDepth is the combined normal+depth texture; when valid, its
	// depth channel takes precedence over Depth.
	NormalDepth TextureID
}

// Uniforms returns the current per-frame snapshot. Like
// [BlurConfig.Defines] it is a pure read; unlike defines, successive
// snapshots may differ without the config ever having been dirty.
func (c *BlurConfig) Uniforms() Uniforms {
	return Uniforms{
		TexelSize:   c.texelSize,
		Scale:       c.scale,
		CameraNear:  float32(c.near),
		CameraFar:   float32(c.far),
		Input:       c.input,
		Depth:       c.depthBuf,
		NormalDepth: c.normalDepth,
	}
}
