package postprocessing

import (
	"github.com/Tech-Intent/postprocessing/depth"
)

// BlurConfig holds the full parameter state of the depth-aware box blur
// pass: the validated kernel with its derived constants, the bilateral
// threshold (kept internally in encoded-depth space), the mirrored camera
// planes, the borrowed texture bindings, and the per-frame uniform inputs.
//
// Compile-time state and per-frame state are kept strictly apart. Every
// setter that changes the generated program text routes through invalidate
// and flips the recompile flag; setters that only feed numbers into an
// already-compiled program ([BlurConfig.SetScale], [BlurConfig.SetSize])
// never do. The owning pipeline observes [BlurConfig.NeedsRecompile] before
// each draw and calls [BlurConfig.MarkCompiled] after rebuilding the
// program; the config only exposes the flag, it does not enforce the
// ordering.
//
// A BlurConfig is not safe for concurrent use. It is a value mutated in
// place by exactly one pipeline stage for the life of the effect.
type BlurConfig struct {
	kernel Kernel

	bilateral bool

	// distanceThresholdEncoded is the bilateral cutoff in encoded-depth
	// space. It is written into the program as a compile-time constant, so
	// it is kept at full float64 precision; small errors here compound
	// across the encoding's non-linearity.
	distanceThresholdEncoded float64

	depthPacking      DepthPacking
	maxVaryingVectors int

	near, far     float64
	isPerspective bool

	input       TextureID
	depthBuf    TextureID
	normalDepth TextureID

	// usesNormalDepth records that a combined normal+depth texture is bound
	// and its depth channel takes precedence over the plain depth texture.
	// The depth texture binding itself is left untouched.
	usesNormalDepth bool

	scale     float32
	texelSize [2]float32

	dirty bool
}

// Blur configuration defaults.
const (
	// DefaultKernelSize is the kernel edge length used when no option
	// overrides it.
	DefaultKernelSize = 5

	// DefaultMaxVaryingVectors mirrors the minimum varying-vector budget
	// guaranteed by the GPU capability baseline.
	DefaultMaxVaryingVectors = 8
)

// NewBlurConfig creates a blur configuration with the given options.
// Defaults: kernel size 5, bilateral filtering off, max varying vectors 8,
// scale 1.0, unpacked float depth, no textures bound, camera planes zero
// until [BlurConfig.SyncCamera] runs.
//
// A new config reports NeedsRecompile() == true: the program has never been
// compiled, so the first Prepare of the owning pass must build it.
func NewBlurConfig(opts ...Option) *BlurConfig {
	c := &BlurConfig{
		maxVaryingVectors: DefaultMaxVaryingVectors,
		depthPacking:      DepthPackingNone,
		scale:             1.0,
		dirty:             true,
	}
	c.kernel, _ = newKernel(DefaultKernelSize)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// invalidate marks the configuration dirty after a define-affecting change.
// Every mutator that alters the generated program text funnels through here
// so dirty transitions stay auditable from one place.
func (c *BlurConfig) invalidate(field string) {
	c.dirty = true
	Logger().Debug("blur program invalidated", "field", field)
}

// NeedsRecompile reports whether a define-affecting value changed since the
// last [BlurConfig.MarkCompiled]. The pipeline must recompile the program
// before the next draw that uses this configuration.
func (c *BlurConfig) NeedsRecompile() bool { return c.dirty }

// MarkCompiled clears the recompile flag. Called by the owning pipeline
// after it has rebuilt the program from the current [BlurConfig.Defines].
func (c *BlurConfig) MarkCompiled() { c.dirty = false }

// SetKernelSize validates and stores a new kernel size, recomputing all
// derived constants atomically. Even values are rejected with a
// *ValidationError and the previous kernel is kept unchanged.
func (c *BlurConfig) SetKernelSize(size int) error {
	k, err := newKernel(size)
	if err != nil {
		Logger().Warn("kernel size rejected", "size", size)
		return err
	}
	c.kernel = k
	c.invalidate("kernel size")
	return nil
}

// KernelSize returns the current kernel edge length.
func (c *BlurConfig) KernelSize() int { return c.kernel.Size }

// Kernel returns the current kernel with its derived constants.
func (c *BlurConfig) Kernel() Kernel { return c.kernel }

// SetBilateral toggles bilateral (edge-preserving) filtering.
func (c *BlurConfig) SetBilateral(enabled bool) {
	c.bilateral = enabled
	c.invalidate("bilateral")
}

// Bilateral reports whether bilateral filtering is enabled.
func (c *BlurConfig) Bilateral() bool { return c.bilateral }

// SetWorldDistanceThreshold sets the bilateral edge-stopping distance in
// world units. The value is converted to encoded-depth space through the
// depth codec using the synced camera planes and stored in that form.
//
// The conversion is undefined until [BlurConfig.SyncCamera] has run: with
// near and far both zero the encoding degenerates. Sync the camera first.
func (c *BlurConfig) SetWorldDistanceThreshold(worldUnits float64) {
	// View-space depth is negative in front of the camera; world distances
	// are positive magnitudes, hence the sign flip.
	c.distanceThresholdEncoded = depth.ViewZToOrthographic(-worldUnits, c.near, c.far)
	c.invalidate("distance threshold")
}

// WorldDistanceThreshold returns the bilateral edge-stopping distance in
// world units, decoded from the internally stored encoded-depth value.
func (c *BlurConfig) WorldDistanceThreshold() float64 {
	return -depth.OrthographicToViewZ(c.distanceThresholdEncoded, c.near, c.far)
}

// SetDepthPacking stores the depth packing strategy identifier passed
// through to the program. The identifier range is not validated here; an
// unsupported value surfaces at program compile time.
func (c *BlurConfig) SetDepthPacking(p DepthPacking) {
	c.depthPacking = p
	c.invalidate("depth packing")
}

// DepthPacking returns the current depth packing strategy.
func (c *BlurConfig) DepthPacking() DepthPacking { return c.depthPacking }

// SetMaxVaryingVectors stores the varying-vector budget mirrored from the
// renderer's GPU capability limits.
func (c *BlurConfig) SetMaxVaryingVectors(n int) {
	c.maxVaryingVectors = n
	c.invalidate("max varying vectors")
}

// MaxVaryingVectors returns the mirrored varying-vector budget.
func (c *BlurConfig) MaxVaryingVectors() int { return c.maxVaryingVectors }

// SyncCamera copies the camera's clipping planes and projection kind into
// the configuration. A nil camera is a no-op, not an error; this allows
// deferred configuration before the pipeline has a camera.
func (c *BlurConfig) SyncCamera(cam *CameraState) {
	if cam == nil {
		return
	}
	c.near = cam.Near
	c.far = cam.Far
	c.isPerspective = cam.Projection == ProjectionPerspective
	c.invalidate("camera")
}

// CameraNearFar returns the synced near and far plane distances.
// Both are zero until SyncCamera has run.
func (c *BlurConfig) CameraNearFar() (near, far float64) { return c.near, c.far }

// IsPerspective reports whether the synced camera uses a perspective
// projection.
func (c *BlurConfig) IsPerspective() bool { return c.isPerspective }

// SetInputBuffer binds the color texture the blur reads from.
// The handle is borrowed; contents and format are the pipeline's
// responsibility. Binding changes are uniform-level and do not require
// recompilation.
func (c *BlurConfig) SetInputBuffer(id TextureID) { c.input = id }

// SetDepthBuffer binds the plain depth texture. InvalidTexture clears the
// binding.
func (c *BlurConfig) SetDepthBuffer(id TextureID) { c.depthBuf = id }

// SetNormalDepthBuffer binds a combined normal+depth texture. When bound,
// its depth channel takes precedence over the plain depth texture; the
// precedence is encoded as a compile-time flag, so this setter marks the
// config dirty. InvalidTexture clears the binding and the flag.
func (c *BlurConfig) SetNormalDepthBuffer(id TextureID) {
	c.normalDepth = id
	c.usesNormalDepth = id.Valid()
	c.invalidate("normal-depth buffer")
}

// UsesNormalDepthBuffer reports whether a combined normal+depth texture is
// bound and being used as the depth source.
func (c *BlurConfig) UsesNormalDepthBuffer() bool { return c.usesNormalDepth }

// SetScale sets the blur strength multiplier. Scale is a per-frame uniform
// and never forces recompilation.
func (c *BlurConfig) SetScale(scale float32) { c.scale = scale }

// Scale returns the blur strength multiplier.
func (c *BlurConfig) Scale() float32 { return c.scale }

// SetSize recomputes the texel size from the viewport dimensions.
// Texel size is a per-frame uniform, not a compile-time define, so resizing
// never forces recompilation. Non-positive dimensions are ignored.
func (c *BlurConfig) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.texelSize[0] = 1 / float32(width)
	c.texelSize[1] = 1 / float32(height)
}

// TexelSize returns the reciprocal viewport dimensions last set by
// [BlurConfig.SetSize].
func (c *BlurConfig) TexelSize() (x, y float32) {
	return c.texelSize[0], c.texelSize[1]
}
