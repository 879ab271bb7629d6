package postprocessing

import (
	"errors"
	"math"
	"testing"
)

func TestNewBlurConfigDefaults(t *testing.T) {
	cfg := NewBlurConfig()

	if got := cfg.KernelSize(); got != 5 {
		t.Errorf("KernelSize() = %d, want 5", got)
	}
	if cfg.Bilateral() {
		t.Error("Bilateral() = true, want false")
	}
	if got := cfg.MaxVaryingVectors(); got != 8 {
		t.Errorf("MaxVaryingVectors() = %d, want 8", got)
	}
	if got := cfg.Scale(); got != 1.0 {
		t.Errorf("Scale() = %v, want 1.0", got)
	}
	if got := cfg.DepthPacking(); got != DepthPackingNone {
		t.Errorf("DepthPacking() = %v, want None", got)
	}
	if cfg.IsPerspective() {
		t.Error("IsPerspective() = true before camera sync")
	}
	near, far := cfg.CameraNearFar()
	if near != 0 || far != 0 {
		t.Errorf("CameraNearFar() = (%v, %v), want (0, 0)", near, far)
	}
	if !cfg.NeedsRecompile() {
		t.Error("a new config must need its first compile")
	}
}

func TestSetKernelSizeRecomputesConstants(t *testing.T) {
	cfg := NewBlurConfig()

	if err := cfg.SetKernelSize(3); err != nil {
		t.Fatalf("SetKernelSize(3) failed: %v", err)
	}
	k := cfg.Kernel()
	if k.Half != 1 || k.Squared != 9 || k.SquaredHalf != 4 {
		t.Errorf("derived constants = (%d, %d, %d), want (1, 9, 4)", k.Half, k.Squared, k.SquaredHalf)
	}
	if math.Abs(k.InverseSquared-1.0/9) > 1e-6 {
		t.Errorf("InverseSquared = %v, want ~0.111111", k.InverseSquared)
	}
}

func TestSetKernelSizeRejectsEvenWithoutMutation(t *testing.T) {
	cfg := NewBlurConfig()
	if err := cfg.SetKernelSize(3); err != nil {
		t.Fatalf("SetKernelSize(3) failed: %v", err)
	}
	cfg.MarkCompiled()

	err := cfg.SetKernelSize(4)
	if err == nil {
		t.Fatal("SetKernelSize(4) succeeded, want ValidationError")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}

	// Rejection must leave all prior state untouched, including the flag.
	if got := cfg.KernelSize(); got != 3 {
		t.Errorf("KernelSize() after rejection = %d, want 3", got)
	}
	if cfg.Kernel().Squared != 9 {
		t.Errorf("Squared after rejection = %d, want 9", cfg.Kernel().Squared)
	}
	if cfg.NeedsRecompile() {
		t.Error("rejected setter must not mark the config dirty")
	}
}

func TestDirtyMarkingSetters(t *testing.T) {
	handle := TextureID(7)
	cam := &CameraState{Near: 1, Far: 100, Projection: ProjectionPerspective}

	tests := []struct {
		name   string
		mutate func(*BlurConfig)
	}{
		{"SetKernelSize", func(c *BlurConfig) { _ = c.SetKernelSize(7) }},
		{"SetBilateral", func(c *BlurConfig) { c.SetBilateral(true) }},
		{"SetWorldDistanceThreshold", func(c *BlurConfig) { c.SetWorldDistanceThreshold(2) }},
		{"SetDepthPacking", func(c *BlurConfig) { c.SetDepthPacking(DepthPackingRGBA) }},
		{"SetMaxVaryingVectors", func(c *BlurConfig) { c.SetMaxVaryingVectors(16) }},
		{"SetNormalDepthBuffer", func(c *BlurConfig) { c.SetNormalDepthBuffer(handle) }},
		{"SyncCamera", func(c *BlurConfig) { c.SyncCamera(cam) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewBlurConfig()
			cfg.MarkCompiled()
			tt.mutate(cfg)
			if !cfg.NeedsRecompile() {
				t.Errorf("%s did not mark the config for recompilation", tt.name)
			}
		})
	}
}

func TestUniformSettersNeverDirty(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlurConfig)
	}{
		{"SetSize", func(c *BlurConfig) { c.SetSize(1920, 1080) }},
		{"SetScale", func(c *BlurConfig) { c.SetScale(0.5) }},
		{"SetInputBuffer", func(c *BlurConfig) { c.SetInputBuffer(TextureID(3)) }},
		{"SetDepthBuffer", func(c *BlurConfig) { c.SetDepthBuffer(TextureID(4)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewBlurConfig()
			cfg.MarkCompiled()
			tt.mutate(cfg)
			if cfg.NeedsRecompile() {
				t.Errorf("%s must not force recompilation", tt.name)
			}
		})
	}
}

func TestSetSizeTexelSize(t *testing.T) {
	cfg := NewBlurConfig()
	cfg.SetSize(1920, 1080)

	x, y := cfg.TexelSize()
	if math.Abs(float64(x)-1.0/1920) > 1e-9 {
		t.Errorf("texel x = %v, want %v", x, 1.0/1920)
	}
	if math.Abs(float64(y)-1.0/1080) > 1e-9 {
		t.Errorf("texel y = %v, want %v", y, 1.0/1080)
	}

	// Non-positive dimensions are ignored.
	cfg.SetSize(0, -5)
	x2, y2 := cfg.TexelSize()
	if x2 != x || y2 != y {
		t.Error("SetSize with non-positive dimensions changed texel size")
	}
}

func TestSyncCamera(t *testing.T) {
	cfg := NewBlurConfig()

	cfg.SyncCamera(&CameraState{Near: 0.5, Far: 250, Projection: ProjectionPerspective})
	near, far := cfg.CameraNearFar()
	if near != 0.5 || far != 250 {
		t.Errorf("CameraNearFar() = (%v, %v), want (0.5, 250)", near, far)
	}
	if !cfg.IsPerspective() {
		t.Error("IsPerspective() = false after perspective sync")
	}

	cfg.SyncCamera(&CameraState{Near: 1, Far: 10, Projection: ProjectionOrthographic})
	if cfg.IsPerspective() {
		t.Error("IsPerspective() = true after orthographic sync")
	}
}

func TestSyncCameraNilIsNoOp(t *testing.T) {
	cfg := NewBlurConfig()
	cfg.SyncCamera(&CameraState{Near: 2, Far: 20, Projection: ProjectionPerspective})
	cfg.MarkCompiled()

	cfg.SyncCamera(nil)

	near, far := cfg.CameraNearFar()
	if near != 2 || far != 20 {
		t.Errorf("nil sync changed planes to (%v, %v)", near, far)
	}
	if cfg.NeedsRecompile() {
		t.Error("nil sync marked the config dirty")
	}
}

func TestWorldDistanceThresholdRoundTrip(t *testing.T) {
	cfg := NewBlurConfig()
	cfg.SyncCamera(&CameraState{Near: 1, Far: 100, Projection: ProjectionPerspective})

	for _, want := range []float64{0.5, 1, 5, 20, 99} {
		cfg.SetWorldDistanceThreshold(want)
		got := cfg.WorldDistanceThreshold()
		if math.Abs(got-want)/want > 1e-6 {
			t.Errorf("threshold round trip: set %v, got %v", want, got)
		}
	}
}

func TestNormalDepthBufferPrecedenceFlag(t *testing.T) {
	cfg := NewBlurConfig()
	depthTex := TextureID(11)
	combined := TextureID(12)

	cfg.SetDepthBuffer(depthTex)
	if cfg.UsesNormalDepthBuffer() {
		t.Error("plain depth buffer must not set the precedence flag")
	}

	cfg.SetNormalDepthBuffer(combined)
	if !cfg.UsesNormalDepthBuffer() {
		t.Error("UsesNormalDepthBuffer() = false after binding")
	}
	// The plain depth binding is left in place; precedence is a flag.
	if got := cfg.Uniforms().Depth; got != depthTex {
		t.Errorf("depth binding = %v, want %v", got, depthTex)
	}

	cfg.SetNormalDepthBuffer(InvalidTexture)
	if cfg.UsesNormalDepthBuffer() {
		t.Error("UsesNormalDepthBuffer() = true after clearing")
	}
}

func TestUniformsSnapshot(t *testing.T) {
	cfg := NewBlurConfig()
	cfg.SyncCamera(&CameraState{Near: 0.25, Far: 64, Projection: ProjectionOrthographic})
	cfg.SetInputBuffer(TextureID(1))
	cfg.SetDepthBuffer(TextureID(2))
	cfg.SetNormalDepthBuffer(TextureID(3))
	cfg.SetScale(0.75)
	cfg.SetSize(800, 600)

	u := cfg.Uniforms()
	if u.Input != 1 || u.Depth != 2 || u.NormalDepth != 3 {
		t.Errorf("bindings = (%v, %v, %v), want (1, 2, 3)", u.Input, u.Depth, u.NormalDepth)
	}
	if u.Scale != 0.75 {
		t.Errorf("Scale = %v, want 0.75", u.Scale)
	}
	if u.CameraNear != 0.25 || u.CameraFar != 64 {
		t.Errorf("camera planes = (%v, %v), want (0.25, 64)", u.CameraNear, u.CameraFar)
	}
	if u.TexelSize[0] != 1.0/800 || u.TexelSize[1] != 1.0/600 {
		t.Errorf("TexelSize = %v", u.TexelSize)
	}
}

func TestProjectionKindString(t *testing.T) {
	if got := ProjectionPerspective.String(); got != "Perspective" {
		t.Errorf("ProjectionPerspective.String() = %q", got)
	}
	if got := ProjectionOrthographic.String(); got != "Orthographic" {
		t.Errorf("ProjectionOrthographic.String() = %q", got)
	}
}

func TestDepthPackingString(t *testing.T) {
	if got := DepthPackingNone.String(); got != "None" {
		t.Errorf("DepthPackingNone.String() = %q", got)
	}
	if got := DepthPackingRGBA.String(); got != "RGBA" {
		t.Errorf("DepthPackingRGBA.String() = %q", got)
	}
	if got := DepthPacking(9).String(); got != "DepthPacking(9)" {
		t.Errorf("DepthPacking(9).String() = %q", got)
	}
}

func TestTextureIDValid(t *testing.T) {
	if InvalidTexture.Valid() {
		t.Error("InvalidTexture.Valid() = true")
	}
	if !TextureID(1).Valid() {
		t.Error("TextureID(1).Valid() = false")
	}
}
