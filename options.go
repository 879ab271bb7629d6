package postprocessing

// Option configures a BlurConfig during creation.
//
// Example:
//
//	// Defaults: kernel size 5, bilateral off
//	cfg := postprocessing.NewBlurConfig()
//
//	// Edge-preserving 3x3 blur
//	cfg := postprocessing.NewBlurConfig(
//		postprocessing.WithKernelSize(3),
//		postprocessing.WithBilateral(true),
//	)
type Option func(*BlurConfig)

// WithKernelSize sets the initial kernel size. The size must be odd; an even
// value is rejected just as with [BlurConfig.SetKernelSize], in which case
// the default of 5 is kept and a warning is logged. Use SetKernelSize
// directly when the validation error must be observed.
func WithKernelSize(size int) Option {
	return func(c *BlurConfig) {
		if k, err := newKernel(size); err == nil {
			c.kernel = k
		} else {
			Logger().Warn("kernel size option ignored", "size", size)
		}
	}
}

// WithBilateral enables or disables bilateral (edge-preserving) filtering.
func WithBilateral(enabled bool) Option {
	return func(c *BlurConfig) {
		c.bilateral = enabled
	}
}
