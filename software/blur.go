// Package software provides a CPU implementation of the configured
// depth-aware box blur. It mirrors the GPU program texel for texel and
// serves both as a fallback for targets without a GPU device and as the
// reference the configurator's semantics are tested against.
package software

import (
	"errors"
	"math"

	"github.com/Tech-Intent/postprocessing"
	"github.com/Tech-Intent/postprocessing/depth"
)

// Blur errors.
var (
	// ErrInvalidDimensions is returned for non-positive width or height.
	ErrInvalidDimensions = errors.New("software: invalid dimensions")

	// ErrBufferSize is returned when a buffer length does not match the
	// given dimensions.
	ErrBufferSize = errors.New("software: buffer length does not match dimensions")
)

// BoxBlur applies the configured blur to src and writes the result to dst.
//
// src and dst are RGBA float32 buffers of length 4*width*height; they may
// alias only if identical results are not required (the blur reads
// neighbors it may already have written). depthBuf holds encoded depth in
// [0,1], one value per pixel, and is only read when the configuration has
// bilateral filtering enabled; it may be nil otherwise.
//
// Sampling clamps to the image edge, matching the GPU sampler's
// clamp-to-edge addressing. The blur scale stretches the sampling offsets
// exactly as the GPU program stretches its UV offsets.
func BoxBlur(dst, src, depthBuf []float32, width, height int, cfg *postprocessing.BlurConfig) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if len(src) != 4*width*height || len(dst) != 4*width*height {
		return ErrBufferSize
	}

	bilateral := cfg.Bilateral()
	if bilateral && len(depthBuf) != width*height {
		return ErrBufferSize
	}

	k := cfg.Kernel()
	weight := float32(k.InverseSquared)
	scale := float64(cfg.Scale())

	// The GPU program compares encoded depth against the encoded
	// threshold; recover that value through the codec.
	var threshold float32
	if bilateral {
		near, far := cfg.CameraNearFar()
		threshold = float32(depth.ViewZToOrthographic(-cfg.WorldDistanceThreshold(), near, far))
	}

	clampX := func(x int) int {
		if x < 0 {
			return 0
		}
		if x >= width {
			return width - 1
		}
		return x
	}
	clampY := func(y int) int {
		if y < 0 {
			return 0
		}
		if y >= height {
			return height - 1
		}
		return y
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a, total float32
			centerDepth := float32(0)
			if bilateral {
				centerDepth = depthBuf[y*width+x]
			}

			for dy := -k.Half; dy <= k.Half; dy++ {
				sy := clampY(y + int(math.Round(float64(dy)*scale)))
				for dx := -k.Half; dx <= k.Half; dx++ {
					sx := clampX(x + int(math.Round(float64(dx)*scale)))

					w := weight
					if bilateral {
						d := depthBuf[sy*width+sx]
						if abs32(d-centerDepth) > threshold {
							w = 0
						}
					}

					si := (sy*width + sx) * 4
					r += src[si] * w
					g += src[si+1] * w
					b += src[si+2] * w
					a += src[si+3] * w
					total += w
				}
			}

			di := (y*width + x) * 4
			if total > 0 {
				dst[di] = r / total
				dst[di+1] = g / total
				dst[di+2] = b / total
				dst[di+3] = a / total
			} else {
				copy(dst[di:di+4], src[di:di+4])
			}
		}
	}
	return nil
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
