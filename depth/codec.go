// Package depth converts between linear view-space depth and the normalized
// encoded depth stored in depth textures.
//
// View-space depth (viewZ) is the linear distance from the camera along its
// viewing axis, negative in front of the camera. Encoded depth is the
// normalized [0,1] value a depth texture holds, whose analytic relation to
// viewZ depends on the camera's projection.
//
// Both conversion pairs are pure functions of their three scalar inputs,
// strictly monotonic in viewZ over (-far, -near), and exact inverses of each
// other up to floating-point rounding:
//
//	ViewZToOrthographic(OrthographicToViewZ(d, n, f), n, f) == d
//	ViewZToPerspective(PerspectiveToViewZ(d, n, f), n, f)   == d
//
// The orthographic pair is a linear rescale of viewZ into [0,1]; the
// perspective pair is the hyperbolic mapping produced by a standard
// perspective projection matrix. Both require near < far; with near and far
// equal (in particular both zero, before a camera has been synced) the
// mappings degenerate and results are undefined.
package depth

// OrthographicToViewZ converts an orthographically encoded depth sample to
// linear view-space depth. Encoded 0 maps to -near, encoded 1 to -far.
func OrthographicToViewZ(encoded, near, far float64) float64 {
	return encoded*(near-far) - near
}

// ViewZToOrthographic converts linear view-space depth to an orthographically
// encoded depth value. Inverse of OrthographicToViewZ.
func ViewZToOrthographic(viewZ, near, far float64) float64 {
	return (viewZ + near) / (near - far)
}

// PerspectiveToViewZ converts a perspectively encoded depth sample to linear
// view-space depth. Encoded 0 maps to -near, encoded 1 to -far, with the
// hyperbolic distribution of precision a perspective projection produces.
func PerspectiveToViewZ(encoded, near, far float64) float64 {
	return (near * far) / ((far-near)*encoded - far)
}

// ViewZToPerspective converts linear view-space depth to a perspectively
// encoded depth value. Inverse of PerspectiveToViewZ.
func ViewZToPerspective(viewZ, near, far float64) float64 {
	return ((near + viewZ) * far) / ((far - near) * viewZ)
}
