package postprocessing

// ProjectionKind discriminates between the two camera projection models.
// The depth-encoding formulas differ in form between perspective and
// orthographic cameras, so the blur program must be told which branch to
// compile.
type ProjectionKind uint8

// Projection kinds.
const (
	// ProjectionOrthographic is a parallel projection (no perspective
	// divide); encoded depth is linear in view-space depth.
	ProjectionOrthographic ProjectionKind = iota

	// ProjectionPerspective is a standard perspective projection; encoded
	// depth is hyperbolic in view-space depth.
	ProjectionPerspective
)

// String returns a human-readable name for the projection kind.
func (k ProjectionKind) String() string {
	switch k {
	case ProjectionOrthographic:
		return "Orthographic"
	case ProjectionPerspective:
		return "Perspective"
	default:
		return "Unknown"
	}
}

// CameraState is the slice of camera state the blur configuration mirrors.
// It is a plain value copied by [BlurConfig.SyncCamera]; the configurator
// never holds a reference to the pipeline's camera object.
type CameraState struct {
	// Near is the near clipping plane distance.
	Near float64

	// Far is the far clipping plane distance.
	Far float64

	// Projection selects the depth-encoding branch the program compiles.
	Projection ProjectionKind
}
