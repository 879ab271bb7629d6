package postprocessing

// ValidationError reports a configuration value that was rejected before any
// state changed. Setters that return a ValidationError leave the config
// exactly as it was.
//
// The only setter that validates is [BlurConfig.SetKernelSize]; every other
// setter accepts its full documented input domain.
type ValidationError struct {
	// Field names the rejected configuration field.
	Field string

	// Reason describes why the value was rejected.
	Reason string
}

func (e *ValidationError) Error() string {
	return "postprocessing: invalid " + e.Field + ": " + e.Reason
}
