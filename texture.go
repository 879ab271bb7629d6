package postprocessing

// TextureID is an opaque handle to a GPU texture owned by the rendering
// pipeline. The configuration stores handles by value and never creates,
// copies, or releases the underlying resources; ownership and lifetime stay
// with the pipeline.
type TextureID uint64

// InvalidTexture is the zero value, representing an unbound texture slot.
// Passing InvalidTexture to a buffer setter clears the binding; it is a
// valid state, not an error.
const InvalidTexture TextureID = 0

// Valid reports whether the handle refers to a bound texture.
func (id TextureID) Valid() bool { return id != InvalidTexture }
