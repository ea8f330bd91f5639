package masking

// Masker is the interface for code-based maskers that need awareness
// beyond regex pattern matching (e.g. masking exact environment-provided
// key values regardless of their format).
type Masker interface {
	// Name returns the unique identifier for this masker.
	// Must match an entry in config.GetBuiltinConfig().CodeMaskers.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker
	// should process the data. Should be fast (string contains, not parsing).
	AppliesTo(data string) bool

	// Mask applies masking logic and returns the masked result.
	// Must return the original data unchanged on processing errors.
	Mask(data string) string
}
