package domain

// Artifact is a file or data unit consumed or produced by tasks.
// Two artifacts with the same Path are the same entity.
type Artifact struct {
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// String returns the artifact path.
func (a Artifact) String() string {
	return a.Path
}
