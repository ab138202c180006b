package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Indent pretty-prints the JSON document
	Indent bool

	// IncludeWarnings adds the recovered warnings to the JSON document
	IncludeWarnings bool

	// IncludeTags adds the raw tag pairs to the JSON document
	IncludeTags bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Indent:      true,
		IncludeTags: true,
	}
}
