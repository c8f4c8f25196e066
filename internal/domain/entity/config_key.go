package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the full dotted path to the config key (e.g., "animation.duration_ms")
	Key string `json:"key"`

	// Type is the Go type name (e.g., "string", "int", "bool")
	Type string `json:"type"`

	Default     string `json:"default"`
	Description string `json:"description"`

	// Values contains valid enum values (for string enums)
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints (e.g., "1-5000")
	Range string `json:"range,omitempty"`

	// Section groups related keys (e.g., "Animation", "Logging")
	Section string `json:"section"`
}
