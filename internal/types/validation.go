package types

// ValidationResult reports whether content fits a chosen format.
// Messages are hard failures; Warnings are advisory.
type ValidationResult struct {
	Valid    bool           `json:"valid" yaml:"valid"`
	Format   string         `json:"format" yaml:"format"`
	Messages []string       `json:"messages" yaml:"messages"`
	Warnings []string       `json:"warnings" yaml:"warnings"`
	Signals  map[string]any `json:"signals,omitempty" yaml:"signals,omitempty"`
}

// AddError records a hard failure and marks the result invalid.
func (r *ValidationResult) AddError(msg string) {
	r.Valid = false
	r.Messages = append(r.Messages, msg)
}

// AddWarning records an advisory message. Warnings never affect Valid.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
