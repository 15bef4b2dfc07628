package types

import "github.com/go-playground/validator/v10"

// MaxBatchDocuments caps the number of documents in one batch request.
const MaxBatchDocuments = 100

// ContentRequest carries content for suggest and analyze.
// Content may be empty; empty content has a defined result.
type ContentRequest struct {
	Content string `json:"content" validate:"max=1000000"`
	Title   string `json:"title,omitempty" validate:"max=1000"`
}

// ValidateRequest asks whether content fits a format.
type ValidateRequest struct {
	Content string `json:"content" validate:"max=1000000"`
	Format  string `json:"format" validate:"required,max=64"`
	Title   string `json:"title,omitempty" validate:"max=1000"`
}

// Document is one entry of a batch. Format is the format the post currently
// has; when set, the result reports whether the suggestion disagrees.
type Document struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty" validate:"max=200"`
	Content string `json:"content" yaml:"content" validate:"max=1000000"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty" validate:"max=1000"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty" validate:"max=64"`
}

// BatchRequest is a set of documents to analyze together.
type BatchRequest struct {
	Documents []Document `json:"documents" validate:"required,min=1,max=100,dive"`
}

// BatchItem pairs a document ID with its suggestion.
type BatchItem struct {
	ID            string      `json:"id" yaml:"id"`
	Suggestion    *Suggestion `json:"suggestion" yaml:"suggestion"`
	CurrentFormat string      `json:"current_format,omitempty" yaml:"current_format,omitempty"`
	Mismatch      bool        `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
}

// FormatScan counts documents whose current format differs from the suggestion.
// Only documents with a current format are scanned.
type FormatScan struct {
	Scanned       int      `json:"scanned" yaml:"scanned"`
	Correct       int      `json:"correct" yaml:"correct"`
	MismatchCount int      `json:"mismatch_count" yaml:"mismatch_count"`
	Mismatches    []string `json:"mismatches" yaml:"mismatches"`
}

// BatchResponse holds batch results in request order.
type BatchResponse struct {
	Results []BatchItem `json:"results" yaml:"results"`
	Scan    *FormatScan `json:"scan,omitempty" yaml:"scan,omitempty"`
}

// Validate validates the ContentRequest using the validator.
func (r *ContentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ValidateRequest using the validator.
func (r *ValidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchRequest using the validator.
func (r *BatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
