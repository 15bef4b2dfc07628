package ranking

import "fmt"

// WeightTableError represents an invalid or unreadable weight table.
type WeightTableError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WeightTableError) Error() string {
	prefix := "weight table error"
	if e.Path != "" {
		prefix = fmt.Sprintf("weight table error (%s)", e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *WeightTableError) Unwrap() error {
	return e.Cause
}
