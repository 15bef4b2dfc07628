package formats

import (
	"fmt"
	"strings"
)

// UnknownFormatError is returned when a caller names a format slug that is not registered.
type UnknownFormatError struct {
	Slug string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (expected one of: %s)", e.Slug, strings.Join(slugs, ", "))
}
