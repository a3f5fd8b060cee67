// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import "fmt"

// FormatError reports an input whose first line is not a level-1 heading.
type FormatError struct {
	// Line is the offending first line.
	Line string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("expected first line to start with a level-1 heading marker %q, got %q", titlePrefix, e.Line)
}
