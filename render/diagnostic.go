package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Diagnostic writes message wrapped at width, continuation lines indented.
func Diagnostic(w io.Writer, width int, message string) error {
	if width <= 0 {
		width = 80
	}
	lines := strings.Split(wordwrap.WrapString(message, uint(max(width-2, 1))), "\n")
	for i, line := range lines {
		prefix := "  "
		if i == 0 {
			prefix = "- "
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, line); err != nil {
			return err
		}
	}
	return nil
}
