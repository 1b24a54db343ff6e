package logs

import (
	"io"
	"os"
)

// Writer receives terminal logs. Stdout is left for rendered tokens.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
