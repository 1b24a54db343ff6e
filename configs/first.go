package configs

import (
	"errors"
)

// First returns the value at path from the first file defining it, or the zero value.
// Invalid files and undecodable values panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
