package internal

import (
	"fmt"
	"io"
	"os"
)

// ReadFile reads the whole file at path, or stdin if path is "-".
func ReadFile(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
