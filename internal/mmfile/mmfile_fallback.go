//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole image where mmap is unavailable.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.Size() > MaxImage {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}
