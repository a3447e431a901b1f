//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Map maps the image at path read-only. The returned release function
// unmaps it; calling it twice is harmless.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, noop, nil
	}
	if size > MaxImage || size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, size)
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: map %s: %w", path, err)
	}
	release := func() error {
		if err := syscall.Munmap(data); err != nil && !errors.Is(err, syscall.EINVAL) {
			return err
		}
		return nil
	}
	return data, release, nil
}
