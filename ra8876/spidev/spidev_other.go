//go:build !linux

package spidev

// Open reports ErrUnsupported outside Linux.
func Open(path string, opts *Options) (*Bus, error) {
	return nil, ErrUnsupported
}
