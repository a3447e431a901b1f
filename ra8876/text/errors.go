package text

import "errors"

// ErrInvalidArgument indicates an unusable position, scale or charset.
var ErrInvalidArgument = errors.New("text: invalid argument")
