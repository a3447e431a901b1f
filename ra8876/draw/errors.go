package draw

import "errors"

// ErrInvalidArgument indicates an unknown kind, a coordinate that does not
// fit its register or radii the shape cannot hold.
var ErrInvalidArgument = errors.New("draw: invalid argument")
