package sessiontransport

import "errors"

// ErrReadOnly is returned by a header transport built without response headers.
var ErrReadOnly = errors.New("sessiontransport: transport has no response headers")
