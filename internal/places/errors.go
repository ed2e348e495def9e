package places

import "errors"

var (
	// ErrUnauthorized means the upstream places API rejected our credentials.
	ErrUnauthorized = errors.New("places API authentication failed")
	// ErrUnavailable means the upstream places API or the network failed.
	ErrUnavailable = errors.New("failed to fetch restaurant data")
)
