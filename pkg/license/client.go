package license

import "context"

type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Client checks the installation's license against the remote backend. It is
// queried once at startup; a failed check is logged, never fatal.
type Client interface {
	Check(ctx context.Context) (Result, error)
}
