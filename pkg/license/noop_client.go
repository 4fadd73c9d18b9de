package license

import "context"

type noop struct{}

// NewNoop is used when no license endpoint is configured.
func NewNoop() Client { return noop{} }

func (noop) Check(context.Context) (Result, error) {
	return Result{Valid: true, Message: "license check disabled"}, nil
}
