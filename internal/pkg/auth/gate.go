package auth

import (
	"context"
	"time"
)

// Gate verifies an opaque bearer credential and resolves it to a stable user
// identifier. It is the sole authorization boundary into the order service.
type Gate interface {
	Verify(ctx context.Context, credential string) (string, error)
}

type Options struct {
	TTL time.Duration
}
