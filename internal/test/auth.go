package test

import (
	"context"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
)

// GateStub resolves credentials via a function override or a fixed identity.
type GateStub struct {
	UserID   string
	Err      error
	VerifyFn func(context.Context, string) (string, error)
}

// Verify delegates to the override or returns the configured identity.
func (s GateStub) Verify(ctx context.Context, credential string) (string, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, credential)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if credential == "" {
		return "", domainErrors.ErrAuthenticationFailed
	}
	if s.UserID != "" {
		return s.UserID, nil
	}
	return "user-1", nil
}
