package repository

import (
	"context"

	"github.com/feastline/orderd/internal/domain/model"
)

// ProfileRepository stores per-user delivery profiles.
type ProfileRepository interface {
	Save(ctx context.Context, profile *model.Profile) error
	Get(ctx context.Context, userID string) (*model.Profile, error)
}
