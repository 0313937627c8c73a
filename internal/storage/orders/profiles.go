package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
	"github.com/feastline/orderd/internal/domain/model"
	"github.com/feastline/orderd/internal/storage/kv"
)

func profileKey(userID string) string { return "profile:" + userID }

// ProfileRepository stores delivery profiles in the same key-value store as
// orders, one record per user.
type ProfileRepository struct {
	store  kv.Store
	logger *slog.Logger
}

// NewProfileRepository builds a ProfileRepository over the given store.
func NewProfileRepository(store kv.Store, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{store: store, logger: logger}
}

// Save overwrites the user's profile.
func (r *ProfileRepository) Save(ctx context.Context, profile *model.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", profile.UserID, err)
	}
	if err := r.store.Set(ctx, profileKey(profile.UserID), payload); err != nil {
		return fmt.Errorf("store profile %s: %w: %w", profile.UserID, domainErrors.ErrPersistence, err)
	}
	return nil
}

// Get fetches the user's profile.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*model.Profile, error) {
	data, err := r.store.Get(ctx, profileKey(userID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("load profile %s: %w: %w", userID, domainErrors.ErrPersistence, err)
	}
	var profile model.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w: %w", userID, domainErrors.ErrPersistence, err)
	}
	return &profile, nil
}
