package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
	"github.com/feastline/orderd/internal/domain/model"
	"github.com/feastline/orderd/internal/domain/repository"
	pkgAuth "github.com/feastline/orderd/internal/pkg/auth"
)

// ProfileService stores and serves per-user delivery profiles.
type ProfileService struct {
	gate     pkgAuth.Gate
	profiles repository.ProfileRepository
	logger   *slog.Logger

	now func() time.Time
}

// NewProfileService constructs ProfileService.
func NewProfileService(gate pkgAuth.Gate, profiles repository.ProfileRepository, logger *slog.Logger) *ProfileService {
	return &ProfileService{gate: gate, profiles: profiles, logger: logger, now: time.Now}
}

// Save overwrites the caller's profile.
func (s *ProfileService) Save(ctx context.Context, credential, name, phone, address string) (*model.Profile, error) {
	userID, err := s.gate.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		UserID:    userID,
		Name:      name,
		Phone:     phone,
		Address:   address,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get returns the caller's profile. A user who never saved one gets an empty
// profile carrying just their identity.
func (s *ProfileService) Get(ctx context.Context, credential string) (*model.Profile, error) {
	userID, err := s.gate.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.Profile{UserID: userID}, nil
		}
		return nil, err
	}
	return profile, nil
}
