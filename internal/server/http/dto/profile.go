package dto

import (
	"time"

	"github.com/feastline/orderd/internal/domain/model"
)

// ProfileRequest is the POST /api/profile payload.
type ProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProfileResponse is the wire representation of a delivery profile.
type ProfileResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// ProfileEnvelope wraps a profile response.
type ProfileEnvelope struct {
	Profile ProfileResponse `json:"profile"`
}

// FromProfile converts a domain profile to its wire representation.
func FromProfile(profile *model.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:    profile.UserID,
		Name:      profile.Name,
		Phone:     profile.Phone,
		Address:   profile.Address,
		UpdatedAt: profile.UpdatedAt,
	}
}
