package settings

import (
	"context"
	"strings"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	pkgLog "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

// Service reads and updates the account profile kept by the task backend.
type Service struct {
	l  pkgLog.Logger
	gw *gateway.Gateway
}

func NewService(l pkgLog.Logger, gw *gateway.Gateway) *Service {
	return &Service{l: l, gw: gw}
}

// Profile fetches the current account settings.
func (s *Service) Profile(ctx context.Context) (model.Profile, error) {
	var profile model.Profile
	if err := s.gw.Get(ctx, "/settings", &profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// Update saves the profile. The email identifies the account and cannot be
// blank.
func (s *Service) Update(ctx context.Context, profile model.Profile) (model.Profile, error) {
	if strings.TrimSpace(profile.Email) == "" {
		return model.Profile{}, &gateway.ValidationError{Reason: "profile email cannot be empty"}
	}
	var saved model.Profile
	if err := s.gw.Post(ctx, "/settings", profile, &saved); err != nil {
		return model.Profile{}, err
	}
	s.l.Infof(ctx, "profile updated for %s", saved.Email)
	return saved, nil
}
