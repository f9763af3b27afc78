package usecase

import (
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/auth"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/credential"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	pkgLog "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	creds credential.Store
	gw    *gateway.Gateway
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates the auth UseCase.
func New(l pkgLog.Logger, creds credential.Store, gw *gateway.Gateway) *implUseCase {
	return &implUseCase{
		l:     l,
		creds: creds,
		gw:    gw,
	}
}

func (uc *implUseCase) Authenticated() bool {
	_, err := uc.creds.Get()
	return err == nil
}
