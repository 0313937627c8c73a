package identity

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/feastline/orderd/internal/config"
	pkgAuth "github.com/feastline/orderd/internal/pkg/auth"
)

// Module exposes the identity gate to the fx graph: a remote HTTP gate when a
// provider address is configured, otherwise local JWT verification.
var Module = fx.Provide(newGate)

type gateParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newGate(p gateParams) (pkgAuth.Gate, error) {
	if p.Config.IdentityProviderURL != "" {
		return NewHTTPGate(p.Config.IdentityProviderURL, p.Logger)
	}
	return pkgAuth.NewJWTGate(p.Config.TokenSecret, pkgAuth.Options{}), nil
}
