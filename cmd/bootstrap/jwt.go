package bootstrap

import (
	"apprien-go-sdk/internal/pkg/config"
	"apprien-go-sdk/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.StubConfig) *jwt.Service {
	return jwt.NewService(cfg.JWTSecret, cfg.JWTDuration)
}
