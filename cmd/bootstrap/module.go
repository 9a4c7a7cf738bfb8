package bootstrap

import (
	"apprien-go-sdk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the pricing client used by the connection tester.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	components.PricingModule,
	components.UseCaseModule,
)

// StubModule wires the local stub of the pricing API.
var StubModule = fx.Options(
	StubConfigModule,
	StubLoggerModule,
	MetricsModule,
	JWTModule,
	components.PersistenceModule,
	components.StubUseCaseModule,
	components.HandlerModule,
)
