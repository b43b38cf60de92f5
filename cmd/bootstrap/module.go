package bootstrap

import (
	"hotel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	MessagingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	WorkersModule,
)
