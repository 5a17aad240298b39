package bootstrap

import (
	"elite-drive/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires configuration, the store and the use cases. CLI commands that
// do not serve HTTP start from here.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// ServerModule adds the HTTP handlers and the schedule refresher.
var ServerModule = fx.Options(
	Module,
	SchedulerModule,
	components.HandlerModule,
)
