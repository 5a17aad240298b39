package components

import (
	"elite-drive/internal/infra/readstore"
	"elite-drive/internal/infra/repository"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/usecase/commands"
	"elite-drive/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Car
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CarReadQueries)),
		),
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarReadStore)),
		),
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// TestDrive
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TestDriveReadQueries)),
		),
		fx.Annotate(
			readstore.NewTestDriveReadStore,
			fx.As(new(queries.TestDriveReadStore)),
		),
		// ServiceRecord
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceRecordReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceRecordReadStore,
			fx.As(new(queries.ServiceRecordReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SlotWriteQueries)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		// TestDrive
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.TestDriveWriteQueries)),
		),
		fx.Annotate(
			repository.NewTestDriveRepository,
			fx.As(new(commands.TestDriveRepository)),
		),
		// Showroom
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ShowroomWriteQueries)),
		),
		fx.Annotate(
			repository.NewShowroomRepository,
			fx.As(new(commands.ShowroomRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
