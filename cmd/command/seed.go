package command

import (
	"context"
	"log/slog"
	"time"

	"elite-drive/cmd/bootstrap"
	"elite-drive/internal/infra/db"
	"elite-drive/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const seedTimeout = 2 * time.Minute

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema if needed and reload the sample dataset",
	Long: `Create the schema if needed, drop every showroom row and load the
sample dataset: ten cars, five customers, a rolling viewing schedule,
a few service records and three confirmed test drives.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	var (
		pool   *pgxpool.Pool
		seeder commands.SeedCommands
	)
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Populate(&pool, &seeder),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("failed to stop application", "error", err)
		}
	}()

	if err := db.ApplySchema(ctx, pool); err != nil {
		return err
	}

	res, err := seeder.Seed(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("seeded %d cars, %d customers, %d slots, %d service records, %d bookings\n",
		res.Cars, res.Customers, res.Slots, res.ServiceRecords, res.Bookings)
	return nil
}
