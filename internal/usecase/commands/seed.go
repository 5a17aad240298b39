package commands

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"elite-drive/internal/domain/car"
	"elite-drive/internal/domain/customer"
	"elite-drive/internal/domain/maintenance"
	"elite-drive/internal/domain/schedule"
	reqdto "elite-drive/internal/handler/dto/request"
	"elite-drive/internal/pkg/clock"
	"elite-drive/internal/pkg/errs"

	"github.com/google/uuid"
)

type SeedOptions struct {
	ServiceRecords int
	Bookings       int
	// Rand drives the service history sample. Nil means a time-seeded source.
	Rand *rand.Rand
}

type SeedResult struct {
	Cars           int
	Customers      int
	Slots          int
	ServiceRecords int
	Bookings       int
}

type SeedCommands interface {
	// Seed wipes the showroom tables and loads the sample dataset.
	Seed(ctx context.Context) (*SeedResult, error)
}

type seedCommandsImpl struct {
	showroom ShowroomRepository
	slots    SlotRepository
	bookings TestDriveCommands
	plan     schedule.Plan
	opts     SeedOptions
	clock    clock.Clock
}

func NewSeedCommands(showroom ShowroomRepository, slots SlotRepository, bookings TestDriveCommands, plan schedule.Plan, opts SeedOptions, clk clock.Clock) SeedCommands {
	if opts.Rand == nil {
		now := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(now, now>>1))
	}
	return &seedCommandsImpl{
		showroom: showroom,
		slots:    slots,
		bookings: bookings,
		plan:     plan,
		opts:     opts,
		clock:    clk,
	}
}

func (uc *seedCommandsImpl) Seed(ctx context.Context) (*SeedResult, error) {
	slog.Info("dropping existing showroom data")
	if err := uc.showroom.Reset(ctx); err != nil {
		return nil, err
	}

	res := &SeedResult{}

	carIDs, err := uc.seedCars(ctx)
	if err != nil {
		return nil, err
	}
	res.Cars = len(carIDs)

	customerIDs, err := uc.seedCustomers(ctx)
	if err != nil {
		return nil, err
	}
	res.Customers = len(customerIDs)

	// Today's earlier hours are kept so a fresh dataset always has a full grid.
	now := uc.clock.Now()
	slots, err := uc.plan.Generate(carIDs, now, time.Time{})
	if err != nil {
		return nil, errs.Wrap(err, "invalid schedule plan")
	}
	if res.Slots, err = uc.slots.InsertMany(ctx, slots); err != nil {
		return nil, err
	}
	slog.Info("inserted showroom schedules", "count", res.Slots)

	if res.ServiceRecords, err = uc.seedServiceHistory(ctx, carIDs, now); err != nil {
		return nil, err
	}

	if len(customerIDs) > 0 {
		if res.Bookings, err = uc.seedBookings(ctx, customerIDs[0], slots); err != nil {
			return nil, err
		}
	}

	slog.Info("database seeding completed",
		"cars", res.Cars, "customers", res.Customers, "slots", res.Slots,
		"service_records", res.ServiceRecords, "bookings", res.Bookings)
	return res, nil
}

func (uc *seedCommandsImpl) seedCars(ctx context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(seedCars))
	for _, sc := range seedCars {
		c, err := car.NewCar(sc.brand, sc.model, sc.year, sc.price, sc.specs, sc.category)
		if err != nil {
			return nil, errs.Wrapf(err, "seed car %s %s", sc.brand, sc.model)
		}
		id, err := uc.showroom.CreateCar(ctx, c)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	slog.Info("inserted cars", "count", len(ids))
	return ids, nil
}

func (uc *seedCommandsImpl) seedCustomers(ctx context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(seedCustomers))
	for _, sc := range seedCustomers {
		c, err := customer.NewCustomer(sc.name, sc.phone, sc.tier)
		if err != nil {
			return nil, errs.Wrapf(err, "seed customer %s", sc.name)
		}
		id, err := uc.showroom.CreateCustomer(ctx, c)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	slog.Info("inserted customers", "count", len(ids))
	return ids, nil
}

// seedServiceHistory picks random cars with a service 30-365 days ago costing 1000-5000.
func (uc *seedCommandsImpl) seedServiceHistory(ctx context.Context, carIDs []uuid.UUID, now time.Time) (int, error) {
	if len(carIDs) == 0 {
		return 0, nil
	}
	r := uc.opts.Rand
	for i := 0; i < uc.opts.ServiceRecords; i++ {
		carID := carIDs[r.IntN(len(carIDs))]
		daysAgo := 30 + r.IntN(336)
		cost := float64(1000 + r.IntN(4001))
		rec, err := maintenance.NewRecord(carID, now.AddDate(0, 0, -daysAgo), seedServiceDescription, cost, r.IntN(2) == 1)
		if err != nil {
			return i, errs.Wrap(err, "seed service record")
		}
		if err := uc.showroom.CreateServiceRecord(ctx, rec); err != nil {
			return i, err
		}
	}
	slog.Info("inserted service history", "count", uc.opts.ServiceRecords)
	return uc.opts.ServiceRecords, nil
}

// seedBookings books the first generated slots for one customer through the
// regular booking flow.
func (uc *seedCommandsImpl) seedBookings(ctx context.Context, customerID uuid.UUID, slots []*schedule.Slot) (int, error) {
	n := min(uc.opts.Bookings, len(slots))
	for i := 0; i < n; i++ {
		_, err := uc.bookings.BookTestDrive(ctx, reqdto.BookTestDriveRequest{
			CustomerID: customerID.String(),
			CarID:      slots[i].CarID().String(),
			SlotID:     slots[i].ID().String(),
		})
		if err != nil {
			return i, errs.Wrapf(err, "seed booking %d", i+1)
		}
	}
	slog.Info("seeded test drives", "count", n)
	return n, nil
}
