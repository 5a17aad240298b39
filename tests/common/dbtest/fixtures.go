//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	sqlc "elite-drive/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCar(t *testing.T, db DBLike, brand, model string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO cars (id, brand, model, year, price, specs, category)
		 VALUES ($1, $2, $3, 2024, 250000, '{"hp": 600}', 'Supercar')`,
		id, brand, model)
	require.NoError(t, err)
	return id
}

func CreateTestCustomer(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO customers (id, name, phone, loyalty_tier) VALUES ($1, $2, '+1-555-0100', 'Gold')`,
		id, name)
	require.NoError(t, err)
	return id
}

func CreateTestSlot(t *testing.T, db DBLike, carID uuid.UUID, start time.Time, available bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO showroom_schedules (id, car_id, start_time, end_time, is_available)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, carID, start, start.Add(time.Hour), available)
	require.NoError(t, err)
	return id
}

func CreateTestServiceRecord(t *testing.T, db DBLike, carID uuid.UUID, due bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO service_history (id, car_id, date, description, cost, next_service_due)
		 VALUES ($1, $2, $3, 'Routine Maintenance', 2500, $4)`,
		id, carID, time.Now().AddDate(0, 0, -60), due)
	require.NoError(t, err)
	return id
}

func IsSlotAvailable(t *testing.T, db DBLike, slotID uuid.UUID) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(),
		"SELECT is_available FROM showroom_schedules WHERE id = $1", slotID).Scan(&available)
	require.NoError(t, err)
	return available
}

func CountTestDrives(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM test_drives").Scan(&n)
	require.NoError(t, err)
	return n
}

// truncates every showroom table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return sqlc.New().TruncateShowroom(ctx, pool)
}
