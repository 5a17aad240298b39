//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"elite-drive/internal/domain/schedule"
	"elite-drive/internal/domain/testdrive"
	reqdto "elite-drive/internal/handler/dto/request"
	"elite-drive/internal/infra"
	"elite-drive/internal/pkg/clock"
	"elite-drive/internal/pkg/errs"
	"elite-drive/internal/usecase/commands"
	"elite-drive/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSlotStore mimics the store's single-row conditional update.
type memSlotStore struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*schedule.Slot
}

func (s *memSlotStore) Claim(_ context.Context, slotID, carID uuid.UUID) (*schedule.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok || !slot.IsAvailable() || slot.CarID() != carID {
		return nil, infra.WrapRepoErr("slot not claimable", nil, infra.KindNotFound)
	}
	taken := schedule.ReconstructSlot(slot.ID(), slot.CarID(), slot.Window(), false)
	s.slots[slotID] = taken
	return taken, nil
}

func (s *memSlotStore) InsertMany(_ context.Context, slots []*schedule.Slot) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sl := range slots {
		s.slots[sl.ID()] = sl
	}
	return len(slots), nil
}

type memTestDriveStore struct {
	mu     sync.Mutex
	bySlot map[uuid.UUID]*testdrive.TestDrive
}

func (s *memTestDriveStore) Create(_ context.Context, td *testdrive.TestDrive) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.bySlot[td.SlotID()]; dup {
		return uuid.Nil, infra.WrapRepoErr("slot already has a test drive", nil, infra.KindDuplicateKey)
	}
	s.bySlot[td.SlotID()] = td
	return td.ID(), nil
}

func TestBookTestDrive_ConcurrentRequestsForOneSlot(t *testing.T) {
	const workers = 32

	slot, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)

	slots := &memSlotStore{slots: map[uuid.UUID]*schedule.Slot{slot.ID(): slot}}
	drives := &memTestDriveStore{bySlot: map[uuid.UUID]*testdrive.TestDrive{}}
	uc := commands.NewTestDriveCommands(slots, drives, clock.NewRealClock())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := uc.BookTestDrive(context.Background(), reqdto.BookTestDriveRequest{
				CustomerID: uuid.NewString(),
				CarID:      slot.CarID().String(),
				SlotID:     slot.ID().String(),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, errs.ErrSlotNotAvailable):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, drives.bySlot, 1)
	assert.False(t, slots.slots[slot.ID()].IsAvailable())
}

func TestBookTestDrive_WrongCarLeavesSlotOpen(t *testing.T) {
	slot, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)

	slots := &memSlotStore{slots: map[uuid.UUID]*schedule.Slot{slot.ID(): slot}}
	drives := &memTestDriveStore{bySlot: map[uuid.UUID]*testdrive.TestDrive{}}
	uc := commands.NewTestDriveCommands(slots, drives, clock.NewRealClock())

	_, err = uc.BookTestDrive(context.Background(), reqdto.BookTestDriveRequest{
		CustomerID: uuid.NewString(),
		CarID:      uuid.NewString(),
		SlotID:     slot.ID().String(),
	})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrSlotNotAvailable))
	assert.True(t, slots.slots[slot.ID()].IsAvailable())
	assert.Empty(t, drives.bySlot)
}
