//go:build unit

package queries_test

import (
	"context"
	"regexp"
	"testing"

	"elite-drive/internal/usecase/queries"
	"elite-drive/tests/common/builder"
	queriesmock "elite-drive/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBrandPattern(t *testing.T) {
	testCases := []struct {
		brand   string
		pattern string
		matches []string
		misses  []string
	}{
		{
			brand:   "Ferrari",
			pattern: "^Ferrari$",
			matches: []string{"Ferrari", "FERRARI", "ferrari"},
			misses:  []string{"Ferrari F40", "Ferrar"},
		},
		{
			brand:   "Rolls-Royce",
			pattern: "^Rolls-Royce$",
			matches: []string{"rolls-royce"},
		},
		{
			brand:   ".*",
			pattern: `^\.\*$`,
			matches: []string{".*"},
			misses:  []string{"Ferrari"},
		},
		{
			brand:   "Aston (Martin)",
			pattern: `^Aston \(Martin\)$`,
			matches: []string{"aston (martin)"},
			misses:  []string{"Aston Martin"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.brand, func(t *testing.T) {
			pattern, err := queries.BrandPattern(tc.brand)
			require.NoError(t, err)
			assert.Equal(t, tc.pattern, pattern)

			re := regexp.MustCompile("(?i)" + pattern)
			for _, m := range tc.matches {
				assert.True(t, re.MatchString(m), "expected %q to match", m)
			}
			for _, m := range tc.misses {
				assert.False(t, re.MatchString(m), "expected %q not to match", m)
			}
		})
	}
}

func TestCarQueries_ListByBrand(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cars := queriesmock.NewMockCarReadStore(ctrl)
	slots := queriesmock.NewMockSlotReadStore(ctrl)
	q := queries.NewCarQueries(cars, slots)

	want := []*queries.CarView{builder.NewCarBuilder().BuildView()}
	cars.EXPECT().ListByBrandPattern(ctx, "^ferrari$").Return(want, nil)

	got, err := q.ListByBrand(ctx, "ferrari")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCarQueries_ListWithAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("success: fetches the cars behind open slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cars := queriesmock.NewMockCarReadStore(ctrl)
		slots := queriesmock.NewMockSlotReadStore(ctrl)
		q := queries.NewCarQueries(cars, slots)

		view := builder.NewCarBuilder().BuildView()
		slots.EXPECT().ListAvailableCarIDs(ctx).Return([]uuid.UUID{view.ID}, nil)
		cars.EXPECT().ListByIDs(ctx, []uuid.UUID{view.ID}).Return([]*queries.CarView{view}, nil)

		got, err := q.ListWithAvailability(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*queries.CarView{view}, got)
	})

	t.Run("success: no open slots skips the car lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cars := queriesmock.NewMockCarReadStore(ctrl)
		slots := queriesmock.NewMockSlotReadStore(ctrl)
		q := queries.NewCarQueries(cars, slots)

		slots.EXPECT().ListAvailableCarIDs(ctx).Return([]uuid.UUID{}, nil)

		got, err := q.ListWithAvailability(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
