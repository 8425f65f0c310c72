package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
)

func TestDriftAuditorRun(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	spots := store.Spots()
	reservations := store.Reservations()

	require.NoError(t, spots.Create(ctx, &models.ParkingSpot{ID: "in-sync", Word: "A1", Reserve: "uid-1"}))
	require.NoError(t, spots.Create(ctx, &models.ParkingSpot{ID: "stale", Word: "A2", Reserve: "uid-old"}))
	require.NoError(t, spots.Create(ctx, &models.ParkingSpot{ID: "orphan", Word: "A3", Reserve: "uid-3"}))
	require.NoError(t, spots.Create(ctx, &models.ParkingSpot{ID: "free", Word: "A4"}))

	require.NoError(t, reservations.Put(ctx, &models.Reservation{UserID: "uid-1", ParkID: "in-sync"}))
	require.NoError(t, reservations.Put(ctx, &models.Reservation{UserID: "uid-2", ParkID: "stale"}))
	require.NoError(t, reservations.Put(ctx, &models.Reservation{UserID: "uid-4", ParkID: "deleted"}))

	core, logs := observer.New(zapcore.WarnLevel)
	writes := store.Writes()

	report, err := NewDriftAuditor(reservations, spots, zap.New(core)).Run(ctx)
	require.NoError(t, err)

	assert.False(t, report.Clean())
	assert.Equal(t, 3, report.Reservations)
	assert.Equal(t, 4, report.Spots)
	assert.Equal(t, []MismatchedReservation{
		{ParkID: "stale", UserID: "uid-2", SpotReserve: "uid-old"},
		{ParkID: "deleted", UserID: "uid-4", SpotMissing: true},
	}, report.Mismatched)
	assert.Equal(t, []string{"orphan"}, report.OrphanedSpots)
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, writes, store.Writes(), "audit must not write")
}

func TestDriftAuditorCleanStore(t *testing.T) {
	store := db.NewMemoryStore()
	report, err := NewDriftAuditor(store.Reservations(), store.Spots(), zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Clean())
}

func TestDriftAuditorSchedule(t *testing.T) {
	store := db.NewMemoryStore()
	auditor := NewDriftAuditor(store.Reservations(), store.Spots(), zap.NewNop())

	c, err := auditor.Schedule(context.Background(), "@every 1h")
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	_, err = auditor.Schedule(context.Background(), "not a schedule")
	assert.Error(t, err)

	_, err = auditor.Schedule(context.Background(), "")
	assert.Error(t, err)
}
