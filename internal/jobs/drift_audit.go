package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/db"
)

// MismatchedReservation is a reservation whose spot does not mirror its user.
// SpotReserve is empty when the spot document is gone.
type MismatchedReservation struct {
	ParkID      string
	UserID      string
	SpotReserve string
	SpotMissing bool
}

// DriftReport is the result of a single audit pass.
type DriftReport struct {
	Reservations int
	Spots        int
	Mismatched   []MismatchedReservation
	// OrphanedSpots are reserved spots with no reservation document.
	OrphanedSpots []string
}

// Clean reports whether no drift was found.
func (r DriftReport) Clean() bool {
	return len(r.Mismatched) == 0 && len(r.OrphanedSpots) == 0
}

// DriftAuditor compares reservation documents with the reserve field of the
// spots they point at. It only reads.
type DriftAuditor struct {
	reservations db.ReservationRepository
	spots        db.SpotRepository
	logger       *zap.Logger
}

func NewDriftAuditor(reservations db.ReservationRepository, spots db.SpotRepository, logger *zap.Logger) *DriftAuditor {
	return &DriftAuditor{reservations: reservations, spots: spots, logger: logger}
}

// Run performs one audit pass and logs every finding.
func (a *DriftAuditor) Run(ctx context.Context) (DriftReport, error) {
	reservations, err := a.reservations.List(ctx)
	if err != nil {
		return DriftReport{}, fmt.Errorf("drift audit: failed to list reservations: %w", err)
	}
	spots, err := a.spots.List(ctx)
	if err != nil {
		return DriftReport{}, fmt.Errorf("drift audit: failed to list spots: %w", err)
	}

	report := DriftReport{Reservations: len(reservations), Spots: len(spots)}

	reserveBySpot := make(map[string]string, len(spots))
	for _, spot := range spots {
		reserveBySpot[spot.ID] = spot.Reserve
	}

	reserved := make(map[string]bool, len(reservations))
	for _, r := range reservations {
		reserved[r.ParkID] = true
		current, ok := reserveBySpot[r.ParkID]
		if ok && current == r.UserID {
			continue
		}
		m := MismatchedReservation{ParkID: r.ParkID, UserID: r.UserID, SpotReserve: current, SpotMissing: !ok}
		report.Mismatched = append(report.Mismatched, m)
		a.logger.Warn("Reservation does not match its spot",
			zap.String("parkId", m.ParkID),
			zap.String("userId", m.UserID),
			zap.String("spotReserve", m.SpotReserve),
			zap.Bool("spotMissing", m.SpotMissing))
	}

	for _, spot := range spots {
		if spot.IsReserved() && !reserved[spot.ID] {
			report.OrphanedSpots = append(report.OrphanedSpots, spot.ID)
			a.logger.Warn("Spot is reserved without a reservation document",
				zap.String("spotId", spot.ID), zap.String("reserve", spot.Reserve))
		}
	}

	a.logger.Info("Drift audit finished",
		zap.Int("reservations", report.Reservations),
		zap.Int("spots", report.Spots),
		zap.Int("mismatched", len(report.Mismatched)),
		zap.Int("orphanedSpots", len(report.OrphanedSpots)))
	return report, nil
}

// Schedule registers the audit on a new cron scheduler. The caller starts and
// stops the returned scheduler.
func (a *DriftAuditor) Schedule(ctx context.Context, schedule string) (*cron.Cron, error) {
	if schedule == "" {
		return nil, errors.New("drift audit: empty schedule")
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(schedule, func() {
		if _, err := a.Run(ctx); err != nil {
			a.logger.Error("Drift audit failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("drift audit: invalid schedule %q: %w", schedule, err)
	}
	return c, nil
}
