package startupmetrics

import (
	"errors"
	"time"

	"github.com/blackroad/startupmetrics/period"
	"github.com/rs/zerolog/log"
)

// Dashboard is a point-in-time KPI snapshot of one startup.
type Dashboard struct {
	Startup   string           `json:"startup"`
	MRR       Amount           `json:"mrr"`
	ARR       Amount           `json:"arr"`
	Churn     *ChurnReport     `json:"churn"`
	Runway    *RunwayReport    `json:"runway,omitempty"`
	Headcount *HeadcountReport `json:"headcount"`
	AsOf      time.Time        `json:"as_of"`
}

// KPIDashboard composes every KPI into one snapshot. Runway is included
// only when a positive monthly burn is supplied; omitting burn yields a
// partial snapshot, never a misleading zeroed runway.
//
// The name lookup is the one best-effort step: a startup record vanished
// since the existence check degrades to the "Unknown" placeholder instead
// of failing the snapshot. Each sub-metric is a fresh read; the snapshot
// tolerates read skew between them.
func (s *Service) KPIDashboard(startupID string, monthlyBurn float64) (*Dashboard, error) {
	if err := s.checkValue("monthly_burn", monthlyBurn, "finite,gte=0"); err != nil {
		return nil, err
	}
	if err := s.requireStartup(startupID); err != nil {
		return nil, err
	}

	name := "Unknown"
	su, err := s.store.Startup(startupID)
	switch {
	case err == nil:
		name = su.Name
	case errors.Is(err, ErrNotFound):
		log.Warn().Str("startup_id", startupID).Msg("startup name unavailable, composing dashboard with placeholder")
	default:
		return nil, err
	}

	mrr, err := s.activeMRR(startupID)
	if err != nil {
		return nil, err
	}
	churn, err := s.ChurnRate(startupID, period.Month{})
	if err != nil {
		return nil, err
	}
	head, err := s.Headcount(startupID)
	if err != nil {
		return nil, err
	}

	snap := &Dashboard{
		Startup:   name,
		MRR:       mrr,
		ARR:       mrr.Times(12).Rounded(),
		Churn:     churn,
		Headcount: head,
		AsOf:      time.Now().UTC(),
	}
	if monthlyBurn > 0 {
		runway, err := s.Runway(startupID, monthlyBurn)
		if err != nil {
			return nil, err
		}
		snap.Runway = runway
	}
	return snap, nil
}
