package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/satriawidya/bloodlink/application/dashboard"
	"github.com/satriawidya/bloodlink/cmd/config"
	"github.com/satriawidya/bloodlink/constant"
	facilityrepo "github.com/satriawidya/bloodlink/repository/facility"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

// Scheduler refreshes every facility's dashboard summary on a fixed
// interval so reads mostly hit a warm row.
type Scheduler struct {
	config       *config.Config
	dashboardApp dashboard.DashboardApp
	facilityRepo facilityrepo.FacilityRepository
}

func New(config *config.Config, dashboardApp dashboard.DashboardApp, facilityRepo facilityrepo.FacilityRepository) *Scheduler {
	return &Scheduler{
		config:       config,
		dashboardApp: dashboardApp,
		facilityRepo: facilityRepo,
	}
}

// Start runs the refresh loop until ctx is cancelled. It refreshes once
// immediately so a fresh deployment does not wait a full interval.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.config.Dashboard.SchedulerInterval)
	defer ticker.Stop()

	s.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("[Scheduler] stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce fans out one goroutine per facility, each bounded by its own
// timeout so a slow facility cannot stall the rest of the batch.
func (s *Scheduler) runOnce(ctx context.Context) {
	facilityIDs, err := s.facilityRepo.ListFacilityIDs(ctx)
	if err != nil {
		logger.Error("[Scheduler] list facilities", zap.String("error", err.Error()))
		return
	}

	date := time.Now().Format(constant.DateLayout)
	var wg sync.WaitGroup
	for _, facilityID := range facilityIDs {
		wg.Add(1)
		go func(facilityID string) {
			defer wg.Done()
			refreshCtx, cancel := context.WithTimeout(ctx, s.config.Dashboard.RefreshTimeout)
			defer cancel()
			if _, err := s.dashboardApp.Refresh(refreshCtx, facilityID, date); err != nil {
				logger.Warn("[Scheduler] refresh facility",
					zap.String("facility_id", facilityID), zap.String("error", err.Error()))
			}
		}(facilityID)
	}
	wg.Wait()

	logger.Info("[Scheduler] refresh cycle complete", zap.Int("facilities", len(facilityIDs)))
}
