package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/satriawidya/bloodlink/cmd/config"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
	facilityrepo "github.com/satriawidya/bloodlink/repository/facility"
	redisrepo "github.com/satriawidya/bloodlink/repository/redis"
	summaryrepo "github.com/satriawidya/bloodlink/repository/summary"
	"github.com/satriawidya/bloodlink/utils/errors"
	"github.com/satriawidya/bloodlink/utils/logger"
	"go.uber.org/zap"
)

type DashboardApp interface {
	// GetSummary returns the facility's metrics for the given day,
	// refreshing the cached row first when it is missing or older than the
	// configured freshness window.
	GetSummary(ctx context.Context, facilityID, date string) (*model.SummaryResponse, error)
	// Refresh recomputes and stores the summary row. Safe to call
	// concurrently; the last writer wins.
	Refresh(ctx context.Context, facilityID, date string) (*model.DailySummary, error)
}

type dashboardAppImpl struct {
	config       *config.Config
	summaryRepo  summaryrepo.SummaryRepository
	facilityRepo facilityrepo.FacilityRepository
	redisRepo    redisrepo.Repository
}

func NewDashboardApp(config *config.Config, summaryRepo summaryrepo.SummaryRepository, facilityRepo facilityrepo.FacilityRepository, redisRepo redisrepo.Repository) DashboardApp {
	return &dashboardAppImpl{
		config:       config,
		summaryRepo:  summaryRepo,
		facilityRepo: facilityRepo,
		redisRepo:    redisRepo,
	}
}

func cacheKey(facilityID, date string) string {
	return "dashboard:" + facilityID + ":" + date
}

func (s *dashboardAppImpl) GetSummary(ctx context.Context, facilityID, date string) (*model.SummaryResponse, error) {
	if date == "" {
		date = time.Now().Format(constant.DateLayout)
	}

	facility, err := s.facilityRepo.GetFacility(ctx, facilityID)
	if err != nil {
		logger.Error("[GetSummary] get facility", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if facility == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if cached, err := s.redisRepo.Get(ctx, cacheKey(facilityID, date)); err == nil && cached != "" {
		var resp model.SummaryResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	row, err := s.summaryRepo.Get(ctx, facilityID, date)
	if err != nil {
		logger.Error("[GetSummary] get summary row", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	stale := false
	if row == nil || time.Since(row.UpdatedAt) > s.config.Dashboard.Freshness {
		refreshCtx, cancel := context.WithTimeout(ctx, s.config.Dashboard.RefreshTimeout)
		fresh, refreshErr := s.Refresh(refreshCtx, facilityID, date)
		cancel()
		if refreshErr != nil {
			// Serve the stale row rather than failing the read. A missing
			// row cannot be degraded to, so that stays an error.
			if row == nil {
				logger.Error("[GetSummary] refresh failed with no cached row",
					zap.String("facility_id", facilityID), zap.String("error", refreshErr.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			logger.Warn("[GetSummary] refresh failed, serving stale summary",
				zap.String("facility_id", facilityID), zap.String("error", refreshErr.Error()))
			stale = true
		} else {
			row = fresh
		}
	}

	resp, err := s.buildResponse(ctx, row, stale)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey(facilityID, date), string(payload), s.config.Dashboard.CacheTTL); err != nil {
			logger.Warn("[GetSummary] cache summary", zap.String("error", err.Error()))
		}
	}

	return resp, nil
}

func (s *dashboardAppImpl) Refresh(ctx context.Context, facilityID, date string) (*model.DailySummary, error) {
	if date == "" {
		date = time.Now().Format(constant.DateLayout)
	}

	totalStock, err := s.summaryRepo.TotalStock(ctx, facilityID)
	if err != nil {
		logger.Error("[Refresh] total stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	totalTransferred, err := s.summaryRepo.TotalTransferred(ctx, facilityID, date)
	if err != nil {
		logger.Error("[Refresh] total transferred", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	totalRequests, err := s.summaryRepo.TotalRequests(ctx, facilityID, date)
	if err != nil {
		logger.Error("[Refresh] total requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	row := &model.DailySummary{
		FacilityID:       facilityID,
		Date:             date,
		TotalStock:       totalStock,
		TotalTransferred: totalTransferred,
		TotalRequests:    totalRequests,
		UpdatedAt:        time.Now(),
	}
	if err := s.summaryRepo.Upsert(ctx, row); err != nil {
		logger.Error("[Refresh] upsert summary", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.Delete(ctx, cacheKey(facilityID, date)); err != nil {
		logger.Warn("[Refresh] invalidate cache", zap.String("error", err.Error()))
	}

	return row, nil
}

func (s *dashboardAppImpl) buildResponse(ctx context.Context, row *model.DailySummary, stale bool) (*model.SummaryResponse, error) {
	day, err := time.Parse(constant.DateLayout, row.Date)
	if err != nil {
		logger.Error("[buildResponse] parse date", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	previousDate := day.AddDate(0, 0, -1).Format(constant.DateLayout)

	previous, err := s.summaryRepo.Get(ctx, row.FacilityID, previousDate)
	if err != nil {
		logger.Error("[buildResponse] get previous summary", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var prevStock, prevTransferred, prevRequests int64
	if previous != nil {
		prevStock = previous.TotalStock
		prevTransferred = previous.TotalTransferred
		prevRequests = previous.TotalRequests
	}

	return &model.SummaryResponse{
		Stock:       buildMetric(row.TotalStock, prevStock),
		Transferred: buildMetric(row.TotalTransferred, prevTransferred),
		Requests:    buildMetric(row.TotalRequests, prevRequests),
		Stale:       stale,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// buildMetric compares today's value against yesterday's. A zero baseline
// reports 100% growth when anything happened today, 0% otherwise.
func buildMetric(current, previous int64) model.SummaryMetric {
	metric := model.SummaryMetric{Value: current, Direction: "flat"}
	switch {
	case previous == 0 && current > 0:
		metric.Change = 100
		metric.Direction = "up"
	case previous == 0:
		// flat, zero change
	default:
		metric.Change = float64(current-previous) / float64(previous) * 100
		if current > previous {
			metric.Direction = "up"
		} else if current < previous {
			metric.Direction = "down"
		}
	}
	return metric
}
