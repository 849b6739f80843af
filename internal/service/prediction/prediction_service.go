package prediction

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/observability"
	"github.com/openair/aqimon/internal/pkg/aqi"
	"github.com/openair/aqimon/internal/pkg/constants"
	"github.com/openair/aqimon/internal/pkg/logger"
	"github.com/openair/aqimon/internal/pkg/store"
	"github.com/openair/aqimon/internal/service/notifier"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store   store.Store
	email   notifier.Dispatcher
	sms     notifier.Dispatcher
	clock   clockwork.Clock
	metrics *observability.Metrics
}

func NewService(st store.Store, email, sms notifier.Dispatcher, clock clockwork.Clock, metrics *observability.Metrics) *Service {
	return &Service{store: st, email: email, sms: sms, clock: clock, metrics: metrics}
}

type PredictOpts struct {
	Username string
	Reading  aqi.Reading
	Strategy aqi.Strategy
	Profile  aqi.Profile
}

// Prediction is the full outcome of one predict call: the stored record,
// the severity tier for display, and the results of any alert deliveries.
type Prediction struct {
	Record     *domain.HistoryRecord
	Tier       aqi.Tier
	Alerted    bool
	Deliveries []notifier.Delivery
}

// Predict computes the index, appends the history record and fires
// threshold alerts. Delivery failures are reported in the result, not as
// errors; only invalid input and storage failures abort.
func (s *Service) Predict(ctx context.Context, opts PredictOpts) (*Prediction, error) {
	idx, err := aqi.ComputeIndex(opts.Reading, opts.Strategy)
	if err != nil {
		return nil, constants.NewCodedError(http.StatusBadRequest, err.Error())
	}

	tier := aqi.Classify(idx, opts.Profile)

	record := &domain.HistoryRecord{
		ID:         uuid.NewString(),
		Username:   opts.Username,
		RecordedAt: s.clock.Now().UTC(),
		AQI:        idx,
		PM25:       opts.Reading.PM25,
		PM10:       opts.Reading.PM10,
		NO2:        opts.Reading.NO2,
		SO2:        opts.Reading.SO2,
		CO:         opts.Reading.CO,
		O3:         opts.Reading.O3,
		Status:     tier.Name,
	}

	if err := s.store.AppendHistory(ctx, record); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	if s.metrics != nil {
		s.metrics.PredictionsTotal.WithLabelValues(string(opts.Strategy), tier.Name).Inc()
	}

	result := &Prediction{Record: record, Tier: tier}
	result.Alerted, result.Deliveries = s.dispatchAlerts(ctx, record, tier)

	return result, nil
}

// dispatchAlerts checks the user's threshold and preferences and fans the
// alert out to the enabled channels concurrently.
func (s *Service) dispatchAlerts(ctx context.Context, record *domain.HistoryRecord, tier aqi.Tier) (bool, []notifier.Delivery) {
	settings, err := s.store.GetSettings(ctx, record.Username)
	if err != nil {
		logger.Errorf(ctx, "get settings for %s: %s", record.Username, err.Error())
		return false, nil
	}

	if record.AQI <= float64(settings.AlertThreshold) {
		return false, nil
	}

	user, err := s.store.GetUserByUsername(ctx, record.Username)
	if err != nil {
		logger.Errorf(ctx, "get user %s: %s", record.Username, err.Error())
		return true, nil
	}

	var (
		deliveries   []notifier.Delivery
		deliveriesMx sync.Mutex
	)
	collect := func(d notifier.Delivery) {
		if !d.OK {
			logger.Warnf(ctx, "alert via %s for %s: %s", d.Channel, record.Username, d.Detail)
		}

		deliveriesMx.Lock()
		defer deliveriesMx.Unlock()
		deliveries = append(deliveries, d)
		if s.metrics != nil {
			s.metrics.AlertsTotal.WithLabelValues(d.Channel, outcome(d)).Inc()
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if settings.EmailNotify && user.Email != "" {
		eg.Go(func() error {
			subject := fmt.Sprintf("AQI Alert: %s", tier.Name)
			collect(s.email.Send(egCtx, user.Email, subject, emailBody(record, tier)))
			return nil
		})
	}
	if settings.SMSNotify && user.Phone != "" {
		eg.Go(func() error {
			collect(s.sms.Send(egCtx, user.Phone, "", smsBody(record, tier)))
			return nil
		})
	}

	// Dispatchers never return errors; Wait only joins the goroutines.
	_ = eg.Wait()

	return true, deliveries
}

func outcome(d notifier.Delivery) string {
	if d.OK {
		return "success"
	}
	return "failure"
}

func emailBody(record *domain.HistoryRecord, tier aqi.Tier) string {
	return fmt.Sprintf(
		"AQI Alert - %s\n\nAQI Value: %.1f\nStatus: %s\nTime: %s\n\n%s\n\nStay safe!\n",
		tier.Name,
		record.AQI,
		tier.Name,
		record.RecordedAt.Format("2006-01-02 15:04:05"),
		strings.Join(tier.Recommendations, "\n"),
	)
}

func smsBody(record *domain.HistoryRecord, tier aqi.Tier) string {
	msg := tier.Message
	if len(msg) > 50 {
		msg = msg[:50]
	}
	return fmt.Sprintf("AQI Alert: %.1f - %s. %s", record.AQI, tier.Name, msg)
}

// History returns the user's latest records, newest first.
func (s *Service) History(ctx context.Context, username string, limit uint64) ([]*domain.HistoryRecord, error) {
	return s.store.ListHistory(ctx, store.ListHistoryOpts{Username: username, Limit: limit})
}

// Stats returns the count/avg/max/min aggregate over the user's history.
func (s *Service) Stats(ctx context.Context, username string) (*domain.HistoryStats, error) {
	stats, err := s.store.GetHistoryStats(ctx, username)
	if err != nil {
		return nil, err
	}

	stats.Avg = round1(stats.Avg)
	return stats, nil
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
