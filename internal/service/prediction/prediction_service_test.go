package prediction

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/observability"
	"github.com/openair/aqimon/internal/pkg/aqi"
	"github.com/openair/aqimon/internal/pkg/store"
	"github.com/openair/aqimon/internal/service/notifier"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	user     *domain.User
	settings *domain.Settings
	appended []*domain.HistoryRecord
	history  []*domain.HistoryRecord
	stats    *domain.HistoryStats
}

func (f *fakeStore) CreateUser(context.Context, *domain.User) error { return nil }

func (f *fakeStore) GetUserByUsername(context.Context, string) (*domain.User, error) {
	return f.user, nil
}

func (f *fakeStore) GetSettings(context.Context, string) (*domain.Settings, error) {
	return f.settings, nil
}

func (f *fakeStore) SaveSettings(context.Context, *domain.Settings) error { return nil }

func (f *fakeStore) AppendHistory(_ context.Context, rec *domain.HistoryRecord) error {
	f.appended = append(f.appended, rec)
	return nil
}

func (f *fakeStore) ListHistory(_ context.Context, _ store.ListHistoryOpts) ([]*domain.HistoryRecord, error) {
	return f.history, nil
}

func (f *fakeStore) GetHistoryStats(context.Context, string) (*domain.HistoryStats, error) {
	return f.stats, nil
}

type fakeDispatcher struct {
	channel string
	ok      bool
	sent    []string
}

func (f *fakeDispatcher) Send(_ context.Context, destination, _, body string) notifier.Delivery {
	f.sent = append(f.sent, destination+"|"+body)
	return notifier.Delivery{Channel: f.channel, OK: f.ok, Detail: "test"}
}

func newFixture(threshold int, emailNotify, smsNotify bool) (*Service, *fakeStore, *fakeDispatcher, *fakeDispatcher, clockwork.FakeClock) {
	st := &fakeStore{
		user: &domain.User{Username: "alice", Email: "alice@example.com", Phone: "9876543210"},
		settings: &domain.Settings{
			Username:       "alice",
			EmailNotify:    emailNotify,
			SMSNotify:      smsNotify,
			AlertThreshold: threshold,
		},
	}
	email := &fakeDispatcher{channel: notifier.ChannelEmail, ok: true}
	sms := &fakeDispatcher{channel: notifier.ChannelSMS, ok: false}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	return NewService(st, email, sms, clock, nil), st, email, sms, clock
}

func TestPredictAppendsRecord(t *testing.T) {
	svc, st, _, _, clock := newFixture(150, true, true)

	got, err := svc.Predict(context.Background(), PredictOpts{
		Username: "alice",
		Reading:  aqi.Reading{PM25: 35.0, PM10: 70.0},
		Strategy: aqi.StrategyEPA,
		Profile:  aqi.ProfileSixTier,
	})
	require.NoError(t, err)

	require.Len(t, st.appended, 1)
	rec := st.appended[0]
	assert.Equal(t, rec, got.Record)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, clock.Now().UTC(), rec.RecordedAt)
	assert.Equal(t, 99.2, rec.AQI)
	assert.Equal(t, "Moderate", rec.Status)
	assert.Equal(t, "Moderate", got.Tier.Name)
	assert.False(t, got.Alerted)
	assert.Empty(t, got.Deliveries)
}

func TestPredictFiresAlertsAboveThreshold(t *testing.T) {
	svc, _, email, sms, _ := newFixture(150, true, true)

	got, err := svc.Predict(context.Background(), PredictOpts{
		Username: "alice",
		Reading:  aqi.Reading{PM25: 160.0},
		Strategy: aqi.StrategyEPA,
		Profile:  aqi.ProfileSixTier,
	})
	require.NoError(t, err)

	assert.True(t, got.Alerted)
	require.Len(t, got.Deliveries, 2)
	require.Len(t, email.sent, 1)
	require.Len(t, sms.sent, 1)

	assert.Contains(t, email.sent[0], "alice@example.com|")
	assert.Contains(t, email.sent[0], "AQI Value: 210.4")
	assert.Contains(t, sms.sent[0], "9876543210|AQI Alert: 210.4 - Very Unhealthy")

	// A failed SMS shows up as a failed delivery, not an error.
	byChannel := map[string]bool{}
	for _, d := range got.Deliveries {
		byChannel[d.Channel] = d.OK
	}
	assert.True(t, byChannel[notifier.ChannelEmail])
	assert.False(t, byChannel[notifier.ChannelSMS])
}

func TestPredictRespectsChannelPreferences(t *testing.T) {
	svc, _, email, sms, _ := newFixture(100, false, true)

	got, err := svc.Predict(context.Background(), PredictOpts{
		Username: "alice",
		Reading:  aqi.Reading{PM25: 160.0},
		Strategy: aqi.StrategyEPA,
		Profile:  aqi.ProfileSixTier,
	})
	require.NoError(t, err)

	assert.True(t, got.Alerted)
	assert.Empty(t, email.sent)
	assert.Len(t, sms.sent, 1)
	assert.Len(t, got.Deliveries, 1)
}

func TestPredictThresholdIsExclusive(t *testing.T) {
	svc, _, email, sms, _ := newFixture(150, true, true)

	// 55.5 -> sub-index exactly 151 > 150 fires; threshold equality must not.
	got, err := svc.Predict(context.Background(), PredictOpts{
		Username: "alice",
		Reading:  aqi.Reading{PM25: 55.4},
		Strategy: aqi.StrategyEPA,
		Profile:  aqi.ProfileSixTier,
	})
	require.NoError(t, err)

	assert.False(t, got.Alerted)
	assert.Empty(t, email.sent)
	assert.Empty(t, sms.sent)
}

func TestPredictInvalidReading(t *testing.T) {
	svc, st, _, _, _ := newFixture(150, true, true)

	_, err := svc.Predict(context.Background(), PredictOpts{
		Username: "alice",
		Reading:  aqi.Reading{PM25: -3},
		Strategy: aqi.StrategyEPA,
		Profile:  aqi.ProfileSixTier,
	})

	require.Error(t, err)
	assert.Empty(t, st.appended)
}

func TestPredictIncrementsCounters(t *testing.T) {
	st := &fakeStore{
		user:     &domain.User{Username: "alice", Email: "alice@example.com", Phone: "9876543210"},
		settings: &domain.Settings{Username: "alice", EmailNotify: true, SMSNotify: true, AlertThreshold: 150},
	}
	email := &fakeDispatcher{channel: notifier.ChannelEmail, ok: true}
	sms := &fakeDispatcher{channel: notifier.ChannelSMS, ok: false}
	metrics := observability.NewMetricsForTesting()
	svc := NewService(st, email, sms, clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)), metrics)

	_, err := svc.Predict(context.Background(), PredictOpts{
		Username: "alice",
		Reading:  aqi.Reading{PM25: 160.0},
		Strategy: aqi.StrategyEPA,
		Profile:  aqi.ProfileSixTier,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PredictionsTotal.WithLabelValues(string(aqi.StrategyEPA), "Very Unhealthy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AlertsTotal.WithLabelValues(notifier.ChannelEmail, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AlertsTotal.WithLabelValues(notifier.ChannelSMS, "failure")))
}

func TestStatsRoundsAverage(t *testing.T) {
	svc, st, _, _, _ := newFixture(150, true, true)
	st.stats = &domain.HistoryStats{Total: 3, Avg: 101.25, Max: 150, Min: 52.5}

	got, err := svc.Stats(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 101.3, got.Avg)
}
