package repository

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/outage_reporting_system/internal/config"
	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/shenikar/outage_reporting_system/internal/observability"
	"github.com/shenikar/outage_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	delhi     = models.GeoPoint{Latitude: 28.6139, Longitude: 77.2090}
	mumbai    = models.GeoPoint{Latitude: 19.0760, Longitude: 72.8777}
	bangalore = models.GeoPoint{Latitude: 12.9716, Longitude: 77.5946}
)

func newReport(outageType string, p *models.GeoPoint) *models.OutageReport {
	return &models.OutageReport{
		Type:        outageType,
		Description: outageType + " outage",
		Location:    p,
		Status:      models.StatusActive,
	}
}

func TestMemoryOutageRepository_CreateAndGet(t *testing.T) {
	// Подготовка
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := NewMemoryOutageRepository(clock)
	ctx := context.Background()
	r := newReport("water", &delhi)

	// Действие
	require.NoError(t, repo.Create(ctx, r))
	got, err := repo.GetByID(ctx, r.ID)

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, clock.Now(), r.ReportedAt)
	assert.Equal(t, r, got)
}

func TestMemoryOutageRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryOutageRepository(clockwork.NewFakeClock())
	ctx := context.Background()
	r := newReport("water", &delhi)
	require.NoError(t, repo.Create(ctx, r))

	// Изменение возвращенной записи не должно влиять на хранилище
	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	got.Location.Latitude = 0
	got.Status = models.StatusResolved

	again, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, delhi, *again.Location)
	assert.Equal(t, models.StatusActive, again.Status)
}

func TestMemoryOutageRepository_ListNewestFirst(t *testing.T) {
	// Подготовка
	clock := clockwork.NewFakeClock()
	repo := NewMemoryOutageRepository(clock)
	ctx := context.Background()

	first := newReport("electricity", &delhi)
	require.NoError(t, repo.Create(ctx, first))
	clock.Advance(time.Minute)
	second := newReport("water", &mumbai)
	require.NoError(t, repo.Create(ctx, second))
	clock.Advance(time.Minute)
	third := newReport("electricity", nil)
	require.NoError(t, repo.Create(ctx, third))

	// Действие
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	electricity, err := repo.ListByType(ctx, "electricity")
	require.NoError(t, err)
	gas, err := repo.ListByType(ctx, "gas")
	require.NoError(t, err)

	// Проверки
	require.Len(t, all, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
	require.Len(t, electricity, 2)
	assert.Equal(t, third.ID, electricity[0].ID)
	assert.Equal(t, first.ID, electricity[1].ID)
	assert.NotNil(t, gas)
	assert.Empty(t, gas)
}

func TestMemoryOutageRepository_SameTimestampKeepsInsertionReversed(t *testing.T) {
	repo := NewMemoryOutageRepository(clockwork.NewFakeClock())
	ctx := context.Background()

	a := newReport("electricity", &delhi)
	b := newReport("electricity", &mumbai)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, a.ID, all[1].ID)
}

func TestMemoryOutageRepository_UpdateStatus(t *testing.T) {
	repo := NewMemoryOutageRepository(clockwork.NewFakeClock())
	ctx := context.Background()
	r := newReport("gas", &bangalore)
	require.NoError(t, repo.Create(ctx, r))

	require.NoError(t, repo.UpdateStatus(ctx, r.ID, models.StatusResolved))

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, got.Status)
}

func TestMemoryOutageRepository_NotFound(t *testing.T) {
	repo := NewMemoryOutageRepository(clockwork.NewFakeClock())
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrOutageNotFound)

	err = repo.UpdateStatus(ctx, "missing", models.StatusResolved)
	assert.ErrorIs(t, err, models.ErrOutageNotFound)
}

func TestMemoryOutageRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryOutageRepository(clockwork.NewFakeClock())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// Сквозной сценарий: сервис поверх хранилища в памяти
func TestFindNearby_WithMemoryStore(t *testing.T) {
	// Подготовка
	clock := clockwork.NewFakeClock()
	repo := NewMemoryOutageRepository(clock)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := service.NewOutageService(repo, nil, nil, nil, observability.NewMetricsForTesting(), logger,
		&config.Config{StoreReadTimeout: time.Second})
	ctx := context.Background()

	// Вставляем в фиксированном порядке: Delhi самый старый, Bangalore самый новый
	points := []models.GeoPoint{delhi, mumbai, bangalore}
	created := make([]*models.OutageReport, 0, len(points))
	for i := range points {
		r := newReport("electricity", &points[i])
		require.NoError(t, svc.ReportOutage(ctx, r))
		created = append(created, r)
		clock.Advance(time.Second)
	}
	require.NoError(t, repo.Create(ctx, newReport("water", nil)))

	km := 1200.0

	// Действие
	nearby, err := svc.FindNearby(ctx, models.NearbyQuery{Origin: delhi, RadiusKm: &km})

	// Проверки
	require.NoError(t, err)
	got := make([]string, 0, len(nearby))
	for _, r := range nearby {
		got = append(got, r.ID)
	}
	// Порядок хранилища (новые первыми) сохраняется
	assert.Equal(t, []string{created[1].ID, created[0].ID}, got)

	// Радиус по умолчанию 10 км оставляет только саму точку
	nearby, err = svc.FindNearby(ctx, models.NearbyQuery{Origin: delhi})
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, created[0].ID, nearby[0].ID)
}
