package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/outage_reporting_system/internal/config"
	"github.com/shenikar/outage_reporting_system/internal/geo"
	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/shenikar/outage_reporting_system/internal/observability"
	"github.com/shenikar/outage_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

var (
	// ErrLocationUnresolved - у отчета нет координат и адрес не удалось геокодировать
	ErrLocationUnresolved = errors.New("location could not be resolved")
	// ErrInvalidStatus - статус не из набора active/resolved
	ErrInvalidStatus = errors.New("invalid outage status")
)

//go:generate mockgen -source=outage.go -destination=mocks/mock_outage.go -package=mocks

// OutageRepository определяет контракт хранилища отчетов об отключениях.
// ListAll и ListByType возвращают записи от новых к старым по ReportedAt.
type OutageRepository interface {
	Create(ctx context.Context, report *models.OutageReport) error
	GetByID(ctx context.Context, id string) (*models.OutageReport, error)
	ListAll(ctx context.Context) ([]*models.OutageReport, error)
	ListByType(ctx context.Context, outageType string) ([]*models.OutageReport, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// OutageCache - кеш отдельных отчетов. Get возвращает nil, nil при промахе.
type OutageCache interface {
	Get(ctx context.Context, id string) (*models.OutageReport, error)
	Set(ctx context.Context, report *models.OutageReport) error
	Invalidate(ctx context.Context, id string) error
}

// Geocoder переводит адрес в координаты. found=false, если адрес не найден.
type Geocoder interface {
	ForwardGeocode(ctx context.Context, query string) (point models.GeoPoint, found bool, err error)
}

// OutageService определяет контракт бизнес-логики отчетов об отключениях
type OutageService interface {
	ReportOutage(ctx context.Context, report *models.OutageReport) error
	GetOutage(ctx context.Context, id string) (*models.OutageReport, error)
	ListOutages(ctx context.Context, outageType string) ([]*models.OutageReport, error)
	UpdateOutageStatus(ctx context.Context, id, status string) error
	FindNearby(ctx context.Context, query models.NearbyQuery) ([]*models.OutageReport, error)
}

type outageService struct {
	repo      OutageRepository
	cache     OutageCache
	geocoder  Geocoder
	publisher webhook.WebhookPublisher
	metrics   *observability.Metrics
	logger    *logrus.Logger
	cfg       *config.Config
}

// NewOutageService создает сервис. cache, geocoder и publisher могут быть nil.
func NewOutageService(
	repo OutageRepository,
	cache OutageCache,
	geocoder Geocoder,
	publisher webhook.WebhookPublisher,
	metrics *observability.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) OutageService {
	return &outageService{
		repo:      repo,
		cache:     cache,
		geocoder:  geocoder,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
	}
}

// ReportOutage сохраняет новый отчет. ID и ReportedAt назначает хранилище.
func (s *outageService) ReportOutage(ctx context.Context, report *models.OutageReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "outage",
		"method":  "ReportOutage",
		"type":    report.Type,
	})
	log.Info("Attempting to create a new outage report")

	if report.Location == nil {
		point, err := s.resolveAddress(ctx, report.Address)
		if err != nil {
			log.WithError(err).Warn("Failed to resolve outage location")
			return err
		}
		report.Location = &point
	}

	report.Status = models.StatusActive
	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create outage report in repository")
		return fmt.Errorf("service: could not create outage report: %w", err)
	}
	s.metrics.ReportsCreated.WithLabelValues(observability.OutageTypeLabel(report.Type)).Inc()
	log = log.WithField("outage_id", report.ID)
	log.Info("Outage report created successfully")

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, webhook.NewOutageEvent(report)); err != nil {
			log.WithError(err).Error("Failed to publish outage webhook event")
		}
	}
	return nil
}

func (s *outageService) resolveAddress(ctx context.Context, address string) (models.GeoPoint, error) {
	address = strings.TrimSpace(address)
	if address == "" || s.geocoder == nil {
		return models.GeoPoint{}, ErrLocationUnresolved
	}

	point, found, err := s.geocoder.ForwardGeocode(ctx, address)
	if err != nil {
		s.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return models.GeoPoint{}, fmt.Errorf("service: could not geocode address: %w", err)
	}
	if !found {
		s.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		return models.GeoPoint{}, ErrLocationUnresolved
	}
	s.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	return point, nil
}

// GetOutage получает отчет по ID, сначала из кеша
func (s *outageService) GetOutage(ctx context.Context, id string) (*models.OutageReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "outage",
		"method":    "GetOutage",
		"outage_id": id,
	})
	log.Info("Fetching outage report by ID")

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to read outage report from cache")
		} else if cached != nil {
			log.Debug("Outage report served from cache")
			return cached, nil
		}
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get outage report from repository")
		return nil, fmt.Errorf("service: could not get outage report: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, report); err != nil {
			log.WithError(err).Warn("Failed to cache outage report")
		}
	}
	return report, nil
}

// ListOutages возвращает все отчеты или только отчеты заданного типа
func (s *outageService) ListOutages(ctx context.Context, outageType string) ([]*models.OutageReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "outage",
		"method":  "ListOutages",
		"type":    outageType,
	})
	log.Info("Listing outage reports")

	var (
		reports []*models.OutageReport
		err     error
	)
	if outageType == "" {
		reports, err = s.repo.ListAll(ctx)
	} else {
		reports, err = s.repo.ListByType(ctx, outageType)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list outage reports from repository")
		return nil, fmt.Errorf("service: could not list outage reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Outage reports listed successfully")
	return reports, nil
}

// UpdateOutageStatus меняет статус отчета (active/resolved) и сбрасывает кеш
func (s *outageService) UpdateOutageStatus(ctx context.Context, id, status string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "outage",
		"method":    "UpdateOutageStatus",
		"outage_id": id,
		"status":    status,
	})
	log.Info("Attempting to update outage status")

	if status != models.StatusActive && status != models.StatusResolved {
		return fmt.Errorf("service: %w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		log.WithError(err).Error("Failed to update outage status in repository")
		return fmt.Errorf("service: could not update outage status: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			log.WithError(err).Warn("Failed to invalidate outage cache")
		}
	}

	log.Info("Outage status updated successfully")
	return nil
}

// FindNearby читает всю коллекцию одним запросом и оставляет отчеты в пределах
// радиуса (включительно), сохраняя порядок хранилища. Записи без координат
// пропускаются. Отрицательный радиус не проверяется и дает пустой результат.
func (s *outageService) FindNearby(ctx context.Context, query models.NearbyQuery) ([]*models.OutageReport, error) {
	radius := query.Radius()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "outage",
		"method":    "FindNearby",
		"lat":       query.Origin.Latitude,
		"lon":       query.Origin.Longitude,
		"radius_km": radius,
	})
	log.Debug("Searching outages near point")

	readCtx, cancel := s.readContext(ctx)
	defer cancel()

	start := time.Now()
	reports, err := s.repo.ListAll(readCtx)
	s.metrics.StoreReadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.NearbyQueries.WithLabelValues("error").Inc()
		log.WithError(err).Error("Failed to read outages from repository")
		return nil, fmt.Errorf("service: could not read outages: %w", err)
	}

	nearby := filterNearby(reports, query.Origin, radius)
	s.metrics.NearbyQueries.WithLabelValues("success").Inc()
	s.metrics.NearbyMatches.Observe(float64(len(nearby)))

	log.WithFields(logrus.Fields{
		"total":  len(reports),
		"nearby": len(nearby),
	}).Info("Nearby outage search completed")
	return nearby, nil
}

func (s *outageService) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg != nil && s.cfg.StoreReadTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.StoreReadTimeout)
	}
	return context.WithCancel(ctx)
}

func filterNearby(reports []*models.OutageReport, origin models.GeoPoint, radiusKm float64) []*models.OutageReport {
	nearby := make([]*models.OutageReport, 0)
	for _, report := range reports {
		if report == nil || report.Location == nil {
			continue
		}
		if geo.Distance(origin, *report.Location) <= radiusKm {
			nearby = append(nearby, report)
		}
	}
	return nearby
}
