package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/shenikar/outage_reporting_system/internal/service"
)

// MemoryOutageRepository хранит отчеты в памяти процесса.
// Используется для локального запуска (STORAGE_DRIVER=memory) и тестов.
type MemoryOutageRepository struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	reports []models.OutageReport
}

func NewMemoryOutageRepository(clock clockwork.Clock) service.OutageRepository {
	return &MemoryOutageRepository{clock: clock}
}

func (m *MemoryOutageRepository) Create(_ context.Context, report *models.OutageReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	report.ID = uuid.NewString()
	report.ReportedAt = m.clock.Now().UTC()
	m.reports = append(m.reports, *cloneReport(report))
	return nil
}

func (m *MemoryOutageRepository) GetByID(_ context.Context, id string) (*models.OutageReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.reports {
		if m.reports[i].ID == id {
			return cloneReport(&m.reports[i]), nil
		}
	}
	return nil, fmt.Errorf("outage with id %s: %w", id, models.ErrOutageNotFound)
}

func (m *MemoryOutageRepository) ListAll(ctx context.Context) ([]*models.OutageReport, error) {
	return m.list(ctx, func(*models.OutageReport) bool { return true })
}

func (m *MemoryOutageRepository) ListByType(ctx context.Context, outageType string) ([]*models.OutageReport, error) {
	return m.list(ctx, func(r *models.OutageReport) bool { return r.Type == outageType })
}

func (m *MemoryOutageRepository) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.reports {
		if m.reports[i].ID == id {
			m.reports[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("outage with id %s: %w", id, models.ErrOutageNotFound)
}

// list отдает копии записей, новые первыми; при равном времени - позже вставленные первыми
func (m *MemoryOutageRepository) list(ctx context.Context, keep func(*models.OutageReport) bool) ([]*models.OutageReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	reports := make([]*models.OutageReport, 0, len(m.reports))
	for i := len(m.reports) - 1; i >= 0; i-- {
		if keep(&m.reports[i]) {
			reports = append(reports, cloneReport(&m.reports[i]))
		}
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].ReportedAt.After(reports[j].ReportedAt)
	})
	return reports, nil
}

func cloneReport(r *models.OutageReport) *models.OutageReport {
	c := *r
	if r.Location != nil {
		loc := *r.Location
		c.Location = &loc
	}
	return &c
}
