package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/shenikar/outage_reporting_system/internal/service"
)

const outageColumns = `
	id::text,
	type,
	description,
	latitude,
	longitude,
	address,
	user_id,
	status,
	COALESCE(severity, ''),
	reported_at`

type OutageRepository struct {
	db *pgxpool.Pool
}

func NewOutageRepository(db *pgxpool.Pool) service.OutageRepository {
	return &OutageRepository{
		db: db,
	}
}

// Create создает новую запись об отключении, id и reported_at назначает бд
func (r *OutageRepository) Create(ctx context.Context, report *models.OutageReport) error {
	query := `
		INSERT INTO outages (type, description, latitude, longitude, address, user_id, status, severity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING id::text, reported_at;
	`
	var lat, lon *float64
	if report.Location != nil {
		lat, lon = &report.Location.Latitude, &report.Location.Longitude
	}

	err := r.db.QueryRow(ctx, query,
		report.Type,
		report.Description,
		lat,
		lon,
		report.Address,
		report.UserID,
		report.Status,
		report.Severity,
	).Scan(&report.ID, &report.ReportedAt)
	if err != nil {
		return fmt.Errorf("failed to create outage: %w", err)
	}
	return nil
}

// GetByID возвращает отчет по его UUID
func (r *OutageRepository) GetByID(ctx context.Context, id string) (*models.OutageReport, error) {
	// Не-UUID не может существовать в таблице
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("outage with id %s: %w", id, models.ErrOutageNotFound)
	}

	query := `SELECT ` + outageColumns + ` FROM outages WHERE id = $1;`
	report, err := scanOutage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("outage with id %s: %w", id, models.ErrOutageNotFound)
		}
		return nil, fmt.Errorf("failed to get outage by id: %w", err)
	}
	return report, nil
}

// ListAll возвращает все отчеты от новых к старым
func (r *OutageRepository) ListAll(ctx context.Context) ([]*models.OutageReport, error) {
	query := `SELECT ` + outageColumns + ` FROM outages ORDER BY reported_at DESC;`
	return r.list(ctx, query)
}

// ListByType возвращает отчеты одного типа от новых к старым
func (r *OutageRepository) ListByType(ctx context.Context, outageType string) ([]*models.OutageReport, error) {
	query := `SELECT ` + outageColumns + ` FROM outages WHERE type = $1 ORDER BY reported_at DESC;`
	return r.list(ctx, query, outageType)
}

// UpdateStatus меняет статус отчета
func (r *OutageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("outage with id %s: %w", id, models.ErrOutageNotFound)
	}

	cmdTag, err := r.db.Exec(ctx, `UPDATE outages SET status = $1 WHERE id = $2;`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update outage status: %w", err)
	}

	// RowsAffected() == 0 - отчета с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("outage with id %s: %w", id, models.ErrOutageNotFound)
	}
	return nil
}

func (r *OutageRepository) list(ctx context.Context, query string, args ...any) ([]*models.OutageReport, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list outages: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.OutageReport, 0)
	for rows.Next() {
		report, err := scanOutage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outage row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// scanOutage читает строку outageColumns. Координаты могут быть NULL.
func scanOutage(row pgx.Row) (*models.OutageReport, error) {
	report := &models.OutageReport{}
	var lat, lon *float64
	err := row.Scan(
		&report.ID,
		&report.Type,
		&report.Description,
		&lat,
		&lon,
		&report.Address,
		&report.UserID,
		&report.Status,
		&report.Severity,
		&report.ReportedAt,
	)
	if err != nil {
		return nil, err
	}
	report.Location = pointFrom(lat, lon)
	return report, nil
}

// pointFrom возвращает nil, если хотя бы одной координаты нет
func pointFrom(lat, lon *float64) *models.GeoPoint {
	if lat == nil || lon == nil {
		return nil
	}
	return &models.GeoPoint{Latitude: *lat, Longitude: *lon}
}
