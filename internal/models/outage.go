package models

import (
	"errors"
	"time"
)

// DefaultRadiusKm - радиус поиска ближайших отключений по умолчанию
const DefaultRadiusKm = 10.0

const (
	StatusActive   = "active"
	StatusResolved = "resolved"
)

// Типы отключений, которые различают метрики. Остальные типы принимаются, но
// в метриках попадают в "other".
const (
	TypeElectricity = "electricity"
	TypeWater       = "water"
	TypeGas         = "gas"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// ErrOutageNotFound возвращается хранилищем, если отчета с таким ID нет
var ErrOutageNotFound = errors.New("outage not found")

// GeoPoint - пара широта/долгота в градусах
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OutageReport представляет сообщение об отключении электричества, воды и т.п.
// Location равен nil, если у записи в хранилище нет координат.
type OutageReport struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    *GeoPoint `json:"location,omitempty"`
	Address     string    `json:"address,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Status      string    `json:"status"`
	Severity    string    `json:"severity,omitempty"`
	ReportedAt  time.Time `json:"reported_at"`
}

// NearbyQuery - параметры поиска отключений рядом с точкой
type NearbyQuery struct {
	Origin   GeoPoint
	RadiusKm *float64
}

// Radius возвращает заданный радиус или DefaultRadiusKm
func (q NearbyQuery) Radius() float64 {
	if q.RadiusKm == nil {
		return DefaultRadiusKm
	}
	return *q.RadiusKm
}
