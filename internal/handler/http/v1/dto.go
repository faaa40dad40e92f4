package v1

import (
	"time"
)

// CreateOutageRequest DTO для создания отчета об отключении
// @Description DTO для создания отчета об отключении. Координаты передаются парой или не передаются совсем.
type CreateOutageRequest struct {
	Type        string   `json:"type" validate:"required,max=64"`
	Description string   `json:"description" validate:"required,max=2000"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Address     string   `json:"address,omitempty" validate:"max=512"`
	Severity    string   `json:"severity,omitempty" validate:"omitempty,oneof=low medium high"`
	UserID      string   `json:"user_id,omitempty" validate:"max=128"`
}

// UpdateStatusRequest DTO для смены статуса отчета
// @Description DTO для смены статуса отчета
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active resolved"`
}

// NearbyQueryRequest параметры поиска ближайших отключений
type NearbyQueryRequest struct {
	Latitude  *float64 `form:"lat" validate:"required,latitude"`
	Longitude *float64 `form:"lon" validate:"required,longitude"`
	RadiusKm  *float64 `form:"radius_km" validate:"omitempty,gte=0"`
}

// OutageResponse DTO для ответа с информацией об отключении
// @Description DTO для ответа с информацией об отключении
type OutageResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Address     string    `json:"address,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Status      string    `json:"status"`
	Severity    string    `json:"severity,omitempty"`
	ReportedAt  time.Time `json:"reported_at"`
}
