// Package geo считает расстояния между точками на поверхности Земли.
package geo

import (
	"errors"
	"math"

	"github.com/shenikar/outage_reporting_system/internal/models"
)

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

// ErrInvalidCoordinates возвращает Validate для координат вне допустимого диапазона
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Distance возвращает расстояние по дуге большого круга (формула гаверсинусов) в километрах.
// Входные данные не проверяются: NaN и Inf просто протекают в результат.
func Distance(origin, target models.GeoPoint) float64 {
	dLat := toRadians(target.Latitude - origin.Latitude)
	dLon := toRadians(target.Longitude - origin.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(origin.Latitude))*math.Cos(toRadians(target.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Validate проверяет, что точка лежит в диапазонах [-90, 90] и [-180, 180]
func Validate(p models.GeoPoint) error {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return ErrInvalidCoordinates
	}
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
