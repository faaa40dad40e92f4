package v1

import (
	"strings"

	"github.com/shenikar/outage_reporting_system/internal/models"
)

// DTOToOutageModel преобразует DTO создания в доменную модель
func DTOToOutageModel(dto CreateOutageRequest) *models.OutageReport {
	report := &models.OutageReport{
		Type:        strings.TrimSpace(dto.Type),
		Description: strings.TrimSpace(dto.Description),
		Address:     strings.TrimSpace(dto.Address),
		UserID:      dto.UserID,
		Severity:    dto.Severity,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		report.Location = &models.GeoPoint{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	return report
}

// DTOToNearbyQuery преобразует параметры запроса в доменный запрос поиска
func DTOToNearbyQuery(dto NearbyQueryRequest) models.NearbyQuery {
	return models.NearbyQuery{
		Origin:   models.GeoPoint{Latitude: *dto.Latitude, Longitude: *dto.Longitude},
		RadiusKm: dto.RadiusKm,
	}
}

// ModelToOutageResponse преобразует доменную модель в DTO для ответа
func ModelToOutageResponse(model *models.OutageReport) *OutageResponse {
	resp := &OutageResponse{
		ID:          model.ID,
		Type:        model.Type,
		Description: model.Description,
		Address:     model.Address,
		UserID:      model.UserID,
		Status:      model.Status,
		Severity:    model.Severity,
		ReportedAt:  model.ReportedAt,
	}
	if model.Location != nil {
		lat, lon := model.Location.Latitude, model.Location.Longitude
		resp.Latitude, resp.Longitude = &lat, &lon
	}
	return resp
}

// ModelsToOutageResponses преобразует слайс моделей в слайс DTO
func ModelsToOutageResponses(models []*models.OutageReport) []*OutageResponse {
	responses := make([]*OutageResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToOutageResponse(model)
	}
	return responses
}
