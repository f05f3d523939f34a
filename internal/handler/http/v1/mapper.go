package v1

import (
	"fmt"

	"github.com/shenikar/safeguard_backend/internal/models"
)

// incidentTimeLayout - формат времени демо-инцидентов, без зоны
const incidentTimeLayout = "2006-01-02T15:04:05"

func DTOToLocation(dto LocationDTO) models.Location {
	return models.Location{Lat: dto.Lat, Lng: dto.Lng}
}

func LocationToDTO(l models.Location) LocationDTO {
	return LocationDTO{Lat: l.Lat, Lng: l.Lng}
}

func VoiceDetectionToResponse(res *models.VoiceDetection) VoiceAnalysisResponse {
	return VoiceAnalysisResponse{
		Analysis: VoiceAnalysisDTO{
			Emotion:      res.Analysis.Emotion,
			Confidence:   res.Analysis.Confidence,
			FearDetected: res.Analysis.FearDetected,
			StressLevel:  res.Analysis.StressLevel,
		},
		TriggerSOS: res.TriggerSOS,
		Message:    fmt.Sprintf("Voice analysis complete. Emotion: %s (confidence: %.2f)", res.Analysis.Emotion, res.Analysis.Confidence),
	}
}

func RiskAssessmentToResponse(risk *models.RiskAssessment) RiskAnalysisResponse {
	incidents := make([]IncidentDTO, 0, len(risk.RecentIncidents))
	for _, incident := range risk.RecentIncidents {
		incidents = append(incidents, IncidentDTO{
			Lat:       incident.Location.Lat,
			Lng:       incident.Location.Lng,
			Type:      incident.Type,
			Severity:  incident.Severity,
			Timestamp: incident.Timestamp.Format(incidentTimeLayout),
		})
	}
	return RiskAnalysisResponse{
		Location:        LocationToDTO(risk.Location),
		RiskScore:       risk.RiskScore,
		RiskLevel:       risk.RiskLevel,
		IncidentCount:   risk.IncidentCount,
		RecentIncidents: incidents,
		Recommendations: risk.Recommendations,
	}
}

func SafeRouteToResponse(route *models.SafeRoute) SafetyRouteResponse {
	waypoints := make([]WaypointDTO, 0, len(route.Waypoints))
	for _, wp := range route.Waypoints {
		waypoints = append(waypoints, WaypointDTO{
			Lat:    wp.Location.Lat,
			Lng:    wp.Location.Lng,
			Safety: wp.Safety,
		})
	}
	return SafetyRouteResponse{
		Route:         waypoints,
		TotalDistance: route.TotalDistance,
		EstimatedTime: route.EstimatedTime,
		SafetyScore:   route.SafetyScore,
		Alerts:        route.Alerts,
	}
}

func GestureToResponse(res *models.GestureDetection) GestureResponse {
	verb := "detected"
	if res.SOS {
		verb = "recognized"
	}
	return GestureResponse{
		GestureDetected: res.GestureType,
		Confidence:      res.Confidence,
		SOSTriggered:    res.SOS,
		Message:         fmt.Sprintf("Gesture %s: %s", verb, res.GestureType),
	}
}

// GestureTypeFromDTO приводит type к строке; отсутствующее значение - пустая строка
func GestureTypeFromDTO(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// ShakePatternFromDTO сохраняет длину паттерна, нечисловые элементы становятся нулем
func ShakePatternFromDTO(pattern []any) []float64 {
	values := make([]float64, len(pattern))
	for i, item := range pattern {
		if f, ok := item.(float64); ok {
			values[i] = f
		}
	}
	return values
}

func ShakeToResponse(res *models.ShakeDetection) ShakeResponse {
	message := "Normal movement detected"
	if res.SOS {
		message = "Emergency shake pattern detected"
	}
	return ShakeResponse{
		PatternRecognized: res.SOS,
		ShakeIntensity:    res.Intensity,
		SOSTriggered:      res.SOS,
		Message:           message,
	}
}

func DTOToRouteModel(dto RouteTrackingRequest) *models.RouteData {
	planned := make([]models.Location, 0, len(dto.PlannedRoute))
	for _, point := range dto.PlannedRoute {
		planned = append(planned, DTOToLocation(point))
	}
	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}
	return &models.RouteData{
		ID:                 dto.ID,
		StartLocation:      DTOToLocation(*dto.StartLocation),
		Destination:        DTOToLocation(*dto.Destination),
		PlannedRoute:       planned,
		CurrentLocation:    DTOToLocation(*dto.CurrentLocation),
		DeviationThreshold: dto.DeviationThreshold,
		IsActive:           isActive,
	}
}

func DeviationCheckToResponse(check *models.DeviationCheck) LocationUpdateResponse {
	message := "On track"
	if check.Deviated {
		message = "Route deviation detected! Are you safe?"
	}
	return LocationUpdateResponse{
		RouteID:           check.RouteID,
		CurrentLocation:   LocationToDTO(check.CurrentLocation),
		DeviationDetected: check.Deviated,
		Message:           message,
		RequiresResponse:  check.Deviated,
	}
}

func DTOToSOSAlertModel(dto SOSAlertRequest) *models.SOSAlert {
	alert := &models.SOSAlert{
		ID:            dto.ID,
		UserLocation:  DTOToLocation(*dto.UserLocation),
		AlertType:     dto.AlertType,
		Confidence:    dto.Confidence,
		AudioAnalysis: dto.AudioAnalysis,
	}
	if dto.Timestamp != nil {
		alert.Timestamp = dto.Timestamp.UTC()
	}
	return alert
}

// DTOToContactModel подставляет приоритет по умолчанию только если поле не передано
func DTOToContactModel(dto EmergencyContactRequest) *models.EmergencyContact {
	priority := models.DefaultContactPriority
	if dto.Priority != nil {
		priority = *dto.Priority
	}
	return &models.EmergencyContact{
		ID:       dto.ID,
		Name:     dto.Name,
		Phone:    dto.Phone,
		Relation: dto.Relation,
		Priority: priority,
	}
}

func ModelsToContactResponses(contacts []*models.EmergencyContact) []EmergencyContactResponse {
	res := make([]EmergencyContactResponse, 0, len(contacts))
	for _, c := range contacts {
		res = append(res, EmergencyContactResponse{
			ID:       c.ID,
			Name:     c.Name,
			Phone:    c.Phone,
			Relation: c.Relation,
			Priority: c.Priority,
		})
	}
	return res
}
