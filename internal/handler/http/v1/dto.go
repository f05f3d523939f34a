package v1

import "time"

// LocationDTO DTO географической точки
// @Description DTO географической точки
type LocationDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// VoiceAnalysisDTO DTO результата анализа голоса
// @Description DTO результата анализа голоса
type VoiceAnalysisDTO struct {
	Emotion      string  `json:"emotion"`
	Confidence   float64 `json:"confidence"`
	FearDetected bool    `json:"fear_detected"`
	StressLevel  float64 `json:"stress_level"`
}

// VoiceAnalysisResponse DTO для ответа анализа голоса
// @Description DTO для ответа анализа голоса
type VoiceAnalysisResponse struct {
	Analysis   VoiceAnalysisDTO `json:"analysis"`
	TriggerSOS bool             `json:"trigger_sos"`
	Message    string           `json:"message"`
}

// RiskAnalysisQuery параметры запроса оценки риска. Radius принимается любым, в расчете не участвует.
type RiskAnalysisQuery struct {
	Lat    *float64 `form:"lat" validate:"required,latitude"`
	Lng    *float64 `form:"lng" validate:"required,longitude"`
	Radius int      `form:"radius,default=1000"`
}

// IncidentDTO DTO исторического инцидента
// @Description DTO исторического инцидента
type IncidentDTO struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Type      string  `json:"type"`
	Severity  int     `json:"severity"`
	Timestamp string  `json:"timestamp"`
}

// RiskAnalysisResponse DTO для ответа с оценкой риска
// @Description DTO для ответа с оценкой риска
type RiskAnalysisResponse struct {
	Location        LocationDTO   `json:"location"`
	RiskScore       float64       `json:"risk_score"`
	RiskLevel       string        `json:"risk_level"`
	IncidentCount   int           `json:"incident_count"`
	RecentIncidents []IncidentDTO `json:"recent_incidents"`
	Recommendations []string      `json:"recommendations"`
}

// SafetyRouteQuery параметры запроса безопасного маршрута
type SafetyRouteQuery struct {
	StartLat *float64 `form:"start_lat" validate:"required,latitude"`
	StartLng *float64 `form:"start_lng" validate:"required,longitude"`
	EndLat   *float64 `form:"end_lat" validate:"required,latitude"`
	EndLng   *float64 `form:"end_lng" validate:"required,longitude"`
}

// WaypointDTO DTO точки маршрута
// @Description DTO точки маршрута
type WaypointDTO struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Safety string  `json:"safety"`
}

// SafetyRouteResponse DTO для ответа с безопасным маршрутом
// @Description DTO для ответа с безопасным маршрутом
type SafetyRouteResponse struct {
	Route         []WaypointDTO `json:"route"`
	TotalDistance string        `json:"total_distance"`
	EstimatedTime string        `json:"estimated_time"`
	SafetyScore   float64       `json:"safety_score"`
	Alerts        []string      `json:"alerts"`
}

// ChatResponse DTO для ответа чат-бота
// @Description DTO для ответа чат-бота
type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

// GestureRequest DTO распознавания жеста, прочие поля игнорируются.
// type может прийти любым JSON-значением, нестроковое приводится к строке.
// @Description DTO распознавания жеста
type GestureRequest struct {
	Type any `json:"type" swaggertype:"string"`
}

// GestureResponse DTO для ответа распознавания жеста
// @Description DTO для ответа распознавания жеста
type GestureResponse struct {
	GestureDetected string  `json:"gesture_detected"`
	Confidence      float64 `json:"confidence"`
	SOSTriggered    bool    `json:"sos_triggered"`
	Message         string  `json:"message"`
}

// ShakeRequest DTO паттерна встряхивания.
// Из pattern важна только длина, элементы не проверяются.
// @Description DTO паттерна встряхивания
type ShakeRequest struct {
	Pattern   []any   `json:"pattern" swaggertype:"array,number"`
	Intensity float64 `json:"intensity"`
}

// ShakeResponse DTO для ответа анализа встряхивания
// @Description DTO для ответа анализа встряхивания
type ShakeResponse struct {
	PatternRecognized bool    `json:"pattern_recognized"`
	ShakeIntensity    float64 `json:"shake_intensity"`
	SOSTriggered      bool    `json:"sos_triggered"`
	Message           string  `json:"message"`
}

// RouteTrackingRequest DTO для запуска отслеживания маршрута
// @Description DTO для запуска отслеживания маршрута
type RouteTrackingRequest struct {
	ID                 string        `json:"id,omitempty"`
	StartLocation      *LocationDTO  `json:"start_location" validate:"required"`
	Destination        *LocationDTO  `json:"destination" validate:"required"`
	PlannedRoute       []LocationDTO `json:"planned_route" validate:"required,dive"`
	CurrentLocation    *LocationDTO  `json:"current_location" validate:"required"`
	DeviationThreshold int           `json:"deviation_threshold,omitempty" validate:"gte=0"`
	IsActive           *bool         `json:"is_active,omitempty"`
}

// RouteTrackingResponse DTO для ответа на запуск отслеживания
// @Description DTO для ответа на запуск отслеживания
type RouteTrackingResponse struct {
	RouteID string `json:"route_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LocationUpdateRequest DTO обновления позиции.
// Принимается {current_location:{lat,lng}} или просто {lat,lng}.
// @Description DTO обновления позиции
type LocationUpdateRequest struct {
	RouteID         string       `json:"route_id,omitempty"`
	CurrentLocation *LocationDTO `json:"current_location,omitempty"`
	Lat             *float64     `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng             *float64     `json:"lng,omitempty" validate:"omitempty,longitude"`
}

// LocationUpdateResponse DTO для ответа на обновление позиции
// @Description DTO для ответа на обновление позиции
type LocationUpdateResponse struct {
	RouteID           string      `json:"route_id"`
	CurrentLocation   LocationDTO `json:"current_location"`
	DeviationDetected bool        `json:"deviation_detected"`
	Message           string      `json:"message"`
	RequiresResponse  bool        `json:"requires_response"`
}

// SOSAlertRequest DTO экстренного сигнала
// @Description DTO экстренного сигнала
type SOSAlertRequest struct {
	ID            string         `json:"id,omitempty"`
	UserLocation  *LocationDTO   `json:"user_location" validate:"required"`
	AlertType     string         `json:"alert_type" validate:"required"`
	Confidence    float64        `json:"confidence" validate:"gte=0,lte=1"`
	Timestamp     *time.Time     `json:"timestamp,omitempty"`
	AudioAnalysis map[string]any `json:"audio_analysis,omitempty"`
}

// SOSAlertResponse DTO для ответа на экстренный сигнал
// @Description DTO для ответа на экстренный сигнал
type SOSAlertResponse struct {
	AlertID   string    `json:"alert_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// EmergencyContactRequest DTO для добавления экстренного контакта
// @Description DTO для добавления экстренного контакта
type EmergencyContactRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Relation string `json:"relation" validate:"required,max=64"`
	Priority *int   `json:"priority,omitempty" validate:"omitempty,gte=0"`
}

// EmergencyContactResponse DTO экстренного контакта
// @Description DTO экстренного контакта
type EmergencyContactResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
	Priority int    `json:"priority"`
}

// ContactCreatedResponse DTO для ответа на добавление контакта
// @Description DTO для ответа на добавление контакта
type ContactCreatedResponse struct {
	Message   string `json:"message"`
	ContactID string `json:"contact_id"`
}
