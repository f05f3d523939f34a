package models

// VoiceAnalysis - результат (мок) анализа эмоций в голосе
type VoiceAnalysis struct {
	Emotion      string  `json:"emotion"`
	Confidence   float64 `json:"confidence"`
	FearDetected bool    `json:"fear_detected"`
	StressLevel  float64 `json:"stress_level"`
}

// VoiceDetection - анализ голоса и решение о SOS
type VoiceDetection struct {
	Analysis   VoiceAnalysis
	TriggerSOS bool
}

// GestureDetection - результат распознавания жеста
type GestureDetection struct {
	GestureType string
	Confidence  float64
	SOS         bool
}

// ShakeDetection - результат анализа встряхивания телефона
type ShakeDetection struct {
	Intensity float64
	SOS       bool
}

// RiskAssessment - оценка опасности точки по историческим инцидентам
type RiskAssessment struct {
	Location        Location
	RiskScore       float64
	RiskLevel       string
	IncidentCount   int
	RecentIncidents []IncidentReport
	Recommendations []string
}

// RouteWaypoint - точка безопасного маршрута с оценкой безопасности
type RouteWaypoint struct {
	Location Location
	Safety   string
}

// SafeRoute - рекомендуемый маршрут между двумя точками
type SafeRoute struct {
	Waypoints     []RouteWaypoint
	TotalDistance string
	EstimatedTime string
	SafetyScore   float64
	Alerts        []string
}

// ChatReply - ответ чат-бота безопасности
type ChatReply struct {
	Response    string
	Suggestions []string
}

// PlannedPath - маршрут от внешнего сервиса навигации
type PlannedPath struct {
	Points   []Location
	Distance string
	Duration string
}
