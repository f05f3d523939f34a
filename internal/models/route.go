package models

// DefaultDeviationThreshold - порог отклонения в метрах.
// Хранится вместе с маршрутом, но проверкой отклонения не используется.
const DefaultDeviationThreshold = 500

// RouteData - отслеживаемый маршрут пользователя
type RouteData struct {
	ID                 string     `json:"id" bson:"id"`
	StartLocation      Location   `json:"start_location" bson:"start_location"`
	Destination        Location   `json:"destination" bson:"destination"`
	PlannedRoute       []Location `json:"planned_route" bson:"planned_route"`
	CurrentLocation    Location   `json:"current_location" bson:"current_location"`
	DeviationThreshold int        `json:"deviation_threshold" bson:"deviation_threshold"`
	IsActive           bool       `json:"is_active" bson:"is_active"`
}

func (r *RouteData) DocumentID() string { return r.ID }

// DeviationCheck - результат сверки текущей позиции с маршрутом
type DeviationCheck struct {
	RouteID         string
	CurrentLocation Location
	Deviated        bool
}
