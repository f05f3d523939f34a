package models

import "math"

// Location - географическая точка в градусах WGS84
type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// WithinBox сообщает, отличаются ли обе координаты меньше чем на delta градусов
func (l Location) WithinBox(other Location, delta float64) bool {
	return math.Abs(l.Lat-other.Lat) < delta && math.Abs(l.Lng-other.Lng) < delta
}
