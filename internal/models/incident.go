package models

import "time"

// IncidentReport - исторический инцидент из демо-набора, в хранилище не пишется
type IncidentReport struct {
	Location  Location
	Type      string
	Severity  int // 1-5
	Timestamp time.Time
}
