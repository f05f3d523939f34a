package models

// DefaultContactPriority - приоритет контакта, если клиент его не передал
const DefaultContactPriority = 1

// EmergencyContact - экстренный контакт пользователя
type EmergencyContact struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Phone    string `json:"phone" bson:"phone"`
	Relation string `json:"relation" bson:"relation"`
	Priority int    `json:"priority" bson:"priority"`
}

func (c *EmergencyContact) DocumentID() string { return c.ID }
