package service

import (
	"context"
	"strings"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
)

// ChatService определяет контракт чат-бота безопасности
type ChatService interface {
	Respond(ctx context.Context, message string) *models.ChatReply
}

type chatService struct {
	logger *logrus.Logger
}

func NewChatService(logger *logrus.Logger) ChatService {
	return &chatService{logger: logger}
}

// Respond выбирает ответ по ключевым словам, порядок веток фиксирован
func (s *chatService) Respond(ctx context.Context, message string) *models.ChatReply {
	reply, topic := respond(message)
	s.logger.WithFields(logrus.Fields{
		"service": "chat",
		"method":  "Respond",
		"topic":   topic,
	}).Debug("Chat reply selected")
	return reply
}

func respond(message string) (*models.ChatReply, string) {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "safe") && (strings.Contains(msg, "route") || strings.Contains(msg, "road")):
		return &models.ChatReply{
			Response:    "Based on recent data, I recommend taking the main road with better lighting. The side streets have had 2 incidents reported this month.",
			Suggestions: []string{"Take main road", "Travel before 9 PM", "Share live location"},
		}, "safe_route"
	case strings.Contains(msg, "emergency") || strings.Contains(msg, "help"):
		return &models.ChatReply{
			Response:    "In case of emergency, press the SOS button. Your location will be shared with emergency contacts. Say 'I'm fine' calmly if you need silent help.",
			Suggestions: []string{"Press SOS", "Use voice alert", "Share location"},
		}, "emergency"
	case strings.Contains(msg, "incident") || strings.Contains(msg, "report"):
		return &models.ChatReply{
			Response:    "You can report incidents anonymously. This helps other users stay informed about unsafe areas.",
			Suggestions: []string{"Report incident", "View incident map", "Get area alerts"},
		}, "incident"
	default:
		return &models.ChatReply{
			Response:    "I'm here to help with your safety concerns. You can ask about safe routes, report incidents, or get emergency help.",
			Suggestions: []string{"Find safe route", "Report incident", "Emergency help"},
		}, "default"
	}
}
