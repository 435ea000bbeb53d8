package repository

import "aspcranes/models"

type ChatRepository interface {
	SaveMessage(message *models.ChatMessage) error
	// GetHistory returns up to limit messages for a user, oldest first.
	// An empty sessionID spans all of the user's sessions; limit <= 0
	// means no limit.
	GetHistory(userID, sessionID string, limit int) ([]*models.ChatMessage, error)
}
