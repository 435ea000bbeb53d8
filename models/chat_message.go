package models

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of an assistant conversation, kept so support
// staff can review what the agent told a customer.
type ChatMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	UserID    string    `json:"userId" bson:"userId" db:"user_id"`
	SessionID string    `json:"sessionId" bson:"sessionId" db:"session_id"`
	Role      string    `json:"role" bson:"role" db:"message_type"`
	Content   string    `json:"content" bson:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp" db:"timestamp"`
}
