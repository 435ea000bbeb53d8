package repository

import (
	"database/sql"
	"time"

	"aspcranes/models"

	"github.com/google/uuid"
)

type PostgresChatRepo struct {
	DB *sql.DB
}

func NewPostgresChatRepo(db *sql.DB) *PostgresChatRepo {
	return &PostgresChatRepo{DB: db}
}

func (r *PostgresChatRepo) SaveMessage(msg *models.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	_, err := r.DB.Exec(`
		INSERT INTO chat_history (id, user_id, session_id, message_type, content, timestamp)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, msg.ID, msg.UserID, msg.SessionID, msg.Role, msg.Content, msg.Timestamp)
	return err
}

func (r *PostgresChatRepo) GetHistory(userID, sessionID string, limit int) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, user_id, session_id, message_type, content, timestamp
		FROM chat_history
		WHERE user_id=$1`
	args := []interface{}{userID}
	if sessionID != "" {
		query += ` AND session_id=$2`
		args = append(args, sessionID)
	}
	query += ` ORDER BY timestamp DESC`
	if limit > 0 {
		args = append(args, limit)
		if sessionID != "" {
			query += ` LIMIT $3`
		} else {
			query += ` LIMIT $2`
		}
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ChatMessage
	for rows.Next() {
		m := &models.ChatMessage{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.SessionID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query newest-first to honor the limit, hand back oldest-first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
