package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"aspcranes/agent"
	"aspcranes/models"
	"aspcranes/repository"

	"go.uber.org/zap"
)

// assistantApology is served whenever the assistant cannot be reached, the
// widget stays usable instead of surfacing transport errors.
const assistantApology = "I apologize, but I'm having trouble processing your request right now."

type ChatHandler struct {
	Agent    *agent.Client
	Sessions *agent.SessionStore
	Repo     repository.ChatRepository
	Logger   *zap.Logger
}

// Chat relays one widget message to the assistant service. Chat log writes
// and session persistence are best-effort, only a missing message is fatal.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message   string `json:"message"`
		UserID    string `json:"userId"`
		SessionID string `json:"sessionId"`
		CRMAccess *bool  `json:"crmAccess"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(body.Message) == "" {
		http.Error(w, "No message provided", http.StatusBadRequest)
		return
	}
	if body.UserID == "" {
		body.UserID = "guest"
	}
	// The assistant reads CRM data unless the widget opted out.
	crmAccess := true
	if body.CRMAccess != nil {
		crmAccess = *body.CRMAccess
	}

	session, err := h.Sessions.Resolve(body.UserID, body.SessionID)
	if err != nil {
		h.Logger.Warn("session persistence failed",
			zap.String("userId", body.UserID),
			zap.Error(err))
	}

	h.logMessage(body.UserID, session, models.ChatRoleUser, body.Message)

	text := assistantApology
	reply, err := h.Agent.Send(r.Context(), &agent.ChatRequest{
		Message:   body.Message,
		UserID:    body.UserID,
		SessionID: session,
		CRMAccess: crmAccess,
	})
	if err != nil {
		h.Logger.Error("assistant request failed",
			zap.String("userId", body.UserID),
			zap.String("sessionId", session),
			zap.Error(err))
	} else {
		text = reply.Response
	}

	h.logMessage(body.UserID, session, models.ChatRoleAssistant, text)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"response":  text,
		"sessionId": session,
	})
}

func (h *ChatHandler) logMessage(userID, sessionID, role, content string) {
	err := h.Repo.SaveMessage(&models.ChatMessage{
		UserID:    userID,
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	})
	if err != nil {
		h.Logger.Warn("chat log write failed",
			zap.String("userId", userID),
			zap.String("role", role),
			zap.Error(err))
	}
}

// GetHistory handler
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = "guest"
	}
	sessionID := r.URL.Query().Get("sessionId")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.Repo.GetHistory(userID, sessionID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.ChatMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
