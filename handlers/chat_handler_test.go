package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aspcranes/agent"
	"aspcranes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChatHandler(t *testing.T, assistantURL string) (*ChatHandler, *fakeChatRepo) {
	t.Helper()
	sessions, err := agent.NewSessionStore(&agent.FileStore{
		Path: filepath.Join(t.TempDir(), "sessions.json"),
	})
	require.NoError(t, err)

	repo := &fakeChatRepo{}
	return &ChatHandler{
		Agent:    agent.NewClient(assistantURL, 5*time.Second),
		Sessions: sessions,
		Repo:     repo,
		Logger:   zap.NewNop(),
	}, repo
}

func TestChatRequiresMessage(t *testing.T) {
	h, _ := newChatHandler(t, "http://localhost:0")

	rec := httptest.NewRecorder()
	h.Chat(rec, httptest.NewRequest(http.MethodPost, "/api/chat/assistant",
		strings.NewReader(`{"message": "   "}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No message provided")
}

func TestChatRelaysAssistantReplyAndLogsBothSides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req agent.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.CRMAccess)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(agent.ChatReply{
			Response:  "Three cranes are free tomorrow.",
			SessionID: req.SessionID,
			Status:    "success",
		})
	}))
	defer srv.Close()

	h, repo := newChatHandler(t, srv.URL)
	rec := httptest.NewRecorder()
	h.Chat(rec, httptest.NewRequest(http.MethodPost, "/api/chat/assistant",
		strings.NewReader(`{"message": "Which cranes are free tomorrow?"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Three cranes are free tomorrow.", got["response"])
	assert.True(t, strings.HasPrefix(got["sessionId"], "guest-"))

	require.Len(t, repo.messages, 2)
	assert.Equal(t, models.ChatRoleUser, repo.messages[0].Role)
	assert.Equal(t, models.ChatRoleAssistant, repo.messages[1].Role)
	assert.Equal(t, got["sessionId"], repo.messages[0].SessionID)
}

func TestChatKeepsSessionAcrossTurns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(agent.ChatReply{Response: "ok", Status: "success"})
	}))
	defer srv.Close()

	h, _ := newChatHandler(t, srv.URL)

	first := httptest.NewRecorder()
	h.Chat(first, httptest.NewRequest(http.MethodPost, "/api/chat/assistant",
		strings.NewReader(`{"message": "hello", "userId": "ops"}`)))
	second := httptest.NewRecorder()
	h.Chat(second, httptest.NewRequest(http.MethodPost, "/api/chat/assistant",
		strings.NewReader(`{"message": "and again", "userId": "ops"}`)))

	var a, b map[string]string
	require.NoError(t, json.NewDecoder(first.Body).Decode(&a))
	require.NoError(t, json.NewDecoder(second.Body).Decode(&b))
	assert.Equal(t, a["sessionId"], b["sessionId"])
}

func TestChatHonorsCRMAccessOptOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req agent.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.CRMAccess)
		json.NewEncoder(w).Encode(agent.ChatReply{Response: "ok", Status: "success"})
	}))
	defer srv.Close()

	h, _ := newChatHandler(t, srv.URL)
	rec := httptest.NewRecorder()
	h.Chat(rec, httptest.NewRequest(http.MethodPost, "/api/chat/assistant",
		strings.NewReader(`{"message": "hi", "crmAccess": false}`)))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestChatAnswersApologyWhenAssistantIsDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "agent exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	h, repo := newChatHandler(t, srv.URL)
	rec := httptest.NewRecorder()
	h.Chat(rec, httptest.NewRequest(http.MethodPost, "/api/chat/assistant",
		strings.NewReader(`{"message": "anyone there?"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, assistantApology, got["response"])

	// The apology is logged like a normal assistant turn.
	require.Len(t, repo.messages, 2)
	assert.Equal(t, assistantApology, repo.messages[1].Content)
}

func TestGetHistoryScopesToSession(t *testing.T) {
	h, repo := newChatHandler(t, "http://localhost:0")
	repo.messages = []*models.ChatMessage{
		{UserID: "guest", SessionID: "guest-1", Role: models.ChatRoleUser, Content: "old"},
		{UserID: "guest", SessionID: "guest-2", Role: models.ChatRoleUser, Content: "new"},
	}

	rec := httptest.NewRecorder()
	h.GetHistory(rec, httptest.NewRequest(http.MethodGet, "/api/chat/history?sessionId=guest-2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*models.ChatMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Content)
}
