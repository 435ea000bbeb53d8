package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendReturnsAssistantReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/agent/chat", r.URL.Path)

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What cranes are free this week?", req.Message)
		assert.Equal(t, "guest", req.UserID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatReply{
			Response:  "Two tower cranes are available.",
			SessionID: req.SessionID,
			Status:    "success",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	reply, err := client.Send(context.Background(), &ChatRequest{
		Message:   "What cranes are free this week?",
		UserID:    "guest",
		SessionID: "guest-abc",
		CRMAccess: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Two tower cranes are available.", reply.Response)
	assert.Equal(t, "guest-abc", reply.SessionID)
}

func TestSendRejectsReplyWithoutResponseText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Send(context.Background(), &ChatRequest{Message: "hi", UserID: "guest"})
	assert.Error(t, err)
}

func TestSendRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Send(context.Background(), &ChatRequest{Message: "hi", UserID: "guest"})
	assert.Error(t, err)
}
