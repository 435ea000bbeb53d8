// Package agent talks to the external CRM assistant service over HTTP.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ChatRequest is the payload the assistant service expects.
type ChatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
	CRMAccess bool   `json:"crm_access,omitempty"`
}

// ChatReply is the assistant's answer. Status is informational, the
// response text is the contract.
type ChatReply struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

// Send forwards one user message to the assistant. A reply without response
// text is treated as a failure even when the HTTP status is 200.
func (c *Client) Send(ctx context.Context, req *ChatRequest) (*ChatReply, error) {
	reply := &ChatReply{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(reply).
		Post("/agent/chat")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("assistant returned status %d", resp.StatusCode())
	}
	if reply.Response == "" {
		return nil, errors.New("assistant reply missing response text")
	}
	return reply, nil
}
