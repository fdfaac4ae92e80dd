package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ataxx/communication"
	"ataxx/game"
)

// Client talks to a remote game server over its JSON API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// State fetches the current position.
func (c *Client) State() (communication.StateResponse, error) {
	var state communication.StateResponse
	resp, err := c.http.Get(c.baseURL + "/state")
	if err != nil {
		return state, fmt.Errorf("failed to fetch state: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return state, fmt.Errorf("state request returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return state, fmt.Errorf("failed to decode state: %w", err)
	}
	return state, nil
}

// SendMove plays move on the remote board and returns the applied move,
// the engine's reply and the resulting position.
func (c *Client) SendMove(move game.Move) (communication.MoveResponse, error) {
	var result communication.MoveResponse
	body, err := json.Marshal(communication.MoveRequest{Move: move.String()})
	if err != nil {
		return result, fmt.Errorf("failed to encode move: %w", err)
	}
	resp, err := c.http.Post(c.baseURL+"/move", "application/json", bytes.NewReader(body))
	if err != nil {
		return result, fmt.Errorf("failed to send move: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("move request returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode move response: %w", err)
	}
	return result, nil
}
