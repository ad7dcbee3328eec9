package amqp

import (
	"encoding/json"
	"time"
)

// ChangeEvent is published by the backend whenever a wallet, transaction,
// category or goal changes. It carries only the entity and id; the worker
// refetches the full snapshot rather than patching state from events.
type ChangeEvent struct {
	Entity    string    `json:"entity"`
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeEvent creates a change event stamped with the current time.
func NewChangeEvent(entity string, id int64, action string) *ChangeEvent {
	return &ChangeEvent{
		Entity:    entity,
		ID:        id,
		Action:    action,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (m *ChangeEvent) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeEventFromJSON creates an event from JSON bytes.
func ChangeEventFromJSON(data []byte) (*ChangeEvent, error) {
	var msg ChangeEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// RefreshRequest asks the worker to refetch the snapshot immediately,
// outside its periodic schedule. Published by the web process when a user
// hits the refresh control.
type RefreshRequest struct {
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRefreshRequest creates a refresh request stamped with the current time.
func NewRefreshRequest(reason string) *RefreshRequest {
	return &RefreshRequest{
		Reason:    reason,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the request to JSON bytes.
func (m *RefreshRequest) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RefreshRequestFromJSON creates a request from JSON bytes.
func RefreshRequestFromJSON(data []byte) (*RefreshRequest, error) {
	var msg RefreshRequest
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
