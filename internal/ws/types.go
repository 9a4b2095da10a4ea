package ws

import (
	"encoding/json"
)

// MessageType discriminates the kinds of messages exchanged over a game
// WebSocket.
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeBoardState MessageType = "boardState"
	MessageTypeReset      MessageType = "reset"
	MessageTypeError      MessageType = "error"
)

// Message is the WebSocket envelope: a type tag plus a raw payload decoded
// by the handler for that type.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewMessage builds an envelope around a JSON-encodable payload.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
