package domain

import "time"

// MessageSender enumerates who authored a conversation message.
type MessageSender string

const (
	SenderUser  MessageSender = "user"
	SenderBot   MessageSender = "bot"
	SenderAdmin MessageSender = "admin"
)

// MessageType classifies a conversation message.
type MessageType string

const (
	MessageTypeQuestion   MessageType = "question"
	MessageTypeResponse   MessageType = "response"
	MessageTypeSummary    MessageType = "summary"
	MessageTypeSuggestion MessageType = "suggestion"
)

// Message is one turn of the coaching conversation. Messages live only in
// the active session; the closing summary alone survives reloads because it
// is reconstructed from Profile.Summary.
type Message struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Sender    MessageSender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
	Type      MessageType   `json:"type,omitempty"`
}
