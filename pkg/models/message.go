package models

// Role represents the role of a message sender
type Role string

const (
	// RoleUser represents a message from the user
	RoleUser Role = "user"
	// RoleAssistant represents a message from the assistant
	RoleAssistant Role = "assistant"
	// RoleSystem represents a system message
	RoleSystem Role = "system"
)

// Message represents a chat message sent to or received from the model
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Turn represents one completed (query, answer) exchange in a conversation.
// The conversation engine accumulates turns in memory mode; they are never
// persisted and reset on restart.
type Turn struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}
