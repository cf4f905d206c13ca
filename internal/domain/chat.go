package domain

import "time"

// ChatSender identifies who wrote a chat message
type ChatSender string

const (
	ChatFromUser ChatSender = "user"
	ChatFromBot  ChatSender = "bot"
)

// ChatMessage is one line of a chatbot conversation
type ChatMessage struct {
	ID        string     `json:"id"`
	From      ChatSender `json:"from"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
}

// VoiceChatRequest is the body sent to the remote chat endpoint
type VoiceChatRequest struct {
	Message string `json:"message"`
}

// VoiceChatResponse is the body returned by the remote chat endpoint
type VoiceChatResponse struct {
	Reply string `json:"reply"`
}
