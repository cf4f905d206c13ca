package chat

import "time"

// Fallback bot messages shown instead of a missing reply or a failed request
const (
	FallbackNoReply      = "माफ़ करें, मैं समझ नहीं पाई।"
	FallbackNetworkError = "नेटवर्क में समस्या है। बाद में प्रयास करें।"
)

// Client defaults
const (
	DefaultLanguage      = "hi-IN"
	DefaultTimeout       = 15 * time.Second
	DefaultHistorySize   = 1024
	DefaultHistoryTTL    = 2 * time.Hour
	MaxMessagesPerPlayer = 200
	maxResponseBytes     = 1 << 20
	contentTypeJSON      = "application/json"
)

// Log messages
const (
	LogMsgChatRequestFailed   = "Voice chat request failed"
	LogMsgChatBadStatus       = "Voice chat endpoint returned non-success status"
	LogMsgChatDecodeFailed    = "Failed to decode voice chat response"
	LogMsgChatEmptyReply      = "Voice chat endpoint returned no reply"
	LogMsgSpeakFailed         = "Failed to speak bot reply"
	LogMsgRecognitionFailed   = "Speech recognition failed"
	LogMsgEmptyMessageIgnored = "Ignoring empty chat message"
)
