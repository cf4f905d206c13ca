package chat

import (
	"context"

	"golang.org/x/text/language"
)

// Speaker reads text aloud in a language
type Speaker interface {
	Speak(ctx context.Context, text string, lang language.Tag) error
}

// RecognitionOptions configures one capture session
type RecognitionOptions struct {
	Language       language.Tag
	InterimResults bool
}

// Recognizer captures a single utterance and returns its final transcript
type Recognizer interface {
	Recognize(ctx context.Context, opts RecognitionOptions) (string, error)
}
