// Package chat is the voice chatbot client. It relays player messages to the
// remote chat endpoint and keeps a short per-player history.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
	"github.com/krishiquest/KrishiQuest_Go/internal/metrics"
)

// Service defines the chatbot surface
type Service interface {
	// Send relays a message and returns the user and bot messages it added.
	// Blank text adds nothing and makes no request.
	Send(ctx context.Context, playerID, text string) ([]domain.ChatMessage, error)

	// Listen captures one utterance and sends its transcript
	Listen(ctx context.Context, playerID string) ([]domain.ChatMessage, error)

	// History returns the player's conversation
	History(ctx context.Context, playerID string) ([]domain.ChatMessage, error)
}

// Config configures the client
type Config struct {
	Endpoint    string
	Timeout     time.Duration
	Language    string
	HistorySize int
	HistoryTTL  time.Duration
}

// Option wires optional collaborators
type Option func(*Client)

// WithSpeaker reads every bot reply aloud
func WithSpeaker(s Speaker) Option {
	return func(c *Client) { c.speaker = s }
}

// WithRecognizer enables Listen
func WithRecognizer(r Recognizer) Option {
	return func(c *Client) { c.recognizer = r }
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Client implements Service against a remote voice-chat endpoint
type Client struct {
	endpoint   string
	lang       language.Tag
	http       *http.Client
	speaker    Speaker
	recognizer Recognizer
	history    *historyStore
}

// NewClient creates a chat client. It fails on an empty endpoint or an unparseable language tag.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("%w: chat endpoint is required", domain.ErrInvalidInput)
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	lang, err := language.Parse(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: chat language %q: %v", domain.ErrInvalidInput, cfg.Language, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	if cfg.HistoryTTL <= 0 {
		cfg.HistoryTTL = DefaultHistoryTTL
	}

	c := &Client{
		endpoint: cfg.Endpoint,
		lang:     lang,
		http:     &http.Client{Timeout: cfg.Timeout},
		history:  newHistoryStore(cfg.HistorySize, cfg.HistoryTTL, MaxMessagesPerPlayer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Language returns the tag used for speech
func (c *Client) Language() language.Tag {
	return c.lang
}

// Send relays text to the endpoint. Failures become fallback bot messages, never errors.
func (c *Client) Send(ctx context.Context, playerID, text string) ([]domain.ChatMessage, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(playerID) == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		metrics.ChatRequests.WithLabelValues(metrics.ChatOutcomeIgnored).Inc()
		log.Debug(LogMsgEmptyMessageIgnored, "playerID", playerID)
		return nil, nil
	}

	userMsg := c.history.append(playerID, domain.ChatFromUser, text)

	reply := c.ask(ctx, text)
	botMsg := c.history.append(playerID, domain.ChatFromBot, reply)

	if c.speaker != nil {
		if err := c.speaker.Speak(ctx, reply, c.lang); err != nil {
			log.Warn(LogMsgSpeakFailed, "playerID", playerID, "error", err)
		}
	}

	return []domain.ChatMessage{userMsg, botMsg}, nil
}

// ask posts one message and returns the text to show as the bot's answer
func (c *Client) ask(ctx context.Context, text string) string {
	log := logger.FromContext(ctx)
	start := time.Now()
	defer func() { metrics.ChatLatency.Observe(time.Since(start).Seconds()) }()

	body, err := json.Marshal(domain.VoiceChatRequest{Message: text})
	if err != nil {
		return c.networkFallback(ctx, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.networkFallback(ctx, err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.networkFallback(ctx, err)
	}
	defer resp.Body.Close()

	// the body decides the answer whatever the status
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn(LogMsgChatBadStatus, "status", resp.StatusCode)
	}

	var out domain.VoiceChatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		log.Warn(LogMsgChatDecodeFailed, "error", err)
		metrics.ChatRequests.WithLabelValues(metrics.ChatOutcomeNetwork).Inc()
		return FallbackNetworkError
	}

	if out.Reply == "" {
		log.Info(LogMsgChatEmptyReply)
		metrics.ChatRequests.WithLabelValues(metrics.ChatOutcomeNoReply).Inc()
		return FallbackNoReply
	}

	metrics.ChatRequests.WithLabelValues(metrics.ChatOutcomeReply).Inc()
	return out.Reply
}

func (c *Client) networkFallback(ctx context.Context, err error) string {
	logger.FromContext(ctx).Warn(LogMsgChatRequestFailed, "endpoint", c.endpoint, "error", err)
	metrics.ChatRequests.WithLabelValues(metrics.ChatOutcomeNetwork).Inc()
	return FallbackNetworkError
}

// Listen runs one recognition session and sends the final transcript
func (c *Client) Listen(ctx context.Context, playerID string) ([]domain.ChatMessage, error) {
	if c.recognizer == nil {
		return nil, domain.ErrRecognitionUnsupported
	}

	transcript, err := c.recognizer.Recognize(ctx, RecognitionOptions{
		Language:       c.lang,
		InterimResults: false,
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRecognitionFailed, "playerID", playerID, "error", err)
		return nil, fmt.Errorf("speech recognition failed: %w", err)
	}
	return c.Send(ctx, playerID, transcript)
}

// History returns the player's conversation
func (c *Client) History(_ context.Context, playerID string) ([]domain.ChatMessage, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	return c.history.list(playerID), nil
}
