package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{Endpoint: srv.URL + "/api/voice-chat", Timeout: time.Second}, opts...)
	require.NoError(t, err)
	return c, &calls
}

func replyWith(body string) http.HandlerFunc {
	return replyWithStatus(http.StatusOK, body)
}

func replyWithStatus(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

type recordingSpeaker struct {
	texts []string
	langs []language.Tag
	err   error
}

func (s *recordingSpeaker) Speak(_ context.Context, text string, lang language.Tag) error {
	s.texts = append(s.texts, text)
	s.langs = append(s.langs, lang)
	return s.err
}

func TestSend_RelaysMessageAndSpeaksReply(t *testing.T) {
	speaker := &recordingSpeaker{}
	var received domain.VoiceChatRequest
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		replyWith(`{"reply":"गेहूं की बुवाई नवंबर में करें"}`)(w, r)
	}, WithSpeaker(speaker))

	msgs, err := c.Send(context.Background(), "p1", "गेहूं कब बोएं?")
	require.NoError(t, err)

	assert.Equal(t, int32(1), *calls)
	assert.Equal(t, "गेहूं कब बोएं?", received.Message)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.ChatFromUser, msgs[0].From)
	assert.Equal(t, domain.ChatFromBot, msgs[1].From)
	assert.Equal(t, "गेहूं की बुवाई नवंबर में करें", msgs[1].Text)

	require.Len(t, speaker.texts, 1)
	assert.Equal(t, msgs[1].Text, speaker.texts[0])
	assert.Equal(t, "hi-IN", speaker.langs[0].String())
}

func TestSend_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{"missing reply", replyWith(`{}`), FallbackNoReply},
		{"empty reply", replyWith(`{"reply":""}`), FallbackNoReply},
		{"server error with plain body", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}, FallbackNetworkError},
		{"server error with reply", replyWithStatus(http.StatusInternalServerError, `{"reply":"kal baarish hogi"}`), "kal baarish hogi"},
		{"server error without reply", replyWithStatus(http.StatusInternalServerError, `{"error":"quota"}`), FallbackNoReply},
		{"invalid json", replyWith(`not json`), FallbackNetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, calls := newTestClient(t, tt.handler)
			msgs, err := c.Send(context.Background(), "p1", "hello")
			require.NoError(t, err)
			require.Len(t, msgs, 2)
			assert.Equal(t, tt.want, msgs[1].Text)
			assert.Equal(t, int32(1), *calls, "no retries")
		})
	}
}

func TestSend_NetworkFailureUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(Config{Endpoint: url, Timeout: time.Second})
	require.NoError(t, err)

	msgs, err := c.Send(context.Background(), "p1", "hello")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "नेटवर्क में समस्या है। बाद में प्रयास करें।", msgs[1].Text)
	assert.NotContains(t, msgs[1].Text, "connection refused")
}

func TestSend_BlankMessageMakesNoRequest(t *testing.T) {
	c, calls := newTestClient(t, replyWith(`{"reply":"x"}`))

	for _, text := range []string{"", "   ", "\n\t"} {
		msgs, err := c.Send(context.Background(), "p1", text)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	}
	assert.Equal(t, int32(0), *calls)

	history, err := c.History(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSend_SpeakerFailureIsNotSurfaced(t *testing.T) {
	c, _ := newTestClient(t, replyWith(`{"reply":"ok"}`), WithSpeaker(&recordingSpeaker{err: errors.New("no audio")}))

	msgs, err := c.Send(context.Background(), "p1", "hi")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestSend_RequiresPlayer(t *testing.T) {
	c, _ := newTestClient(t, replyWith(`{"reply":"ok"}`))
	_, err := c.Send(context.Background(), "", "hi")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory_OrderedAndPerPlayer(t *testing.T) {
	c, _ := newTestClient(t, replyWith(`{"reply":"ok"}`))
	ctx := context.Background()

	_, err := c.Send(ctx, "p1", "one")
	require.NoError(t, err)
	_, err = c.Send(ctx, "p1", "two")
	require.NoError(t, err)
	_, err = c.Send(ctx, "p2", "other")
	require.NoError(t, err)

	history, err := c.History(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "one", history[0].Text)
	assert.Equal(t, "two", history[2].Text)

	ids := make([]string, len(history))
	for i, m := range history {
		ids[i] = m.ID
	}
	assert.True(t, sort.StringsAreSorted(ids), "ulid ids sort by creation")

	other, err := c.History(ctx, "p2")
	require.NoError(t, err)
	assert.Len(t, other, 2)
}

type fakeRecognizer struct {
	transcript string
	err        error
	opts       RecognitionOptions
}

func (f *fakeRecognizer) Recognize(_ context.Context, opts RecognitionOptions) (string, error) {
	f.opts = opts
	return f.transcript, f.err
}

func TestListen(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		c, _ := newTestClient(t, replyWith(`{"reply":"ok"}`))
		_, err := c.Listen(context.Background(), "p1")
		assert.ErrorIs(t, err, domain.ErrRecognitionUnsupported)
		assert.Equal(t, "speech recognition not supported", err.Error())
	})

	t.Run("sends transcript", func(t *testing.T) {
		rec := &fakeRecognizer{transcript: "मौसम कैसा है"}
		c, calls := newTestClient(t, replyWith(`{"reply":"धूप है"}`), WithRecognizer(rec))

		msgs, err := c.Listen(context.Background(), "p1")
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "मौसम कैसा है", msgs[0].Text)
		assert.Equal(t, int32(1), *calls)
		assert.Equal(t, "hi-IN", rec.opts.Language.String())
		assert.False(t, rec.opts.InterimResults)
	})

	t.Run("recognizer error", func(t *testing.T) {
		c, calls := newTestClient(t, replyWith(`{"reply":"ok"}`), WithRecognizer(&fakeRecognizer{err: errors.New("mic busy")}))
		_, err := c.Listen(context.Background(), "p1")
		require.Error(t, err)
		assert.Equal(t, int32(0), *calls)
	})
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewClient(Config{Endpoint: "http://x", Language: "not a tag!"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	c, err := NewClient(Config{Endpoint: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("hi-IN"), c.Language())
}

func TestHistory_TrimsToLimit(t *testing.T) {
	h := newHistoryStore(10, time.Minute, 3)
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		h.append("p1", domain.ChatFromUser, text)
	}
	msgs := h.list("p1")
	require.Len(t, msgs, 3)
	assert.Equal(t, "c", msgs[0].Text)
	assert.Equal(t, "e", msgs[2].Text)
}
