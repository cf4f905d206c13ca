package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

func parseTypes(raw string) []string {
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Handler streams hub events to one client. The types query parameter limits
// the event types and player_id limits player-scoped events to one player.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		q := r.URL.Query()
		types := parseTypes(q.Get(QueryParamTypes))
		playerID := q.Get(QueryParamPlayerID)

		client := hub.Register(playerID, types)
		if client == nil {
			http.Error(w, ErrMsgHubStopped, http.StatusServiceUnavailable)
			return
		}
		log.Info(LogMsgClientConnected, "client_id", client.ID, "player_id", playerID, "filters", types)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")

		send := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "type", evt.Type, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "type", evt.Type, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		hello := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"player_id": playerID,
				"filters":   types,
			},
		}
		if !send(hello) {
			return
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, open := <-client.Events:
				if !open || !send(evt) {
					return
				}
			case now := <-keepalive.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: now.Unix()}) {
					return
				}
			}
		}
	}
}
