package handler

import (
	"net/http"

	"github.com/krishiquest/KrishiQuest_Go/internal/chat"
	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// ChatMessageRequest is one message typed or spoken by the player
type ChatMessageRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=100"`
	Message  string `json:"message" validate:"max=2000"`
}

// ChatListenRequest starts one speech capture
type ChatListenRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=100"`
}

// ChatResponse carries the messages a send added
type ChatResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// HandleChatMessage relays a message to the chatbot. Network failures answer 200 with a fallback reply.
// @Summary Send chat message
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatMessageRequest true "Message"
// @Success 200 {object} ChatResponse
// @Router /api/v1/chat/message [post]
func HandleChatMessage(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Chat message"); err != nil {
			return
		}

		msgs, err := svc.Send(r.Context(), req.PlayerID, req.Message)
		if err != nil {
			respondServiceError(w, r, "Chat message", err)
			return
		}
		if msgs == nil {
			msgs = []domain.ChatMessage{}
		}

		logger.FromContext(r.Context()).Debug(LogMsgChatMessageSent, "playerID", req.PlayerID, "added", len(msgs))
		respondJSON(w, http.StatusOK, ChatResponse{Messages: msgs})
	}
}

// HandleChatListen captures one utterance and sends it
// @Summary Voice input
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatListenRequest true "Player"
// @Success 200 {object} ChatResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/chat/listen [post]
func HandleChatListen(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatListenRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Chat listen"); err != nil {
			return
		}

		msgs, err := svc.Listen(r.Context(), req.PlayerID)
		if err != nil {
			respondServiceError(w, r, "Chat listen", err)
			return
		}
		if msgs == nil {
			msgs = []domain.ChatMessage{}
		}
		respondJSON(w, http.StatusOK, ChatResponse{Messages: msgs})
	}
}

// HandleChatHistory returns the player's conversation
// @Summary Chat history
// @Tags chat
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} ChatResponse
// @Router /api/v1/chat/history [get]
func HandleChatHistory(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, QueryParamPlayerID)
		if !ok {
			return
		}

		msgs, err := svc.History(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Chat history", err)
			return
		}
		respondJSON(w, http.StatusOK, ChatResponse{Messages: msgs})
	}
}
