package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"compass-server/logging"
	"compass-server/models"
	services "compass-server/service"
)

type ChatHandler struct {
	chatService *services.ChatService
	logger      zerolog.Logger
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logging.ComponentLogger("chat_handler"),
	}
}

// Chat handles POST /v1/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if !decodeBody(w, r, &request) {
		return
	}
	if strings.TrimSpace(request.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	response := h.chatService.Chat(request.Message)
	h.logger.Debug().Str("source", response.Source).Msg("chat served")
	writeJSON(w, http.StatusOK, response)
}

// Stats handles GET /v1/chat/stats.
func (h *ChatHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.chatService.Stats())
}
