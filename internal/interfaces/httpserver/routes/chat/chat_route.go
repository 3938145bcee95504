package chat

import (
	"github.com/gin-gonic/gin"

	"pagila-agent-api/internal/interfaces/httpserver/handlers/chathandler"
)

// ChatRoute registers the chat endpoint.
type ChatRoute struct {
	chatHandler *chathandler.ChatHandler
}

func NewChatRoute(chatHandler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{chatHandler: chatHandler}
}

func (chatRoute *ChatRoute) RegisterRouter(router *gin.RouterGroup) {
	router.POST("/chat", chatRoute.chatHandler.PostChat)
}
