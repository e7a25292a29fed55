package realtime

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"malaeb/internal/domain"
	jwtsvc "malaeb/internal/pkg/jwt"
	"malaeb/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

// UserDirectory resolves the presence attributes returned alongside a channel
// authorization.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Handler struct {
	hub    *Hub
	signer *Signer
	jwt    *jwtsvc.Service
	users  UserDirectory
}

func NewHandler(hub *Hub, signer *Signer, jwt *jwtsvc.Service, users UserDirectory) *Handler {
	return &Handler{hub: hub, signer: signer, jwt: jwt, users: users}
}

// AuthorizeChannel gates a subscription to a private channel. The decision is
// made fresh on every call: the caller must hold a valid session, and the
// requested channel must be the caller's own private channel. Anything else
// is forbidden regardless of any earlier authorization.
func (h *Handler) AuthorizeChannel(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	socketID := c.PostForm("socket_id")
	channelName := c.PostForm("channel_name")
	if socketID == "" || channelName == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "socket_id and channel_name are required")
		return
	}

	if channelName != UserChannel(userID) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot subscribe to another user's channel")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "AUTH_FAILED", "Failed to authorize channel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"auth":    h.signer.Sign(socketID, channelName),
		"channel": channelName,
		"presence": gin.H{
			"user_id": user.ID,
			"name":    user.Name,
			"email":   user.Email,
		},
	})
}

// ServeWS upgrades the connection. Browsers cannot set headers on websocket
// requests, so the access token is taken from the query string.
func (h *Handler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	socketID := uuid.NewString()
	h.hub.ServeConn(conn, socketID, claims.UserID)
}
