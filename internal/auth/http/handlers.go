package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/msdharani1/portfolio-api/internal/auth/service"
)

// Handler exposes the identity endpoints: password sign-in and the session
// probe driving the client's auth gate.
type Handler struct {
	identity   *service.IdentityClient
	authClient *auth.Client
}

func New(identity *service.IdentityClient, authClient *auth.Client) *Handler {
	return &Handler{identity: identity, authClient: authClient}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		// Same generic message as a wrong credential: the shape of the
		// failure must not leak.
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": service.ErrInvalidCredentials.Error()})
		return
	}

	sess, err := h.identity.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.Printf("[error] operation=login error=%v", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": service.ErrInvalidCredentials.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "session": sess})
}

// session resolves the auth-gate state for the caller's token: authenticated
// with its identity, or unauthenticated. It never errors on a bad token.
func (h *Handler) session(c *gin.Context) {
	token := ""
	if bearer := c.GetHeader("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
		token = bearer[7:]
	}
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": false})
		return
	}

	decoded, err := h.authClient.VerifyIDToken(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": false})
		return
	}

	resp := gin.H{"ok": true, "authenticated": true, "uid": decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		resp["email"] = email
	}
	c.JSON(http.StatusOK, resp)
}
